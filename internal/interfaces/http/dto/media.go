// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"coursecraft-api/internal/infrastructure/integration/stockmedia"
)

// PhotoSearchResponse 图片搜索响应
type PhotoSearchResponse struct {
	Provider string                  `json:"provider"`
	Photos   []stockmedia.StockPhoto `json:"photos"`
}

// VideoSearchResponse 视频搜索响应
type VideoSearchResponse struct {
	Provider string                  `json:"provider"`
	Videos   []stockmedia.StockVideo `json:"videos"`
}
