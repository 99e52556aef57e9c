// Package dto 提供 HTTP 层数据传输对象
package dto

// ParseTextRequest 纯文本解析请求
type ParseTextRequest struct {
	Content string `json:"content" binding:"required"`
}
