// Package dto 提供 HTTP 层数据传输对象
package dto

// ScrapeRequest 网页抓取请求
type ScrapeRequest struct {
	URLs []string `json:"urls" binding:"required"`
}
