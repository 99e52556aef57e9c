// Package dto 提供 HTTP 层数据传输对象
package dto

// EstimateDurationRequest 语音时长估算请求
type EstimateDurationRequest struct {
	Text           string `json:"text" binding:"required"`
	WordsPerMinute int    `json:"words_per_minute"`
}
