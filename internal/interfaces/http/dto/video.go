// Package dto 提供 HTTP 层数据传输对象
package dto

// LibraryUploadRequest 视频库上传请求，内容为 Base64 编码
type LibraryUploadRequest struct {
	Content  string `json:"content" binding:"required"`
	Filename string `json:"filename" binding:"required"`
}
