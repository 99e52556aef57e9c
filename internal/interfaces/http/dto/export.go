// Package dto 提供 HTTP 层数据传输对象
package dto

// HTMLExportResponse HTML 导出响应，内容内联返回
type HTMLExportResponse struct {
	Format      string `json:"format"`
	HTMLContent string `json:"html_content"`
}
