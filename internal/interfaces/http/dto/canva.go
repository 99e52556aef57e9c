// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"coursecraft-api/internal/infrastructure/integration/canva"
)

// CanvaAuthorizeResponse 授权链接响应
type CanvaAuthorizeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	State            string `json:"state"`
}

// CanvaRefreshRequest 令牌刷新请求
type CanvaRefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CanvaCreateDesignRequest 创建设计请求
type CanvaCreateDesignRequest struct {
	Title      string `json:"title"`
	DesignType string `json:"design_type"`
	TemplateID string `json:"template_id"`
}

// CanvaAutofillRequest 模板自动填充请求
type CanvaAutofillRequest struct {
	TemplateID string            `json:"template_id" binding:"required"`
	Title      string            `json:"title"`
	Slides     []canva.SlideData `json:"slides"`
}

// CanvaExportRequest 设计导出请求
type CanvaExportRequest struct {
	DesignID string `json:"design_id" binding:"required"`
	Format   string `json:"format"`
}

// CanvaExportJobResponse 导出任务回执
type CanvaExportJobResponse struct {
	JobID string `json:"job_id"`
}
