// Package dto 提供 HTTP 层数据传输对象
package dto

// ManuscriptAnalysisRequest 手稿分析请求
type ManuscriptAnalysisRequest struct {
	Content  string `json:"content" binding:"required"`
	Language string `json:"language"`
}

// ResearchModeRequest 研究模式推荐请求
type ResearchModeRequest struct {
	Topic   string `json:"topic"`
	Context string `json:"context,omitempty"`
}
