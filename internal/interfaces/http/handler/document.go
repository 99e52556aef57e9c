package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/document"
	"coursecraft-api/internal/interfaces/http/dto"
)

// DocumentHandler 上传文档解析处理器
type DocumentHandler struct {
	parser *document.Parser
}

// NewDocumentHandler 创建文档处理器
func NewDocumentHandler(parser *document.Parser) *DocumentHandler {
	return &DocumentHandler{parser: parser}
}

// Parse 解析 Base64 编码的上传文档
// @Summary 解析上传文档
// @Tags Documents
// @Accept json
// @Produce json
// @Router /api/documents/parse [post]
func (h *DocumentHandler) Parse(c *gin.Context) {
	var req document.ParseRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.parser.Parse(req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// ParseText 解析纯文本内容
// @Summary 解析纯文本
// @Tags Documents
// @Accept json
// @Produce json
// @Router /api/documents/parse-text [post]
func (h *DocumentHandler) ParseText(c *gin.Context) {
	var req dto.ParseTextRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.Success(c, document.ParseText(req.Content))
}
