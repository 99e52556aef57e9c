package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/export"
	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
)

const (
	pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExportHandler 文档导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// Slides 导出幻灯片为 PPTX 或 HTML
// @Summary 导出幻灯片
// @Tags Export
// @Accept json
// @Produce json
// @Router /api/export/slides [post]
func (h *ExportHandler) Slides(c *gin.Context) {
	var req export.SlidesExportRequest
	if !bindJSON(c, &req) {
		return
	}

	switch req.Format {
	case "", "pptx":
		data, err := export.ExportSlidesPPTX(req)
		if err != nil {
			respondError(c, err)
			return
		}
		writeAttachment(c, data, pptxContentType, safeFilename(req.Title, "presentation")+".pptx")
	case "html":
		html, err := export.ExportSlidesHTML(req)
		if err != nil {
			respondError(c, err)
			return
		}
		dto.Success(c, dto.HTMLExportResponse{Format: "html", HTMLContent: html})
	default:
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "unsupported export format: "+req.Format))
	}
}

// Word 导出 Word 文档
// @Summary 导出 Word 文档
// @Tags Export
// @Accept json
// @Produce json
// @Router /api/export/word [post]
func (h *ExportHandler) Word(c *gin.Context) {
	var req export.WordExportRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := export.ExportWord(req)
	if err != nil {
		respondError(c, err)
		return
	}
	writeAttachment(c, data, docxContentType, safeFilename(req.Title, "document")+".docx")
}

// writeAttachment 以附件形式返回二进制文档
func writeAttachment(c *gin.Context, data []byte, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, contentType, data)
}

// safeFilename 清洗标题生成下载文件名
func safeFilename(title, fallback string) string {
	name := strings.TrimSpace(title)
	if name == "" {
		return fallback
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", "\"", "", "\n", " ", "\r", " ")
	return replacer.Replace(name)
}
