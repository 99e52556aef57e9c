package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/research"
	"coursecraft-api/internal/interfaces/http/dto"
)

// ResearchHandler 主题研究与网页抓取处理器
type ResearchHandler struct {
	research *research.Service
}

// NewResearchHandler 创建研究处理器
func NewResearchHandler(researchSvc *research.Service) *ResearchHandler {
	return &ResearchHandler{research: researchSvc}
}

// Topic AI 主题研究
// @Summary 主题研究
// @Tags Research
// @Accept json
// @Produce json
// @Router /api/research/topic [post]
func (h *ResearchHandler) Topic(c *gin.Context) {
	var req research.TopicRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.research.ResearchTopic(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, result)
}

// Scrape 抓取并提取网页正文
// @Summary 网页抓取
// @Tags Research
// @Accept json
// @Produce json
// @Router /api/research/scrape [post]
func (h *ResearchHandler) Scrape(c *gin.Context) {
	var req dto.ScrapeRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.research.ScrapeURLs(c.Request.Context(), req.URLs)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}
