package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/enhancement"
	"coursecraft-api/internal/application/generation"
	"coursecraft-api/internal/interfaces/http/dto"
)

// SlidesHandler 幻灯片生成与增强处理器
type SlidesHandler struct {
	generation  *generation.Service
	enhancement *enhancement.Service
}

// NewSlidesHandler 创建幻灯片处理器
func NewSlidesHandler(generationSvc *generation.Service, enhancementSvc *enhancement.Service) *SlidesHandler {
	return &SlidesHandler{
		generation:  generationSvc,
		enhancement: enhancementSvc,
	}
}

// Generate 基于讲稿生成幻灯片
// @Summary 生成幻灯片
// @Tags Slides
// @Accept json
// @Produce json
// @Router /api/slides/generate [post]
func (h *SlidesHandler) Generate(c *gin.Context) {
	var req generation.SlideRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateSlides(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// Enhance 增强单张幻灯片内容
// @Summary 增强幻灯片内容
// @Tags Slides
// @Accept json
// @Produce json
// @Router /api/slides/enhance [post]
func (h *SlidesHandler) Enhance(c *gin.Context) {
	var req enhancement.SlideEnhanceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.enhancement.EnhanceSlide(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}
