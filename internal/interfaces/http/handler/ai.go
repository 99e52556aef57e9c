package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/enhancement"
	"coursecraft-api/internal/interfaces/http/dto"
)

// AIHandler 内容增强与分析处理器
type AIHandler struct {
	enhancement *enhancement.Service
}

// NewAIHandler 创建 AI 辅助处理器
func NewAIHandler(enhancementSvc *enhancement.Service) *AIHandler {
	return &AIHandler{enhancement: enhancementSvc}
}

// Review 审阅并编辑内容
// @Summary AI 审阅内容
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/review [post]
func (h *AIHandler) Review(c *gin.Context) {
	var req enhancement.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.enhancement.ReviewContent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// Translate 翻译内容
// @Summary 翻译内容
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/translate [post]
func (h *AIHandler) Translate(c *gin.Context) {
	var req enhancement.TranslateRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.enhancement.TranslateContent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// AnalyzeStructure 分析课程结构
// @Summary 课程结构建议
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/analyze-structure [post]
func (h *AIHandler) AnalyzeStructure(c *gin.Context) {
	var req enhancement.StructureAnalysisRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.enhancement.AnalyzeStructure(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// AnalyzeManuscript 分析手稿并提取课程骨架
// @Summary 手稿分析
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/analyze-manuscript [post]
func (h *AIHandler) AnalyzeManuscript(c *gin.Context) {
	var req dto.ManuscriptAnalysisRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.enhancement.AnalyzeManuscript(c.Request.Context(), req.Content, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// RecommendModel 推荐幻灯片生成引擎
// @Summary 推荐生成引擎
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/recommend-model [post]
func (h *AIHandler) RecommendModel(c *gin.Context) {
	var req enhancement.ModelRecommendationRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.Success(c, h.enhancement.RecommendModel(req))
}

// RecommendResearchMode 推荐研究模式
// @Summary 推荐研究模式
// @Tags AI
// @Accept json
// @Produce json
// @Router /api/ai/recommend-research-mode [post]
func (h *AIHandler) RecommendResearchMode(c *gin.Context) {
	var req dto.ResearchModeRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.Success(c, h.enhancement.RecommendResearchMode(req.Topic, req.Context))
}
