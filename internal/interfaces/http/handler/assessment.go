package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/generation"
	"coursecraft-api/internal/interfaces/http/dto"
)

// AssessmentHandler 测验与练习生成处理器
type AssessmentHandler struct {
	generation *generation.Service
}

// NewAssessmentHandler 创建考核处理器
func NewAssessmentHandler(generationSvc *generation.Service) *AssessmentHandler {
	return &AssessmentHandler{generation: generationSvc}
}

// GenerateQuiz 生成模块测验
// @Summary 生成测验
// @Tags Assessment
// @Accept json
// @Produce json
// @Router /api/assessment/generate-quiz [post]
func (h *AssessmentHandler) GenerateQuiz(c *gin.Context) {
	var req generation.QuizRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateQuiz(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// GenerateExercises 生成模块练习
// @Summary 生成练习题
// @Tags Assessment
// @Accept json
// @Produce json
// @Router /api/assessment/generate-exercises [post]
func (h *AssessmentHandler) GenerateExercises(c *gin.Context) {
	var req generation.ExerciseRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateExercises(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}
