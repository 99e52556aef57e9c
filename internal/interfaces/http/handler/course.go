package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/application/generation"
	"coursecraft-api/internal/interfaces/http/dto"
)

// CourseHandler 课程内容生成处理器
type CourseHandler struct {
	generation *generation.Service
}

// NewCourseHandler 创建课程处理器
func NewCourseHandler(generationSvc *generation.Service) *CourseHandler {
	return &CourseHandler{generation: generationSvc}
}

// GenerateTitles 生成备选课程标题
// @Summary 生成课程标题建议
// @Tags Course
// @Accept json
// @Produce json
// @Router /api/course/generate-titles [post]
func (h *CourseHandler) GenerateTitles(c *gin.Context) {
	var req generation.TitleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateTitles(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// GenerateOutline 生成课程大纲
// @Summary 生成课程大纲
// @Tags Course
// @Accept json
// @Produce json
// @Router /api/course/generate-outline [post]
func (h *CourseHandler) GenerateOutline(c *gin.Context) {
	var req generation.OutlineRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateOutline(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}

// GenerateScript 生成模块讲稿
// @Summary 生成模块讲稿
// @Tags Course
// @Accept json
// @Produce json
// @Router /api/course/generate-script [post]
func (h *CourseHandler) GenerateScript(c *gin.Context) {
	var req generation.ScriptRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.generation.GenerateScript(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, resp)
}
