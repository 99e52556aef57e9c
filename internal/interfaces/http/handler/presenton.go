package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/infrastructure/integration/presenton"
	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
)

// PresentonHandler Presenton 幻灯片引擎处理器
type PresentonHandler struct {
	client *presenton.Client
}

// NewPresentonHandler 创建 Presenton 处理器
func NewPresentonHandler(client *presenton.Client) *PresentonHandler {
	return &PresentonHandler{client: client}
}

// Generate 提交异步演示文稿生成任务
// @Summary 提交 Presenton 生成任务
// @Tags Presenton
// @Accept json
// @Produce json
// @Router /api/presenton/generate [post]
func (h *PresentonHandler) Generate(c *gin.Context) {
	var req presenton.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.client.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Accepted(c, task)
}

// Status 查询生成任务状态
// @Summary 查询 Presenton 任务状态
// @Tags Presenton
// @Produce json
// @Router /api/presenton/status/{task_id} [get]
func (h *PresentonHandler) Status(c *gin.Context) {
	taskID := c.Param("task_id")
	if taskID == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "task_id is required"))
		return
	}

	status, err := h.client.CheckStatus(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, status)
}
