package handler

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/infrastructure/integration/bunny"
	"coursecraft-api/internal/infrastructure/integration/heygen"
	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
)

// VideoHandler 数字人视频与视频库处理器
type VideoHandler struct {
	heygen *heygen.Client
	bunny  *bunny.Client
}

// NewVideoHandler 创建视频处理器
func NewVideoHandler(heygenClient *heygen.Client, bunnyClient *bunny.Client) *VideoHandler {
	return &VideoHandler{
		heygen: heygenClient,
		bunny:  bunnyClient,
	}
}

// Avatars 列出可用数字人
// @Summary 数字人列表
// @Tags Video
// @Produce json
// @Router /api/video/avatars [get]
func (h *VideoHandler) Avatars(c *gin.Context) {
	avatars, err := h.heygen.ListAvatars(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, avatars)
}

// Generate 提交数字人视频生成任务
// @Summary 生成数字人视频
// @Tags Video
// @Accept json
// @Produce json
// @Router /api/video/generate [post]
func (h *VideoHandler) Generate(c *gin.Context) {
	var req heygen.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.heygen.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Accepted(c, resp)
}

// Status 查询视频生成状态
// @Summary 视频生成状态
// @Tags Video
// @Produce json
// @Router /api/video/status/{video_id} [get]
func (h *VideoHandler) Status(c *gin.Context) {
	videoID := c.Param("video_id")
	if videoID == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "video_id is required"))
		return
	}

	status, err := h.heygen.CheckStatus(c.Request.Context(), videoID)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, status)
}

// Library 列出视频库内容
// @Summary 视频库列表
// @Tags Video
// @Produce json
// @Router /api/video/library [get]
func (h *VideoHandler) Library(c *gin.Context) {
	videos, err := h.bunny.ListVideos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, videos)
}

// LibraryUpload 上传视频到视频库
// @Summary 上传视频
// @Tags Video
// @Accept json
// @Produce json
// @Router /api/video/library/upload [post]
func (h *VideoHandler) LibraryUpload(c *gin.Context) {
	var req dto.LibraryUploadRequest
	if !bindJSON(c, &req) {
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "content must be valid base64"))
		return
	}

	result, err := h.bunny.Upload(c.Request.Context(), content, req.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, result)
}
