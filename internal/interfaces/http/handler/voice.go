package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/infrastructure/integration/elevenlabs"
	"coursecraft-api/internal/interfaces/http/dto"
)

// VoiceHandler 语音合成处理器
type VoiceHandler struct {
	elevenlabs *elevenlabs.Client
}

// NewVoiceHandler 创建语音处理器
func NewVoiceHandler(client *elevenlabs.Client) *VoiceHandler {
	return &VoiceHandler{elevenlabs: client}
}

// Voices 列出可用音色
// @Summary 音色列表
// @Tags Voice
// @Produce json
// @Router /api/voice/voices [get]
func (h *VoiceHandler) Voices(c *gin.Context) {
	voices, err := h.elevenlabs.ListVoices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, voices)
}

// Generate 合成语音并返回 MP3 音频
// @Summary 合成语音
// @Tags Voice
// @Accept json
// @Produce audio/mpeg
// @Router /api/voice/generate [post]
func (h *VoiceHandler) Generate(c *gin.Context) {
	var req elevenlabs.SynthesizeRequest
	if !bindJSON(c, &req) {
		return
	}

	audio, err := h.elevenlabs.Synthesize(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="speech.mp3"`)
	c.Header("Content-Length", fmt.Sprintf("%d", len(audio)))
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// EstimateDuration 按语速估算音频时长
// @Summary 估算语音时长
// @Tags Voice
// @Accept json
// @Produce json
// @Router /api/voice/estimate-duration [post]
func (h *VoiceHandler) EstimateDuration(c *gin.Context) {
	var req dto.EstimateDurationRequest
	if !bindJSON(c, &req) {
		return
	}
	dto.Success(c, elevenlabs.EstimateDuration(req.Text, req.WordsPerMinute))
}
