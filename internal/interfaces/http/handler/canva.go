package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/infrastructure/integration/canva"
	"coursecraft-api/internal/infrastructure/persistence/redis"
	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/logger"
)

// CanvaHandler Canva Connect OAuth 与设计处理器
type CanvaHandler struct {
	client *canva.Client
	states *redis.OAuthStateStore
}

// NewCanvaHandler 创建 Canva 处理器
func NewCanvaHandler(client *canva.Client, states *redis.OAuthStateStore) *CanvaHandler {
	return &CanvaHandler{
		client: client,
		states: states,
	}
}

// Authorize 生成授权链接并暂存 PKCE 状态
// @Summary 发起 Canva 授权
// @Tags Canva
// @Produce json
// @Router /api/canva/authorize [get]
func (h *CanvaHandler) Authorize(c *gin.Context) {
	authURL, state, codeVerifier, err := h.client.AuthorizationURL()
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.states.Save(c.Request.Context(), state, codeVerifier); err != nil {
		respondError(c, err)
		return
	}

	dto.Success(c, dto.CanvaAuthorizeResponse{
		AuthorizationURL: authURL,
		State:            state,
	})
}

// Callback 处理授权回调，校验 state 后换取令牌
// @Summary Canva 授权回调
// @Tags Canva
// @Produce json
// @Router /api/canva/callback [get]
func (h *CanvaHandler) Callback(c *gin.Context) {
	if errParam := c.Query("error"); errParam != "" {
		logger.Warn(c.Request.Context(), "canva authorization denied", "error", errParam)
		respondError(c, apperrors.New(apperrors.CodeOAuthFailed, "authorization denied: "+errParam))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "code and state are required"))
		return
	}

	codeVerifier, err := h.states.Consume(c.Request.Context(), state)
	if err != nil {
		respondError(c, err)
		return
	}

	tokens, err := h.client.ExchangeCode(c.Request.Context(), code, codeVerifier)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, tokens)
}

// Refresh 刷新访问令牌
// @Summary 刷新 Canva 令牌
// @Tags Canva
// @Accept json
// @Produce json
// @Router /api/canva/refresh [post]
func (h *CanvaHandler) Refresh(c *gin.Context) {
	var req dto.CanvaRefreshRequest
	if !bindJSON(c, &req) {
		return
	}

	tokens, err := h.client.RefreshTokens(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, tokens)
}

// Templates 列出品牌模板
// @Summary 品牌模板列表
// @Tags Canva
// @Produce json
// @Router /api/canva/templates [get]
func (h *CanvaHandler) Templates(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	templates, err := h.client.ListBrandTemplates(c.Request.Context(), token, queryInt(c, "limit", 20))
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, templates)
}

// CreateDesign 创建新设计
// @Summary 创建 Canva 设计
// @Tags Canva
// @Accept json
// @Produce json
// @Router /api/canva/designs [post]
func (h *CanvaHandler) CreateDesign(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	var req dto.CanvaCreateDesignRequest
	if !bindJSON(c, &req) {
		return
	}

	design, err := h.client.CreateDesign(c.Request.Context(), token, req.Title, req.DesignType, req.TemplateID)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, design)
}

// Autofill 用幻灯片数据填充品牌模板
// @Summary 自动填充模板
// @Tags Canva
// @Accept json
// @Produce json
// @Router /api/canva/autofill [post]
func (h *CanvaHandler) Autofill(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	var req dto.CanvaAutofillRequest
	if !bindJSON(c, &req) {
		return
	}

	design, err := h.client.AutofillTemplate(c.Request.Context(), token, req.TemplateID, req.Title, req.Slides)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Created(c, design)
}

// Export 发起设计导出
// @Summary 导出 Canva 设计
// @Tags Canva
// @Accept json
// @Produce json
// @Router /api/canva/export [post]
func (h *CanvaHandler) Export(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	var req dto.CanvaExportRequest
	if !bindJSON(c, &req) {
		return
	}

	jobID, err := h.client.ExportDesign(c.Request.Context(), token, req.DesignID, req.Format)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Accepted(c, dto.CanvaExportJobResponse{JobID: jobID})
}

// ExportStatus 查询导出任务状态
// @Summary 导出任务状态
// @Tags Canva
// @Produce json
// @Router /api/canva/export/{job_id} [get]
func (h *CanvaHandler) ExportStatus(c *gin.Context) {
	token, ok := h.accessToken(c)
	if !ok {
		return
	}

	jobID := c.Param("job_id")
	if jobID == "" {
		respondError(c, apperrors.New(apperrors.CodeInvalidParam, "job_id is required"))
		return
	}

	job, err := h.client.ExportStatus(c.Request.Context(), token, jobID)
	if err != nil {
		respondError(c, err)
		return
	}
	dto.Success(c, job)
}

// accessToken 从 Authorization 头提取用户的 Canva 访问令牌
func (h *CanvaHandler) accessToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if header == "" || token == "" || token == header {
		respondError(c, apperrors.New(apperrors.CodeKeyNotProvided, "Canva access token is required in Authorization header"))
		return "", false
	}
	return token, true
}
