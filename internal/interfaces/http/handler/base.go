package handler

import (
	"github.com/gin-gonic/gin"

	"coursecraft-api/internal/interfaces/http/dto"
	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/logger"
)

// bindJSON 解析请求体，失败时直接写 400 响应
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// respondError 将业务错误映射为统一错误响应。
// 非 AppError 会被 AsAppError 归为未知错误（HTTP 500）。
func respondError(c *gin.Context, err error) {
	appErr := apperrors.AsAppError(err)
	if appErr.HTTPStatus >= 500 {
		logger.Error(c.Request.Context(), "request failed", err,
			"path", c.Request.URL.Path,
			"code", string(appErr.Code),
		)
	}
	dto.ErrorWithDetail(c, appErr.HTTPStatus, appErr.Message, &dto.ErrorDetail{
		ErrorCode: string(appErr.Code),
		Details:   appErr.Detail,
	})
}
