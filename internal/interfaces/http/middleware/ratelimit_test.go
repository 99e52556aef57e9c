package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (f *fakeLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	f.keys = append(f.keys, key)
	return f.allowed, f.err
}

func newRateLimitRouter(cfg RateLimitConfig, limiter RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(cfg, limiter))
	r.POST("/api/course/generate-titles", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestRateLimitAllows(t *testing.T) {
	limiter := &fakeLimiter{allowed: true}
	r := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/course/generate-titles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, limiter.keys, 1)
	assert.Contains(t, limiter.keys[0], ":/api/course/generate-titles")
}

func TestRateLimitRejects(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	r := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/course/generate-titles", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimitDisabled(t *testing.T) {
	limiter := &fakeLimiter{allowed: false}
	r := newRateLimitRouter(RateLimitConfig{Enabled: false}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/course/generate-titles", nil)
	r.ServeHTTP(w, req)

	// 未启用时不触碰限流器
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, limiter.keys)
}

func TestRateLimitFailsOpen(t *testing.T) {
	limiter := &fakeLimiter{allowed: false, err: assert.AnError}
	r := newRateLimitRouter(RateLimitConfig{Enabled: true, RequestsPerSecond: 5}, limiter)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/course/generate-titles", nil)
	r.ServeHTTP(w, req)

	// 限流器故障时放行
	assert.Equal(t, http.StatusOK, w.Code)
}
