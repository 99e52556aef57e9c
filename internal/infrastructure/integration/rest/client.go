// Package rest 是外部厂商 API 的统一 HTTP 客户端：
// 负责 JSON 编解码、错误归类与厂商请求指标上报。
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/logger"
	"coursecraft-api/pkg/metrics"
)

// Client 面向单个厂商的 HTTP 客户端
type Client struct {
	vendor  string
	baseURL string
	http    *http.Client
}

// New 创建厂商客户端，vendor 用作日志与指标标签
func New(vendor, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		vendor:  vendor,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient 替换底层 HTTP 客户端，便于测试
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// Request 单次厂商调用的描述
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header map[string]string
	// Body 非空时按 JSON 编码；RawBody 优先于 Body
	Body    any
	RawBody []byte
	// Out 非空时将响应 JSON 反序列化进去
	Out any
}

// Do 执行请求并解析 JSON 响应
func (c *Client) Do(ctx context.Context, operation string, req Request) error {
	_, err := c.execute(ctx, operation, req, true)
	return err
}

// DoBytes 执行请求并返回原始响应体，用于音频等二进制载荷
func (c *Client) DoBytes(ctx context.Context, operation string, req Request) ([]byte, error) {
	return c.execute(ctx, operation, req, false)
}

func (c *Client) execute(ctx context.Context, operation string, req Request, decode bool) (body []byte, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.VendorRequestTotal.WithLabelValues(c.vendor, operation, status).Inc()
		metrics.VendorRequestDuration.WithLabelValues(c.vendor, operation).Observe(time.Since(start).Seconds())
	}()

	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var payload io.Reader
	contentType := ""
	switch {
	case req.RawBody != nil:
		payload = bytes.NewReader(req.RawBody)
	case req.Body != nil:
		data, merr := json.Marshal(req.Body)
		if merr != nil {
			return nil, apperrors.Wrap(merr, apperrors.CodeVendorError, "failed to encode request body")
		}
		payload = bytes.NewReader(data)
		contentType = "application/json; charset=utf-8"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, payload)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeVendorError, "failed to build request")
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeVendorError, fmt.Sprintf("%s request failed", c.vendor))
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeVendorError, "failed to read response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn(ctx, "vendor request failed",
			"vendor", c.vendor,
			"operation", operation,
			"status", resp.StatusCode,
		)
		return nil, classifyStatus(c.vendor, resp.StatusCode, body)
	}

	if decode && req.Out != nil {
		if err := json.Unmarshal(body, req.Out); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeVendorError, fmt.Sprintf("invalid %s response", c.vendor))
		}
	}
	return body, nil
}

// classifyStatus 将厂商错误映射为统一错误码：
// 429 限流、402 配额不足，其余归为厂商错误。
func classifyStatus(vendor string, status int, body []byte) *apperrors.AppError {
	message := vendorMessage(body)
	switch status {
	case http.StatusTooManyRequests:
		return apperrors.ErrRateLimited.WithDetail(fmt.Sprintf("%s: %s", vendor, message))
	case http.StatusPaymentRequired:
		return apperrors.ErrQuotaExhausted.WithDetail(fmt.Sprintf("%s: %s", vendor, message))
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.New(apperrors.CodeKeyNotProvided,
			fmt.Sprintf("%s rejected the API key", vendor)).WithDetail(message)
	default:
		return apperrors.New(apperrors.CodeVendorError,
			fmt.Sprintf("%s API error: %d", vendor, status)).WithDetail(message)
	}
}

// vendorMessage 尽力从错误响应体中挖出人类可读的信息
func vendorMessage(body []byte) string {
	var envelope map[string]any
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range []string{"message", "error", "detail"} {
			switch v := envelope[key].(type) {
			case string:
				if v != "" {
					return v
				}
			case map[string]any:
				if msg, ok := v["message"].(string); ok && msg != "" {
					return msg
				}
			}
		}
	}
	const maxLen = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
