// Package research 提供主题研究与网页抓取能力
package research

import (
	"context"
	"net/http"
	"time"

	"coursecraft-api/internal/workflow/prompt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Invoker 是研究服务对模型调用方的最小依赖
type Invoker interface {
	Invoke(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Service 主题研究服务
type Service struct {
	invoker    Invoker
	prompts    *prompt.Registry
	httpClient *http.Client
	maxURLs    int
}

// Option 配置研究服务
type Option func(*Service)

// WithHTTPClient 替换抓取用 HTTP 客户端，便于测试
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) { s.httpClient = client }
}

// WithMaxURLs 设置单次抓取的 URL 上限
func WithMaxURLs(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxURLs = n
		}
	}
}

// NewService 创建研究服务
func NewService(invoker Invoker, prompts *prompt.Registry, opts ...Option) *Service {
	s := &Service{
		invoker: invoker,
		prompts: prompts,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxURLs: 5,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
