// Package generation 实现课程内容生成管线：
// 提示词组装 -> 模型调用 -> 结构化提取 -> 类型化结果
package generation

import (
	"context"
	"time"

	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Invoker 是生成管线对模型调用方的最小依赖
type Invoker interface {
	Invoke(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Service 课程内容生成服务
type Service struct {
	invoker Invoker
	prompts *prompt.Registry
}

// NewService 创建生成服务
func NewService(invoker Invoker, prompts *prompt.Registry) *Service {
	return &Service{
		invoker: invoker,
		prompts: prompts,
	}
}

// generateJSON 渲染提示词、调用模型并提取 JSON 载荷。
// 提取失败作为 ParseError 返回，由调用方决定是否兜底。
func (s *Service) generateJSON(ctx context.Context, id prompt.PromptID, vars map[string]any, opts ...model.Option) (map[string]any, error) {
	tpl, err := s.prompts.ChatTemplate(id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt template unavailable")
	}

	messages, err := tpl.Format(ctx, vars)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt rendering failed")
	}

	out, err := s.invoker.Invoke(ctx, messages, opts...)
	if err != nil {
		return nil, err
	}

	extraction := node.ExtractJSON(out.Content)
	if !extraction.OK() {
		return nil, apperrors.New(apperrors.CodeParseFailed, "failed to parse JSON from AI response").WithDetail(extraction.Reason)
	}
	return extraction.Payload, nil
}

func observeGeneration(feature string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.GenerationTotal.WithLabelValues(feature, status).Inc()
	metrics.GenerationDuration.WithLabelValues(feature).Observe(time.Since(start).Seconds())
}

// localized 按请求语言选择提示词模板，非瑞典语回退英文
func localized(sv, en prompt.PromptID, language string) prompt.PromptID {
	if language == "sv" {
		return sv
	}
	return en
}

func defaultLanguage(language string) string {
	if language == "" {
		return "sv"
	}
	return language
}
