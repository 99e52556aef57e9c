// Package enhancement 提供内容润色与分析能力：
// AI 审阅、翻译、幻灯片增强、课程结构与手稿分析、模型推荐。
// 与 generation 不同，多数操作在解析失败时走兜底结果而非报错。
package enhancement

import (
	"context"
	"encoding/json"
	"time"

	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/logger"
	"coursecraft-api/pkg/metrics"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// Invoker 是增强服务对模型调用方的最小依赖
type Invoker interface {
	Invoke(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// Service 内容增强服务
type Service struct {
	invoker Invoker
	prompts *prompt.Registry
}

// NewService 创建增强服务
func NewService(invoker Invoker, prompts *prompt.Registry) *Service {
	return &Service{
		invoker: invoker,
		prompts: prompts,
	}
}

// invokeRaw 渲染提示词并返回模型原始文本
func (s *Service) invokeRaw(ctx context.Context, id prompt.PromptID, vars map[string]any, opts ...model.Option) (string, error) {
	tpl, err := s.prompts.ChatTemplate(id)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt template unavailable")
	}

	messages, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt rendering failed")
	}

	out, err := s.invoker.Invoke(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return out.Content, nil
}

// decodeInto 从模型回复中提取 JSON 并严格反序列化到 target。
// 返回 false 表示回复不可用，调用方应走兜底结果。
func decodeInto(ctx context.Context, feature, raw string, target any) bool {
	extraction := node.ExtractJSON(raw)
	if !extraction.OK() {
		logger.Warn(ctx, "falling back to default result",
			"feature", feature,
			"reason", extraction.Reason,
		)
		metrics.GenerationFallbackTotal.WithLabelValues(feature).Inc()
		return false
	}
	if err := json.Unmarshal(extraction.RawJSON, target); err != nil {
		logger.Warn(ctx, "falling back to default result",
			"feature", feature,
			"reason", err.Error(),
		)
		metrics.GenerationFallbackTotal.WithLabelValues(feature).Inc()
		return false
	}
	return true
}

func observeEnhancement(feature string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.GenerationTotal.WithLabelValues(feature, status).Inc()
	metrics.GenerationDuration.WithLabelValues(feature).Observe(time.Since(start).Seconds())
}
