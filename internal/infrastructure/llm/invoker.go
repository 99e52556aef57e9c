package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// ChatInvoker 封装默认 ChatModel 的单次调用，统一错误归类与指标上报
type ChatInvoker struct {
	factory *EinoFactory
}

// NewChatInvoker 创建 ChatInvoker
func NewChatInvoker(factory *EinoFactory) *ChatInvoker {
	return &ChatInvoker{factory: factory}
}

// Invoke 调用默认 ChatModel 并返回回复消息
func (i *ChatInvoker) Invoke(ctx context.Context, messages []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	chatModel, err := i.factory.Default(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "chat model unavailable")
	}

	provider, modelName := i.factory.DefaultProvider()

	start := time.Now()
	out, err := chatModel.Generate(ctx, messages, opts...)
	metrics.LLMCallDuration.WithLabelValues(provider, modelName).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(provider, modelName, "error").Inc()
		return nil, classifyInvokeError(err)
	}
	metrics.LLMCallTotal.WithLabelValues(provider, modelName, "success").Inc()

	if out != nil && out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "prompt").Add(float64(out.ResponseMeta.Usage.PromptTokens))
		metrics.LLMTokensUsed.WithLabelValues(provider, modelName, "completion").Add(float64(out.ResponseMeta.Usage.CompletionTokens))
	}

	if out == nil || strings.TrimSpace(out.Content) == "" {
		return nil, apperrors.New(apperrors.CodeLLMCallFailed, "no content in AI response")
	}
	return out, nil
}

// classifyInvokeError 根据状态码与错误文本区分限流、配额耗尽和一般失败
func classifyInvokeError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "AI call timed out")
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return apperrors.ErrRateLimited.WithError(err)
	case strings.Contains(msg, "402") || strings.Contains(msg, "credit") || strings.Contains(msg, "quota"):
		return apperrors.ErrQuotaExhausted.WithError(err)
	default:
		return apperrors.Wrap(err, apperrors.CodeLLMCallFailed, "AI call failed")
	}
}
