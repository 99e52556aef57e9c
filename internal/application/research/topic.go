package research

import (
	"context"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
	"coursecraft-api/pkg/metrics"
)

// TopicRequest 主题研究请求
type TopicRequest struct {
	Topic    string `json:"topic"`
	Context  string `json:"context,omitempty"`
	Language string `json:"language"`
	Depth    string `json:"depth"`
}

// TopicResult 主题研究结果，内容为 Markdown 文本
type TopicResult struct {
	Topic    string `json:"topic"`
	Content  string `json:"content"`
	Language string `json:"language"`
	Depth    string `json:"depth"`
}

var depthInstructions = map[string]string{
	"quick":    "Provide a brief 2-3 paragraph summary.",
	"standard": "Provide a comprehensive overview with key points and examples.",
	"deep":     "Provide an in-depth analysis with multiple perspectives, evidence, and detailed explanations.",
}

// ResearchTopic 用 AI 对主题做结构化调研
func (s *Service) ResearchTopic(ctx context.Context, req TopicRequest) (result *TopicResult, err error) {
	defer func(start time.Time) {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.GenerationTotal.WithLabelValues("topic_research", status).Inc()
		metrics.GenerationDuration.WithLabelValues("topic_research").Observe(time.Since(start).Seconds())
	}(time.Now())

	if strings.TrimSpace(req.Topic) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "topic is required")
	}
	if req.Language == "" {
		req.Language = "sv"
	}
	instruction, ok := depthInstructions[req.Depth]
	if !ok {
		req.Depth = "standard"
		instruction = depthInstructions["standard"]
	}

	contextText := ""
	if req.Context != "" {
		contextText = "Context: " + req.Context
	}

	tpl, err := s.prompts.ChatTemplate(prompt.PromptTopicResearch)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt template unavailable")
	}
	messages, err := tpl.Format(ctx, map[string]any{
		"language":          req.Language,
		"depth_instruction": instruction,
		"topic":             req.Topic,
		"context_text":      contextText,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeGenerationFailed, "prompt rendering failed")
	}

	out, err := s.invoker.Invoke(ctx, messages)
	if err != nil {
		return nil, err
	}

	return &TopicResult{
		Topic:    req.Topic,
		Content:  out.Content,
		Language: req.Language,
		Depth:    req.Depth,
	}, nil
}
