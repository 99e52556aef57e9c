package enhancement

import (
	"context"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// ReviewRequest AI 审阅编辑请求
type ReviewRequest struct {
	Content  string `json:"content"`
	Action   string `json:"action"`
	Context  string `json:"context,omitempty"`
	Language string `json:"language"`
}

// ReviewResponse AI 审阅编辑结果
type ReviewResponse struct {
	ImprovedContent string   `json:"improved_content"`
	ChangesMade     []string `json:"changes_made"`
	Suggestions     []string `json:"suggestions"`
}

var actionPrompts = map[string]string{
	"improve":      "Improve this content for clarity, engagement, and professionalism",
	"simplify":     "Simplify this content to be more accessible and easier to understand",
	"expand":       "Expand this content with more details, examples, and explanations",
	"fix_grammar":  "Fix grammar, spelling, and punctuation errors",
	"add_examples": "Add relevant practical examples to illustrate the concepts",
}

// ReviewContent 审阅并编辑教学内容。
// 模型未按 JSON 回复时，整段回复作为改进后内容返回。
func (s *Service) ReviewContent(ctx context.Context, req ReviewRequest) (resp *ReviewResponse, err error) {
	defer func(start time.Time) { observeEnhancement("content_review", start, err) }(time.Now())

	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "content is required")
	}
	instruction, ok := actionPrompts[req.Action]
	if !ok {
		instruction = actionPrompts["improve"]
	}

	contextText := ""
	if req.Context != "" {
		contextText = "Context: " + req.Context
	}

	raw, err := s.invokeRaw(ctx, prompt.PromptContentReview, map[string]any{
		"language":           defaultLanguage(req.Language),
		"action_instruction": instruction,
		"content":            req.Content,
		"context_text":       contextText,
	})
	if err != nil {
		return nil, err
	}

	resp = &ReviewResponse{}
	if !decodeInto(ctx, "content_review", raw, resp) {
		return &ReviewResponse{
			ImprovedContent: raw,
			ChangesMade:     []string{"Content improved"},
			Suggestions:     []string{},
		}, nil
	}
	if resp.ChangesMade == nil {
		resp.ChangesMade = []string{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp, nil
}

func defaultLanguage(language string) string {
	if language == "" {
		return "sv"
	}
	return language
}
