package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"

	"github.com/cloudwego/eino/components/model"
)

// OutlineRequest 课程大纲生成请求
type OutlineRequest struct {
	Title             string `json:"title"`
	NumModules        int    `json:"num_modules"`
	Language          string `json:"language"`
	AdditionalContext string `json:"additional_context"`
}

// ModuleItem 大纲中的单个模块
type ModuleItem struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	KeyTopics         []string `json:"key_topics"`
}

// OutlineResponse 大纲生成结果
type OutlineResponse struct {
	Modules       []ModuleItem `json:"modules"`
	TotalDuration int          `json:"total_duration"`
}

// GenerateOutline 生成课程大纲
func (s *Service) GenerateOutline(ctx context.Context, req OutlineRequest) (resp *OutlineResponse, err error) {
	defer func(start time.Time) { observeGeneration("outline", start, err) }(time.Now())

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "course title is required")
	}
	if req.NumModules == 0 {
		req.NumModules = 5
	}
	if req.NumModules < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "num_modules must be at least 1")
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptCourseOutlineSv, prompt.PromptCourseOutlineEn, lang),
		map[string]any{
			"title":       req.Title,
			"num_modules": req.NumModules,
			"context_text": contextText(req.AdditionalContext),
		},
		model.WithMaxTokens(6000),
	)
	if err != nil {
		return nil, err
	}

	resp = &OutlineResponse{Modules: []ModuleItem{}}
	total := 0
	for i, item := range listField(payload, "modules") {
		m := mapItem(item)
		module := ModuleItem{
			ID:                stringField(m, "id", fmt.Sprintf("module-%d", i+1)),
			Title:             stringField(m, "title", "Untitled"),
			Description:       textField(m, "description"),
			EstimatedDuration: intField(m, "estimated_duration", 0),
			KeyTopics:         stringListField(m, "key_topics"),
		}
		total += module.EstimatedDuration
		resp.Modules = append(resp.Modules, module)
	}
	resp.TotalDuration = intField(payload, "total_duration", total)
	return resp, nil
}

// contextText 可选上下文拼入用户提示词，缺省为空串
func contextText(ctx string) string {
	if strings.TrimSpace(ctx) == "" {
		return ""
	}
	return "\n\nAdditional context: " + ctx
}
