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

// ScriptRequest 模块讲稿生成请求
type ScriptRequest struct {
	ModuleTitle       string `json:"module_title"`
	ModuleDescription string `json:"module_description"`
	CourseTitle       string `json:"course_title"`
	Language          string `json:"language"`
	TargetDuration    int    `json:"target_duration"`
	Tone              string `json:"tone"`
	AdditionalContext string `json:"additional_context"`
}

// ScriptSection 讲稿中的单个小节
type ScriptSection struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	SlideMarkers []string `json:"slide_markers"`
}

// ScriptResponse 讲稿生成结果
type ScriptResponse struct {
	ModuleID          string          `json:"module_id"`
	ModuleTitle       string          `json:"module_title"`
	Sections          []ScriptSection `json:"sections"`
	TotalWords        int             `json:"total_words"`
	EstimatedDuration int             `json:"estimated_duration"`
	Citations         []string        `json:"citations"`
}

// GenerateScript 生成模块讲稿
func (s *Service) GenerateScript(ctx context.Context, req ScriptRequest) (resp *ScriptResponse, err error) {
	defer func(start time.Time) { observeGeneration("script", start, err) }(time.Now())

	if strings.TrimSpace(req.ModuleTitle) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "module title is required")
	}
	if req.TargetDuration == 0 {
		req.TargetDuration = 10
	}
	if req.TargetDuration < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "target_duration must be at least 1")
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptModuleScriptSv, prompt.PromptModuleScriptEn, lang),
		map[string]any{
			"module_title":       req.ModuleTitle,
			"module_description": req.ModuleDescription,
			"course_title":       req.CourseTitle,
			"target_duration":    req.TargetDuration,
			"tone":               req.Tone,
			"context_text":       contextText(req.AdditionalContext),
		},
		model.WithMaxTokens(8000),
	)
	if err != nil {
		return nil, err
	}

	resp = &ScriptResponse{
		ModuleID:          stringField(payload, "module_id", "module-1"),
		ModuleTitle:       stringField(payload, "module_title", req.ModuleTitle),
		Sections:          []ScriptSection{},
		TotalWords:        intField(payload, "total_words", 0),
		EstimatedDuration: intField(payload, "estimated_duration", req.TargetDuration),
		Citations:         stringListField(payload, "citations"),
	}
	for i, item := range listField(payload, "sections") {
		m := mapItem(item)
		resp.Sections = append(resp.Sections, ScriptSection{
			ID:           stringField(m, "id", fmt.Sprintf("section-%d", i+1)),
			Title:        stringField(m, "title", "Untitled"),
			Content:      textField(m, "content"),
			SlideMarkers: stringListField(m, "slide_markers"),
		})
	}
	return resp, nil
}
