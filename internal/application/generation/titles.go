package generation

import (
	"context"
	"strconv"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"

	"github.com/cloudwego/eino/components/model"
)

// TitleRequest 课程标题生成请求
type TitleRequest struct {
	Title    string `json:"title"`
	Language string `json:"language"`
}

// TitleSuggestion 备选标题
type TitleSuggestion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
}

// TitleResponse 标题生成结果
type TitleResponse struct {
	Suggestions []TitleSuggestion `json:"suggestions"`
}

// GenerateTitles 生成 5 个备选课程标题
func (s *Service) GenerateTitles(ctx context.Context, req TitleRequest) (resp *TitleResponse, err error) {
	defer func(start time.Time) { observeGeneration("titles", start, err) }(time.Now())

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "course title is required")
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptCourseTitlesSv, prompt.PromptCourseTitlesEn, lang),
		map[string]any{"title": req.Title},
		model.WithMaxTokens(4000),
	)
	if err != nil {
		return nil, err
	}

	resp = &TitleResponse{Suggestions: []TitleSuggestion{}}
	for i, item := range listField(payload, "suggestions") {
		m := mapItem(item)
		resp.Suggestions = append(resp.Suggestions, TitleSuggestion{
			ID:          stringField(m, "id", strconv.Itoa(i+1)),
			Title:       stringField(m, "title", "Untitled"),
			Explanation: textField(m, "explanation"),
		})
	}
	return resp, nil
}
