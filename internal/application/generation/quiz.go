package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// QuizRequest 知识测验生成请求
type QuizRequest struct {
	ModuleTitle           string `json:"module_title"`
	ModuleContent         string `json:"module_content"`
	CourseTitle           string `json:"course_title"`
	NumQuestions          int    `json:"num_questions"`
	IncludeMultipleChoice bool   `json:"include_multiple_choice"`
	IncludeTrueFalse      bool   `json:"include_true_false"`
	Language              string `json:"language"`
}

// QuizQuestion 测验题目
type QuizQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
	Difficulty    string   `json:"difficulty"`
}

// QuizResponse 测验生成结果
type QuizResponse struct {
	QuizTitle    string         `json:"quiz_title"`
	Questions    []QuizQuestion `json:"questions"`
	TotalPoints  int            `json:"total_points"`
	PassingScore int            `json:"passing_score"`
}

// GenerateQuiz 生成模块测验。返回题数以模型为准，与请求数不一致时不报错。
func (s *Service) GenerateQuiz(ctx context.Context, req QuizRequest) (resp *QuizResponse, err error) {
	defer func(start time.Time) { observeGeneration("quiz", start, err) }(time.Now())

	if strings.TrimSpace(req.ModuleContent) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "module content is required")
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = 5
	}
	if req.NumQuestions < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "num_questions must be at least 1")
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptQuizSv, prompt.PromptQuizEn, lang),
		map[string]any{
			"num_questions":  req.NumQuestions,
			"module_title":   req.ModuleTitle,
			"course_title":   req.CourseTitle,
			"module_content": node.TruncateWithNote(req.ModuleContent, 3000),
		},
	)
	if err != nil {
		return nil, err
	}

	resp = &QuizResponse{
		QuizTitle: stringField(payload, "quiz_title", req.ModuleTitle),
		Questions: []QuizQuestion{},
	}
	total := 0
	for i, item := range listField(payload, "questions") {
		m := mapItem(item)
		q := QuizQuestion{
			ID:            stringField(m, "id", fmt.Sprintf("q-%d", i+1)),
			Type:          stringField(m, "type", "multiple_choice"),
			Question:      textField(m, "question"),
			Options:       stringListField(m, "options"),
			CorrectAnswer: textField(m, "correct_answer"),
			Explanation:   textField(m, "explanation"),
			Points:        intField(m, "points", 10),
			Difficulty:    stringField(m, "difficulty", "medium"),
		}
		total += q.Points
		resp.Questions = append(resp.Questions, q)
	}
	resp.TotalPoints = intField(payload, "total_points", total)
	resp.PassingScore = intField(payload, "passing_score", resp.TotalPoints*7/10)
	return resp, nil
}
