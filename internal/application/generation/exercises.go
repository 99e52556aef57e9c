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

// ExerciseRequest 练习题生成请求
type ExerciseRequest struct {
	ModuleTitle   string `json:"module_title"`
	ModuleContent string `json:"module_content"`
	CourseTitle   string `json:"course_title"`
	NumExercises  int    `json:"num_exercises"`
	Difficulty    string `json:"difficulty"`
	Language      string `json:"language"`
}

// Exercise 单道练习题
type Exercise struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        int      `json:"points"`
}

// ExerciseResponse 练习题生成结果
type ExerciseResponse struct {
	Exercises   []Exercise `json:"exercises"`
	TotalPoints int        `json:"total_points"`
}

// GenerateExercises 生成模块练习题
func (s *Service) GenerateExercises(ctx context.Context, req ExerciseRequest) (resp *ExerciseResponse, err error) {
	defer func(start time.Time) { observeGeneration("exercises", start, err) }(time.Now())

	if strings.TrimSpace(req.ModuleContent) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "module content is required")
	}
	if req.NumExercises == 0 {
		req.NumExercises = 3
	}
	if req.NumExercises < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "num_exercises must be at least 1")
	}
	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptExercisesSv, prompt.PromptExercisesEn, lang),
		map[string]any{
			"num_exercises":  req.NumExercises,
			"difficulty":     req.Difficulty,
			"module_title":   req.ModuleTitle,
			"course_title":   req.CourseTitle,
			"module_content": node.TruncateWithNote(req.ModuleContent, 3000),
		},
	)
	if err != nil {
		return nil, err
	}

	resp = &ExerciseResponse{Exercises: []Exercise{}}
	total := 0
	for i, item := range listField(payload, "exercises") {
		m := mapItem(item)
		ex := Exercise{
			ID:            stringField(m, "id", fmt.Sprintf("ex-%d", i+1)),
			Type:          stringField(m, "type", "multiple_choice"),
			Question:      textField(m, "question"),
			Options:       stringListField(m, "options"),
			CorrectAnswer: textField(m, "correct_answer"),
			Explanation:   textField(m, "explanation"),
			Points:        intField(m, "points", 10),
		}
		total += ex.Points
		resp.Exercises = append(resp.Exercises, ex)
	}
	resp.TotalPoints = intField(payload, "total_points", total)
	return resp, nil
}
