package enhancement

import (
	"context"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// StructureAnalysisRequest 课程结构分析请求
type StructureAnalysisRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	TargetAudience string `json:"target_audience,omitempty"`
}

// StructureAnalysis 课程结构建议
type StructureAnalysis struct {
	RecommendedModules  int      `json:"recommended_modules"`
	RecommendedDuration int      `json:"recommended_duration"`
	Complexity          string   `json:"complexity"`
	TargetAudience      string   `json:"target_audience,omitempty"`
	KeyTopics           []string `json:"key_topics"`
	LearningObjectives  []string `json:"learning_objectives"`
	Suggestions         []string `json:"suggestions"`
}

// ManuscriptAnalysis 手稿分析结果
type ManuscriptAnalysis struct {
	Title             string   `json:"title"`
	Summary           string   `json:"summary"`
	KeyTopics         []string `json:"key_topics"`
	SuggestedModules  []string `json:"suggested_modules"`
	EstimatedDuration int      `json:"estimated_duration,omitempty"`
	Complexity        string   `json:"complexity,omitempty"`
	TargetAudience    string   `json:"target_audience,omitempty"`
}

// AnalyzeStructure 分析课程主题并给出结构建议，解析失败走保守兜底
func (s *Service) AnalyzeStructure(ctx context.Context, req StructureAnalysisRequest) (resp *StructureAnalysis, err error) {
	defer func(start time.Time) { observeEnhancement("structure_analysis", start, err) }(time.Now())

	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "title is required")
	}
	description := req.Description
	if description == "" {
		description = "N/A"
	}
	audience := req.TargetAudience
	if audience == "" {
		audience = "General"
	}

	raw, err := s.invokeRaw(ctx, prompt.PromptStructureAnalysis, map[string]any{
		"title":           req.Title,
		"description":     description,
		"target_audience": audience,
	})
	if err != nil {
		return nil, err
	}

	resp = &StructureAnalysis{}
	if !decodeInto(ctx, "structure_analysis", raw, resp) {
		return &StructureAnalysis{
			RecommendedModules:  5,
			RecommendedDuration: 60,
			Complexity:          "intermediate",
			KeyTopics:           []string{},
			LearningObjectives:  []string{},
			Suggestions:         []string{"Could not analyze structure"},
		}, nil
	}
	if resp.KeyTopics == nil {
		resp.KeyTopics = []string{}
	}
	if resp.LearningObjectives == nil {
		resp.LearningObjectives = []string{}
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	return resp, nil
}

// AnalyzeManuscript 分析上传手稿，提取建课所需的关键信息
func (s *Service) AnalyzeManuscript(ctx context.Context, content, language string) (resp *ManuscriptAnalysis, err error) {
	defer func(start time.Time) { observeEnhancement("manuscript_analysis", start, err) }(time.Now())

	if strings.TrimSpace(content) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "content is required")
	}

	raw, err := s.invokeRaw(ctx, prompt.PromptManuscriptAnalysis, map[string]any{
		"language": defaultLanguage(language),
		"content":  node.TruncateByRunes(content, 10000),
	})
	if err != nil {
		return nil, err
	}

	resp = &ManuscriptAnalysis{}
	if !decodeInto(ctx, "manuscript_analysis", raw, resp) {
		return &ManuscriptAnalysis{
			Title:            "Untitled Course",
			Summary:          "Could not analyze manuscript",
			KeyTopics:        []string{},
			SuggestedModules: []string{},
		}, nil
	}
	if resp.Title == "" {
		resp.Title = "Untitled Course"
	}
	if resp.KeyTopics == nil {
		resp.KeyTopics = []string{}
	}
	if resp.SuggestedModules == nil {
		resp.SuggestedModules = []string{}
	}
	return resp, nil
}
