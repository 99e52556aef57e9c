package generation

import (
	"context"
	"strings"
	"time"

	"coursecraft-api/internal/application/styleguide"
	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// SlideRequest 幻灯片生成请求
type SlideRequest struct {
	ScriptContent          string `json:"script_content"`
	ModuleTitle            string `json:"module_title"`
	CourseTitle            string `json:"course_title"`
	NumSlides              int    `json:"num_slides"`
	Language               string `json:"language"`
	Tone                   string `json:"tone"`
	Verbosity              string `json:"verbosity"`
	IncludeTitleSlide      bool   `json:"include_title_slide"`
	IncludeTableOfContents bool   `json:"include_table_of_contents"`
	Industry               string `json:"industry"`
	AudienceType           string `json:"audience_type"`
}

// SlideContent 单张幻灯片
type SlideContent struct {
	SlideNumber         int    `json:"slide_number"`
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle,omitempty"`
	Content             string `json:"content"`
	SpeakerNotes        string `json:"speaker_notes"`
	Layout              string `json:"layout"`
	SuggestedImageQuery string `json:"suggested_image_query"`
	ImageURL            string `json:"image_url,omitempty"`
	ImageSource         string `json:"image_source,omitempty"`
	ImageAttribution    string `json:"image_attribution,omitempty"`
}

// SlideResponse 幻灯片生成结果
type SlideResponse struct {
	PresentationTitle string         `json:"presentation_title"`
	Slides            []SlideContent `json:"slides"`
	SlideCount        int            `json:"slide_count"`
	Source            string         `json:"source"`
}

// GenerateSlides 基于讲稿生成幻灯片
func (s *Service) GenerateSlides(ctx context.Context, req SlideRequest) (resp *SlideResponse, err error) {
	defer func(start time.Time) { observeGeneration("slides", start, err) }(time.Now())

	if strings.TrimSpace(req.ScriptContent) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "script content is required")
	}
	if req.NumSlides == 0 {
		req.NumSlides = 10
	}
	if req.NumSlides < 1 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "num_slides must be at least 1")
	}
	if req.Verbosity == "" {
		req.Verbosity = "standard"
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}
	lang := defaultLanguage(req.Language)

	payload, err := s.generateJSON(ctx,
		localized(prompt.PromptSlideDeckSv, prompt.PromptSlideDeckEn, lang),
		map[string]any{
			"num_slides":         req.NumSlides,
			"verbosity_guidance": styleguide.VerbosityGuidance(req.Verbosity),
			"tone_guidance":      styleguide.ToneGuidance(req.Tone),
			"layout_guidance":    styleguide.SlideLayoutGuidance(),
			"module_title":       req.ModuleTitle,
			"course_title":       req.CourseTitle,
			"script_content":     node.TruncateWithNote(req.ScriptContent, 4000),
		},
	)
	if err != nil {
		return nil, err
	}

	resp = &SlideResponse{
		PresentationTitle: stringField(payload, "presentation_title", req.ModuleTitle),
		Slides:            []SlideContent{},
		Source:            "internal-ai",
	}
	for i, item := range listField(payload, "slides") {
		m := mapItem(item)
		resp.Slides = append(resp.Slides, SlideContent{
			SlideNumber:         intField(m, "slide_number", i+1),
			Title:               stringField(m, "title", "Untitled"),
			Subtitle:            optionalStringField(m, "subtitle"),
			Content:             textField(m, "content"),
			SpeakerNotes:        textField(m, "speaker_notes"),
			Layout:              stringField(m, "layout", "title-content"),
			SuggestedImageQuery: textField(m, "suggested_image_query"),
			ImageURL:            optionalStringField(m, "image_url"),
			ImageSource:         optionalStringField(m, "image_source"),
			ImageAttribution:    optionalStringField(m, "image_attribution"),
		})
	}
	resp.SlideCount = len(resp.Slides)
	return resp, nil
}
