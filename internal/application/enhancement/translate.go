package enhancement

import (
	"context"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// TranslateRequest 翻译请求
type TranslateRequest struct {
	Content        string `json:"content"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// TranslateResponse 翻译结果
type TranslateResponse struct {
	TranslatedContent string `json:"translated_content"`
	DetectedLanguage  string `json:"detected_language,omitempty"`
}

// TranslateContent 翻译内容到目标语言，保留原有格式与语气
func (s *Service) TranslateContent(ctx context.Context, req TranslateRequest) (resp *TranslateResponse, err error) {
	defer func(start time.Time) { observeEnhancement("translate", start, err) }(time.Now())

	if strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "content is required")
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "target_language is required")
	}

	raw, err := s.invokeRaw(ctx, prompt.PromptTranslate, map[string]any{
		"target_language": req.TargetLanguage,
		"content":         req.Content,
	})
	if err != nil {
		return nil, err
	}

	resp = &TranslateResponse{TranslatedContent: raw}
	if req.SourceLanguage != "" && req.SourceLanguage != "auto" {
		resp.DetectedLanguage = req.SourceLanguage
	}
	return resp, nil
}
