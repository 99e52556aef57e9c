package enhancement

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"coursecraft-api/internal/workflow/node"
	"coursecraft-api/internal/workflow/prompt"
	apperrors "coursecraft-api/pkg/errors"
)

// SlideEnhanceRequest 单张幻灯片增强请求
type SlideEnhanceRequest struct {
	SlideTitle      string `json:"slide_title"`
	SlideContent    string `json:"slide_content"`
	EnhancementType string `json:"enhancement_type"`
	Language        string `json:"language"`
}

// SlideEnhanceResponse 幻灯片增强结果
type SlideEnhanceResponse struct {
	EnhancedContent string   `json:"enhanced_content"`
	Suggestions     []string `json:"suggestions"`
	ImprovedTitle   string   `json:"improved_title,omitempty"`
}

var enhancementInstructions = map[string]string{
	"improve_clarity": "Gör innehållet tydligare och mer lättförståeligt",
	"add_examples":    "Lägg till konkreta exempel och illustrationer",
	"simplify":        "Förenkla språket och gör det mer tillgängligt",
	"add_data":        "Lägg till relevanta statistik och data",
}

// EnhanceSlide 按指定增强类型改写幻灯片内容。
// 此操作要求结构化回复，解析失败即报错，不走兜底。
func (s *Service) EnhanceSlide(ctx context.Context, req SlideEnhanceRequest) (resp *SlideEnhanceResponse, err error) {
	defer func(start time.Time) { observeEnhancement("slide_enhance", start, err) }(time.Now())

	if strings.TrimSpace(req.SlideContent) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "slide content is required")
	}
	instruction, ok := enhancementInstructions[req.EnhancementType]
	if !ok {
		instruction = "Förbättra innehållet"
	}

	raw, err := s.invokeRaw(ctx, prompt.PromptSlideEnhance, map[string]any{
		"instruction":   instruction,
		"slide_title":   req.SlideTitle,
		"slide_content": req.SlideContent,
	})
	if err != nil {
		return nil, err
	}

	extraction := node.ExtractJSON(raw)
	if !extraction.OK() {
		return nil, apperrors.New(apperrors.CodeParseFailed, "failed to parse JSON from AI response").WithDetail(extraction.Reason)
	}

	resp = &SlideEnhanceResponse{}
	if err := json.Unmarshal(extraction.RawJSON, resp); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeParseFailed, "failed to parse JSON from AI response")
	}
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}
	if resp.EnhancedContent == "" {
		resp.EnhancedContent = req.SlideContent
	}
	return resp, nil
}
