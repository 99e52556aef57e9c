// Package presenton 对接 Presenton 幻灯片生成服务。
// 请求前本地完成主题分析与指令增强，尽量榨出生成质量。
package presenton

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"coursecraft-api/internal/application/styleguide"
	"coursecraft-api/internal/infrastructure/integration/rest"
	"coursecraft-api/internal/workflow/node"
	apperrors "coursecraft-api/pkg/errors"
)

// GenerateRequest 演示文稿生成请求
type GenerateRequest struct {
	Topic                  string `json:"topic"`
	NumSlides              int    `json:"num_slides"`
	Language               string `json:"language"`
	Style                  string `json:"style"`
	Tone                   string `json:"tone"`
	Verbosity              string `json:"verbosity"`
	ImageType              string `json:"image_type"`
	WebSearch              bool   `json:"web_search"`
	ScriptContent          string `json:"script_content,omitempty"`
	AdditionalContext      string `json:"additional_context,omitempty"`
	ModuleTitle            string `json:"module_title,omitempty"`
	CourseTitle            string `json:"course_title,omitempty"`
	AudienceType           string `json:"audience_type"`
	Purpose                string `json:"purpose"`
	Industry               string `json:"industry,omitempty"`
	IncludeTableOfContents *bool  `json:"include_table_of_contents,omitempty"`
	IncludeTitleSlide      bool   `json:"include_title_slide"`
	ExportFormat           string `json:"export_format"`
}

// TaskResponse 异步生成任务回执
type TaskResponse struct {
	Status  string `json:"status"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

// StatusResponse 任务状态，完成后带下载与编辑链接
type StatusResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message,omitempty"`
	PresentationID  string `json:"presentation_id,omitempty"`
	DownloadURL     string `json:"download_url,omitempty"`
	EditURL         string `json:"edit_url,omitempty"`
	CreditsConsumed int    `json:"credits_consumed,omitempty"`
}

// Client Presenton API 客户端
type Client struct {
	rest   *rest.Client
	apiKey string
}

// NewClient 创建 Presenton 客户端
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		rest:   rest.New("presenton", baseURL, timeout),
		apiKey: apiKey,
	}
}

var languageMap = map[string]string{
	"sv": "Swedish",
	"en": "English",
}

var templateMap = map[string]string{
	"professional": "general",
	"modern":       "modern",
	"minimal":      "modern",
	"creative":     "swift",
	"classic":      "standard",
}

var toneMap = map[string]string{
	"professional":  "professional",
	"casual":        "casual",
	"funny":         "funny",
	"educational":   "educational",
	"inspirational": "educational",
}

// Generate 提交异步生成任务
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*TaskResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Presenton API key not configured")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "topic is required")
	}
	applyDefaults(&req)

	payload := buildPayload(req)

	var task struct {
		ID string `json:"id"`
	}
	err := c.rest.Do(ctx, "generate", rest.Request{
		Method: http.MethodPost,
		Path:   "/api/v1/ppt/presentation/generate/async",
		Header: map[string]string{"Authorization": "Bearer " + c.apiKey},
		Body:   payload,
		Out:    &task,
	})
	if err != nil {
		return nil, err
	}

	return &TaskResponse{
		Status:  "pending",
		TaskID:  task.ID,
		Message: "Presentation generation started",
	}, nil
}

// CheckStatus 查询生成任务状态
func (c *Client) CheckStatus(ctx context.Context, taskID string) (*StatusResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Presenton API key not configured")
	}
	if taskID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "task_id is required")
	}

	var raw struct {
		Status  string `json:"status"`
		Message string `json:"message"`
		Data    struct {
			PresentationID  string `json:"presentation_id"`
			Path            string `json:"path"`
			EditPath        string `json:"edit_path"`
			CreditsConsumed int    `json:"credits_consumed"`
		} `json:"data"`
	}
	err := c.rest.Do(ctx, "status", rest.Request{
		Method: http.MethodGet,
		Path:   "/api/v1/ppt/presentation/status/" + taskID,
		Header: map[string]string{"Authorization": "Bearer " + c.apiKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	if raw.Status == "completed" {
		return &StatusResponse{
			Status:          "completed",
			PresentationID:  raw.Data.PresentationID,
			DownloadURL:     raw.Data.Path,
			EditURL:         raw.Data.EditPath,
			CreditsConsumed: raw.Data.CreditsConsumed,
		}, nil
	}
	return &StatusResponse{Status: raw.Status, Message: raw.Message}, nil
}

func applyDefaults(req *GenerateRequest) {
	if req.NumSlides == 0 {
		req.NumSlides = 10
	}
	if req.Language == "" {
		req.Language = "sv"
	}
	if req.Style == "" {
		req.Style = "professional"
	}
	if req.Verbosity == "" {
		req.Verbosity = "standard"
	}
	if req.ImageType == "" {
		req.ImageType = "stock"
	}
	if req.AudienceType == "" {
		req.AudienceType = "general"
	}
	if req.Purpose == "" {
		req.Purpose = "inform"
	}
	if req.ExportFormat == "" {
		req.ExportFormat = "pptx"
	}
}

func buildPayload(req GenerateRequest) map[string]any {
	contentForAnalysis := req.ScriptContent
	if contentForAnalysis == "" {
		contentForAnalysis = req.AdditionalContext
	}
	if contentForAnalysis == "" {
		contentForAnalysis = req.Topic
	}

	style := styleguide.Classify(req.Topic, req.AdditionalContext)
	contentType := styleguide.Classify(req.Topic, contentForAnalysis).ContentType

	industry := req.Industry
	if industry == "" {
		industry = style.Industry
	}

	includeTOC := req.NumSlides > 8
	if req.IncludeTableOfContents != nil {
		includeTOC = *req.IncludeTableOfContents
	}

	language, ok := languageMap[req.Language]
	if !ok {
		language = "Swedish"
	}
	template, ok := templateMap[req.Style]
	if !ok {
		template = "general"
	}
	toneKey := req.Tone
	if toneKey == "" {
		toneKey = req.Style
	}
	tone, ok := toneMap[toneKey]
	if !ok {
		tone = "professional"
	}

	instructions := styleguide.BuildEnhancedInstructions(styleguide.InstructionParams{
		ContentType:           contentType,
		Verbosity:             req.Verbosity,
		Industry:              industry,
		ImageStyle:            style.ImageStyle,
		Mood:                  style.Mood,
		AudienceLevel:         style.AudienceLevel,
		PresentationStructure: style.PresentationStructure,
	})

	content := preprocessContent(node.TruncateByRunes(contentForAnalysis, 10000), req.Topic, req.NumSlides)

	numSlides := req.NumSlides
	if numSlides > 50 {
		numSlides = 50
	}

	payload := map[string]any{
		"content":                   content,
		"n_slides":                  numSlides,
		"language":                  language,
		"template":                  template,
		"theme":                     style.ColorScheme,
		"tone":                      tone,
		"instructions":              instructions,
		"verbosity":                 req.Verbosity,
		"markdown_emphasis":         true,
		"web_search":                req.WebSearch,
		"image_type":                req.ImageType,
		"include_title_slide":       req.IncludeTitleSlide,
		"include_table_of_contents": includeTOC,
		"allow_access_to_user_info": true,
		"export_as":                 req.ExportFormat,
		"trigger_webhook":           false,
	}
	optimizePayload(req, payload)
	return payload
}

// preprocessContent 给过短内容补上下文、过长内容加结构化引导
func preprocessContent(content, topic string, numSlides int) string {
	content = strings.TrimSpace(content)
	if content == "" {
		return "Create a comprehensive presentation about: " + topic
	}
	content = strings.Join(strings.Fields(content), " ")

	if len(content) < 100 {
		content = fmt.Sprintf(`Topic: %s

Content: %s

Please create a detailed, professional presentation with %d slides that thoroughly covers this topic with clear explanations, relevant examples, and actionable insights.`, topic, content, numSlides)
	} else if len(content) > 5000 {
		content = fmt.Sprintf(`Create a %d-slide presentation from the following content.
Focus on the most important points and create a clear narrative arc:

%s`, numSlides, node.TruncateByRunes(content, 8000))
	}

	if !strings.Contains(content, fmt.Sprintf("%d", numSlides)) && !strings.Contains(strings.ToLower(content), "slides") {
		content = fmt.Sprintf(`Create a presentation with approximately %d slides covering:

%s`, numSlides, content)
	}
	return content
}

func optimizePayload(req GenerateRequest, payload map[string]any) {
	if payload["verbosity"] == "" {
		if req.NumSlides > 15 {
			payload["verbosity"] = "concise"
		} else {
			payload["verbosity"] = "standard"
		}
	}
	// 没有讲稿时放开联网搜索补充素材
	if !req.WebSearch && req.ScriptContent == "" {
		payload["web_search"] = true
	}
	if req.ImageType == "ai-generated" {
		payload["image_generation_style"] = "photorealistic"
	}
	payload["quality_mode"] = "high"
}
