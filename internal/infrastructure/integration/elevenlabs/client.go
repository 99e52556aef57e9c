// Package elevenlabs 对接 ElevenLabs 文本转语音
package elevenlabs

import (
	"context"
	"math"
	"net/http"
	"regexp"
	"strings"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

// 瑞典语发音质量最好的默认音色
const defaultVoiceID = "JBFqnCBsd6RMkjVDRZzb"

// Azure 风格的音色名（如 sv-SE-MattiasNeural）不是合法的 ElevenLabs ID
var validVoiceIDRe = regexp.MustCompile(`^[a-zA-Z0-9]{20,}$`)

// Voice 可用音色
type Voice struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Description string            `json:"description,omitempty"`
	PreviewURL  string            `json:"preview_url,omitempty"`
	Labels      map[string]string `json:"labels"`
}

// SynthesizeRequest 语音合成请求
type SynthesizeRequest struct {
	Text            string  `json:"text"`
	VoiceID         string  `json:"voice_id,omitempty"`
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	Speed           float64 `json:"speed"`
}

// DurationEstimate 按语速估算的音频时长
type DurationEstimate struct {
	WordCount                int     `json:"word_count"`
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes"`
}

// Client ElevenLabs API 客户端
type Client struct {
	rest    *rest.Client
	apiKey  string
	modelID string
}

// NewClient 创建 ElevenLabs 客户端
func NewClient(baseURL, apiKey, modelID string, timeout time.Duration) *Client {
	if modelID == "" {
		modelID = "eleven_multilingual_v2"
	}
	return &Client{
		rest:    rest.New("elevenlabs", baseURL, timeout),
		apiKey:  apiKey,
		modelID: modelID,
	}
}

// ListVoices 列出账号可用的音色
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "ElevenLabs API key not configured. Please add your API key.")
	}

	var raw struct {
		Voices []struct {
			VoiceID     string            `json:"voice_id"`
			Name        string            `json:"name"`
			Category    string            `json:"category"`
			Description string            `json:"description"`
			PreviewURL  string            `json:"preview_url"`
			Labels      map[string]string `json:"labels"`
		} `json:"voices"`
	}
	err := c.rest.Do(ctx, "list_voices", rest.Request{
		Method: http.MethodGet,
		Path:   "/v1/voices",
		Header: map[string]string{"xi-api-key": c.apiKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	voices := make([]Voice, 0, len(raw.Voices))
	for _, v := range raw.Voices {
		name := v.Name
		if name == "" {
			name = "Unknown"
		}
		category := v.Category
		if category == "" {
			category = "generated"
		}
		labels := v.Labels
		if labels == nil {
			labels = map[string]string{}
		}
		voices = append(voices, Voice{
			ID:          v.VoiceID,
			Name:        name,
			Category:    category,
			Description: v.Description,
			PreviewURL:  v.PreviewURL,
			Labels:      labels,
		})
	}
	return voices, nil
}

// Synthesize 合成语音，返回 MP3 字节流
func (c *Client) Synthesize(ctx context.Context, req SynthesizeRequest) ([]byte, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "ElevenLabs API key not configured. Please add your API key.")
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "text is required")
	}
	applySynthesisDefaults(&req)

	voiceID := req.VoiceID
	if !validVoiceIDRe.MatchString(voiceID) {
		voiceID = defaultVoiceID
	}

	body := map[string]any{
		"text":     req.Text,
		"model_id": c.modelID,
		"voice_settings": map[string]any{
			"stability":         req.Stability,
			"similarity_boost":  req.SimilarityBoost,
			"style":             req.Style,
			"use_speaker_boost": true,
			"speed":             req.Speed,
		},
	}

	audio, err := c.rest.DoBytes(ctx, "synthesize", rest.Request{
		Method: http.MethodPost,
		Path:   "/v1/text-to-speech/" + voiceID + "?output_format=mp3_44100_128",
		Header: map[string]string{"xi-api-key": c.apiKey},
		Body:   body,
	})
	if err != nil {
		if appErr := apperrors.AsAppError(err); appErr != nil && strings.Contains(appErr.Detail, "quota_exceeded") {
			return nil, apperrors.ErrQuotaExhausted.WithDetail("ElevenLabs quota exceeded. Please check your account.")
		}
		return nil, err
	}
	return audio, nil
}

// EstimateDuration 按 150 词/分钟估算音频时长
func EstimateDuration(text string, wordsPerMinute int) DurationEstimate {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 150
	}
	words := len(strings.Fields(text))
	minutes := float64(words) / float64(wordsPerMinute)
	return DurationEstimate{
		WordCount:                words,
		EstimatedDurationSeconds: math.Round(minutes*60*10) / 10,
		EstimatedDurationMinutes: math.Round(minutes*100) / 100,
	}
}

func applySynthesisDefaults(req *SynthesizeRequest) {
	if req.Stability == 0 {
		req.Stability = 0.65
	}
	if req.SimilarityBoost == 0 {
		req.SimilarityBoost = 0.80
	}
	if req.Style == 0 {
		req.Style = 0.25
	}
	if req.Speed == 0 {
		req.Speed = 0.95
	}
}
