// Package heygen 对接 HeyGen 数字人视频生成
package heygen

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

// 未指定音色时使用的英文默认音色
const defaultVoiceID = "1bd001e7e50f421d891986aad5158bc8"

// Avatar 可用数字人
type Avatar struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Gender       string `json:"gender"`
}

// GenerateRequest 视频生成请求
type GenerateRequest struct {
	Script   string `json:"script"`
	AvatarID string `json:"avatar_id"`
	VoiceID  string `json:"voice_id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// GenerateResponse 视频生成回执
type GenerateResponse struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusResponse 视频生成状态
type StatusResponse struct {
	VideoID      string  `json:"video_id"`
	Status       string  `json:"status"`
	VideoURL     string  `json:"video_url,omitempty"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// Client HeyGen API 客户端
type Client struct {
	rest   *rest.Client
	apiKey string
}

// NewClient 创建 HeyGen 客户端
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		rest:   rest.New("heygen", baseURL, timeout),
		apiKey: apiKey,
	}
}

// ListAvatars 列出可用数字人
func (c *Client) ListAvatars(ctx context.Context) ([]Avatar, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "HeyGen API key not configured. Please add your API key.")
	}

	var raw struct {
		Data struct {
			Avatars []struct {
				AvatarID        string `json:"avatar_id"`
				AvatarName      string `json:"avatar_name"`
				PreviewImageURL string `json:"preview_image_url"`
				ThumbnailURL    string `json:"thumbnail_url"`
				Gender          string `json:"gender"`
			} `json:"avatars"`
		} `json:"data"`
	}
	err := c.rest.Do(ctx, "list_avatars", rest.Request{
		Method: http.MethodGet,
		Path:   "/v2/avatars",
		Header: c.headers(),
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	avatars := make([]Avatar, 0, len(raw.Data.Avatars))
	for _, a := range raw.Data.Avatars {
		name := a.AvatarName
		if name == "" {
			name = "Unknown"
		}
		thumbnail := a.PreviewImageURL
		if thumbnail == "" {
			thumbnail = a.ThumbnailURL
		}
		gender := a.Gender
		if gender == "" {
			gender = "unknown"
		}
		avatars = append(avatars, Avatar{
			ID:           a.AvatarID,
			Name:         name,
			ThumbnailURL: thumbnail,
			Gender:       gender,
		})
	}
	return avatars, nil
}

// Generate 提交数字人视频生成任务
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "HeyGen API key not configured. Please add your API key.")
	}
	if strings.TrimSpace(req.Script) == "" || strings.TrimSpace(req.AvatarID) == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "script and avatar_id are required")
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	title := req.Title
	if title == "" {
		title = "Course Video"
	}

	payload := map[string]any{
		"video_inputs": []map[string]any{
			{
				"character": map[string]any{
					"type":         "avatar",
					"avatar_id":    req.AvatarID,
					"avatar_style": "normal",
				},
				"voice": map[string]any{
					"type":       "text",
					"input_text": req.Script,
					"voice_id":   voiceID,
				},
				"background": map[string]any{
					"type":  "color",
					"value": "#1e3a5f",
				},
			},
		},
		"title": title,
		"dimension": map[string]int{
			"width":  1280,
			"height": 720,
		},
	}

	var raw struct {
		Data struct {
			VideoID string `json:"video_id"`
		} `json:"data"`
	}
	err := c.rest.Do(ctx, "generate", rest.Request{
		Method: http.MethodPost,
		Path:   "/v2/video/generate",
		Header: c.headers(),
		Body:   payload,
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	return &GenerateResponse{
		VideoID: raw.Data.VideoID,
		Status:  "processing",
		Message: "Video generation started. Check status with the video ID.",
	}, nil
}

// CheckStatus 查询视频生成状态
func (c *Client) CheckStatus(ctx context.Context, videoID string) (*StatusResponse, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "HeyGen API key not configured")
	}
	if videoID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "video_id is required")
	}

	var raw struct {
		Data struct {
			Status       string  `json:"status"`
			VideoURL     string  `json:"video_url"`
			ThumbnailURL string  `json:"thumbnail_url"`
			Duration     float64 `json:"duration"`
			Error        string  `json:"error"`
		} `json:"data"`
	}
	err := c.rest.Do(ctx, "status", rest.Request{
		Method: http.MethodGet,
		Path:   "/v1/video_status.get",
		Query:  url.Values{"video_id": {videoID}},
		Header: c.headers(),
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	status := raw.Data.Status
	if status == "" {
		status = "unknown"
	}
	return &StatusResponse{
		VideoID:      videoID,
		Status:       status,
		VideoURL:     raw.Data.VideoURL,
		ThumbnailURL: raw.Data.ThumbnailURL,
		Duration:     raw.Data.Duration,
		Error:        raw.Data.Error,
	}, nil
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-Api-Key":    c.apiKey,
		"Content-Type": "application/json",
	}
}
