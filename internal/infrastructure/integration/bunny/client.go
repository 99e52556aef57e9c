// Package bunny 对接 Bunny.net 视频托管
package bunny

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

// Video 媒体库中的视频条目
type Video struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	ThumbnailURL string  `json:"thumbnail_url"`
	VideoURL     string  `json:"video_url"`
	Duration     float64 `json:"duration"`
	Status       int     `json:"status"`
}

// UploadResult 上传回执
type UploadResult struct {
	VideoID string `json:"video_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Client Bunny.net Stream API 客户端
type Client struct {
	rest      *rest.Client
	apiKey    string
	libraryID string
	cdnHost   string
}

// NewClient 创建 Bunny 客户端；cdnHost 为空时用媒体库默认域名
func NewClient(baseURL, apiKey, libraryID, cdnHost string, timeout time.Duration) *Client {
	return &Client{
		rest:      rest.New("bunny", baseURL, timeout),
		apiKey:    apiKey,
		libraryID: libraryID,
		cdnHost:   cdnHost,
	}
}

// ListVideos 列出媒体库中的视频
func (c *Client) ListVideos(ctx context.Context) ([]Video, error) {
	if err := c.requireConfig(); err != nil {
		return nil, err
	}

	var raw struct {
		Items []struct {
			GUID   string  `json:"guid"`
			Title  string  `json:"title"`
			Length float64 `json:"length"`
			Status int     `json:"status"`
		} `json:"items"`
	}
	err := c.rest.Do(ctx, "list_videos", rest.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/library/%s/videos", c.libraryID),
		Header: map[string]string{"AccessKey": c.apiKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	cdnBase := c.cdnHost
	if cdnBase == "" {
		cdnBase = c.libraryID + ".b-cdn.net"
	}

	videos := make([]Video, 0, len(raw.Items))
	for _, item := range raw.Items {
		title := item.Title
		if title == "" {
			title = "Untitled"
		}
		videos = append(videos, Video{
			ID:           item.GUID,
			Title:        title,
			ThumbnailURL: fmt.Sprintf("https://%s/%s/thumbnail.jpg", cdnBase, item.GUID),
			VideoURL:     fmt.Sprintf("https://%s/%s/play.mp4", cdnBase, item.GUID),
			Duration:     item.Length,
			Status:       item.Status,
		})
	}
	return videos, nil
}

// Upload 上传视频：先建条目拿 GUID，再推送视频内容
func (c *Client) Upload(ctx context.Context, content []byte, filename string) (*UploadResult, error) {
	if err := c.requireConfig(); err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "file content is required")
	}

	var created struct {
		GUID string `json:"guid"`
	}
	err := c.rest.Do(ctx, "create_video", rest.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/library/%s/videos", c.libraryID),
		Header: map[string]string{"AccessKey": c.apiKey},
		Body:   map[string]string{"title": filename},
		Out:    &created,
	})
	if err != nil {
		return nil, err
	}

	_, err = c.rest.DoBytes(ctx, "upload_video", rest.Request{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/library/%s/videos/%s", c.libraryID, created.GUID),
		Header: map[string]string{
			"AccessKey":    c.apiKey,
			"Content-Type": "application/octet-stream",
		},
		RawBody: content,
	})
	if err != nil {
		return nil, err
	}

	return &UploadResult{
		VideoID: created.GUID,
		Status:  "uploaded",
		Message: "Video uploaded successfully. Processing will begin shortly.",
	}, nil
}

func (c *Client) requireConfig() error {
	if c.apiKey == "" || c.libraryID == "" {
		return apperrors.New(apperrors.CodeKeyNotProvided, "Bunny.net API key and Library ID not configured")
	}
	return nil
}
