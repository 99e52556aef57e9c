package stockmedia

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

// PixabayClient Pixabay 视频搜索客户端
type PixabayClient struct {
	rest   *rest.Client
	apiKey string
}

// NewPixabayClient 创建 Pixabay 客户端
func NewPixabayClient(baseURL, apiKey string, timeout time.Duration) *PixabayClient {
	if baseURL == "" {
		baseURL = "https://pixabay.com"
	}
	return &PixabayClient{
		rest:   rest.New("pixabay", baseURL, timeout),
		apiKey: apiKey,
	}
}

// SearchVideos 搜索视频素材
func (c *PixabayClient) SearchVideos(ctx context.Context, query string, perPage int) ([]StockVideo, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Pixabay API key not configured")
	}
	if perPage <= 0 {
		perPage = 20
	}

	type variant struct {
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	var raw struct {
		Hits []struct {
			ID        int64  `json:"id"`
			Duration  int    `json:"duration"`
			PictureID string `json:"picture_id"`
			Tags      string `json:"tags"`
			User      string `json:"user"`
			UserID    int64  `json:"user_id"`
			Videos    struct {
				Large  variant `json:"large"`
				Medium variant `json:"medium"`
				Tiny   variant `json:"tiny"`
			} `json:"videos"`
		} `json:"hits"`
	}
	err := c.rest.Do(ctx, "search_videos", rest.Request{
		Method: http.MethodGet,
		Path:   "/api/videos/",
		Query: url.Values{
			"key":      {c.apiKey},
			"q":        {query},
			"per_page": {strconv.Itoa(perPage)},
		},
		Out: &raw,
	})
	if err != nil {
		return nil, err
	}

	videos := make([]StockVideo, 0, len(raw.Hits))
	for _, h := range raw.Hits {
		best := h.Videos.Large
		if best.URL == "" {
			best = h.Videos.Medium
		}
		width, height := best.Width, best.Height
		if width == 0 {
			width, height = 1920, 1080
		}
		user := h.User
		if user == "" {
			user = "Unknown"
		}

		var tags []string
		if h.Tags != "" {
			for _, t := range strings.Split(h.Tags, ",") {
				tags = append(tags, strings.TrimSpace(t))
			}
		} else {
			tags = []string{}
		}

		videos = append(videos, StockVideo{
			ID:           "pixabay-" + strconv.FormatInt(h.ID, 10),
			URL:          best.URL,
			PreviewURL:   h.Videos.Tiny.URL,
			ThumbnailURL: fmt.Sprintf("https://i.vimeocdn.com/video/%s_640x360.jpg", h.PictureID),
			Duration:     h.Duration,
			Width:        width,
			Height:       height,
			User:         user,
			UserURL:      fmt.Sprintf("https://pixabay.com/users/%d/", h.UserID),
			Source:       "pixabay",
			Tags:         tags,
		})
	}
	return videos, nil
}
