package stockmedia

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"coursecraft-api/internal/infrastructure/integration/rest"
	apperrors "coursecraft-api/pkg/errors"
)

// PexelsClient Pexels 图片与视频搜索客户端
type PexelsClient struct {
	rest   *rest.Client
	apiKey string
}

// NewPexelsClient 创建 Pexels 客户端
func NewPexelsClient(baseURL, apiKey string, timeout time.Duration) *PexelsClient {
	if baseURL == "" {
		baseURL = "https://api.pexels.com"
	}
	return &PexelsClient{
		rest:   rest.New("pexels", baseURL, timeout),
		apiKey: apiKey,
	}
}

// SearchPhotos 搜索横版图片素材
func (c *PexelsClient) SearchPhotos(ctx context.Context, query string, perPage int) ([]StockPhoto, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Pexels API key not configured")
	}
	if perPage <= 0 {
		perPage = 20
	}

	var raw struct {
		Photos []struct {
			ID              int64  `json:"id"`
			Width           int    `json:"width"`
			Height          int    `json:"height"`
			Photographer    string `json:"photographer"`
			PhotographerURL string `json:"photographer_url"`
			Src             struct {
				Large  string `json:"large"`
				Medium string `json:"medium"`
			} `json:"src"`
		} `json:"photos"`
	}
	err := c.rest.Do(ctx, "search_photos", rest.Request{
		Method: http.MethodGet,
		Path:   "/v1/search",
		Query: url.Values{
			"query":       {query},
			"per_page":    {strconv.Itoa(perPage)},
			"orientation": {"landscape"},
		},
		Header: map[string]string{"Authorization": c.apiKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	photos := make([]StockPhoto, 0, len(raw.Photos))
	for _, p := range raw.Photos {
		photos = append(photos, StockPhoto{
			ID:              "pexels-" + strconv.FormatInt(p.ID, 10),
			URL:             p.Src.Large,
			ThumbnailURL:    p.Src.Medium,
			Width:           p.Width,
			Height:          p.Height,
			Photographer:    p.Photographer,
			PhotographerURL: p.PhotographerURL,
			Source:          "pexels",
		})
	}
	return photos, nil
}

// SearchVideos 搜索横版视频素材，优先取 HD 文件
func (c *PexelsClient) SearchVideos(ctx context.Context, query string, perPage int) ([]StockVideo, error) {
	if c.apiKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Pexels API key not configured")
	}
	if perPage <= 0 {
		perPage = 20
	}

	var raw struct {
		Videos []struct {
			ID         int64       `json:"id"`
			Image      string      `json:"image"`
			Duration   int         `json:"duration"`
			VideoFiles []videoFile `json:"video_files"`
			User       struct {
				Name string `json:"name"`
				URL  string `json:"url"`
			} `json:"user"`
		} `json:"videos"`
	}
	err := c.rest.Do(ctx, "search_videos", rest.Request{
		Method: http.MethodGet,
		Path:   "/videos/search",
		Query: url.Values{
			"query":       {query},
			"per_page":    {strconv.Itoa(perPage)},
			"orientation": {"landscape"},
		},
		Header: map[string]string{"Authorization": c.apiKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	videos := make([]StockVideo, 0, len(raw.Videos))
	for _, v := range raw.Videos {
		hd := pickFile(v.VideoFiles, "hd", "sd")
		preview := pickFile(v.VideoFiles, "sd")
		if preview.Link == "" {
			preview = hd
		}

		user := v.User.Name
		if user == "" {
			user = "Unknown"
		}
		userURL := v.User.URL
		if userURL == "" {
			userURL = "https://pexels.com"
		}
		width, height := hd.Width, hd.Height
		if width == 0 {
			width, height = 1920, 1080
		}

		videos = append(videos, StockVideo{
			ID:           "pexels-" + strconv.FormatInt(v.ID, 10),
			URL:          hd.Link,
			PreviewURL:   preview.Link,
			ThumbnailURL: v.Image,
			Duration:     v.Duration,
			Width:        width,
			Height:       height,
			User:         user,
			UserURL:      userURL,
			Source:       "pexels",
			Tags:         []string{},
		})
	}
	return videos, nil
}

type videoFile struct {
	Quality string `json:"quality"`
	Link    string `json:"link"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// pickFile 按画质偏好挑选视频文件，都没有时退回首个
func pickFile(files []videoFile, qualities ...string) videoFile {
	for _, q := range qualities {
		for _, f := range files {
			if f.Quality == q {
				return f
			}
		}
	}
	if len(files) > 0 {
		return files[0]
	}
	return videoFile{}
}
