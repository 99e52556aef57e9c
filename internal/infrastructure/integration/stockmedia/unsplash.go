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

// UnsplashClient Unsplash 图片搜索客户端
type UnsplashClient struct {
	rest      *rest.Client
	accessKey string
}

// NewUnsplashClient 创建 Unsplash 客户端
func NewUnsplashClient(baseURL, accessKey string, timeout time.Duration) *UnsplashClient {
	if baseURL == "" {
		baseURL = "https://api.unsplash.com"
	}
	return &UnsplashClient{
		rest:      rest.New("unsplash", baseURL, timeout),
		accessKey: accessKey,
	}
}

// SearchPhotos 搜索横版图片素材
func (c *UnsplashClient) SearchPhotos(ctx context.Context, query string, perPage int) ([]StockPhoto, error) {
	if c.accessKey == "" {
		return nil, apperrors.New(apperrors.CodeKeyNotProvided, "Unsplash API key not configured")
	}
	if perPage <= 0 {
		perPage = 20
	}

	var raw struct {
		Results []struct {
			ID     string `json:"id"`
			Width  int    `json:"width"`
			Height int    `json:"height"`
			URLs   struct {
				Regular string `json:"regular"`
				Thumb   string `json:"thumb"`
			} `json:"urls"`
			User struct {
				Name  string `json:"name"`
				Links struct {
					HTML string `json:"html"`
				} `json:"links"`
			} `json:"user"`
		} `json:"results"`
	}
	err := c.rest.Do(ctx, "search_photos", rest.Request{
		Method: http.MethodGet,
		Path:   "/search/photos",
		Query: url.Values{
			"query":       {query},
			"per_page":    {strconv.Itoa(perPage)},
			"orientation": {"landscape"},
		},
		Header: map[string]string{"Authorization": "Client-ID " + c.accessKey},
		Out:    &raw,
	})
	if err != nil {
		return nil, err
	}

	photos := make([]StockPhoto, 0, len(raw.Results))
	for _, p := range raw.Results {
		photos = append(photos, StockPhoto{
			ID:              "unsplash-" + p.ID,
			URL:             p.URLs.Regular,
			ThumbnailURL:    p.URLs.Thumb,
			Width:           p.Width,
			Height:          p.Height,
			Photographer:    p.User.Name,
			PhotographerURL: p.User.Links.HTML,
			Source:          "unsplash",
		})
	}
	return photos, nil
}
