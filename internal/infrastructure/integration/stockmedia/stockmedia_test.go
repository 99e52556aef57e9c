package stockmedia

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func TestPexelsSearchPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("Authorization"))
		assert.Equal(t, "kurs", r.URL.Query().Get("query"))
		assert.Equal(t, "landscape", r.URL.Query().Get("orientation"))
		assert.Equal(t, "20", r.URL.Query().Get("per_page"))
		json.NewEncoder(w).Encode(map[string]any{
			"photos": []map[string]any{
				{
					"id": 101, "width": 1920, "height": 1080,
					"photographer": "Anna", "photographer_url": "https://pexels.com/@anna",
					"src": map[string]string{"large": "https://img/large.jpg", "medium": "https://img/medium.jpg"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewPexelsClient(srv.URL, "key123", 5*time.Second)
	photos, err := client.SearchPhotos(context.Background(), "kurs", 0)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	assert.Equal(t, "pexels-101", photos[0].ID)
	assert.Equal(t, "https://img/large.jpg", photos[0].URL)
	assert.Equal(t, "https://img/medium.jpg", photos[0].ThumbnailURL)
	assert.Equal(t, "Anna", photos[0].Photographer)
	assert.Equal(t, "pexels", photos[0].Source)
}

func TestPexelsSearchVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/videos/search", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"videos": []map[string]any{
				{
					"id": 55, "image": "https://img/thumb.jpg", "duration": 14,
					"video_files": []map[string]any{
						{"quality": "sd", "link": "https://v/sd.mp4", "width": 640, "height": 360},
						{"quality": "hd", "link": "https://v/hd.mp4", "width": 1920, "height": 1080},
					},
					"user": map[string]string{"name": "Erik", "url": "https://pexels.com/@erik"},
				},
				{
					"id":          56,
					"video_files": []map[string]any{},
					"user":        map[string]string{},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewPexelsClient(srv.URL, "key", 5*time.Second)
	videos, err := client.SearchVideos(context.Background(), "natur", 10)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	// HD 优先，预览取 SD
	assert.Equal(t, "https://v/hd.mp4", videos[0].URL)
	assert.Equal(t, "https://v/sd.mp4", videos[0].PreviewURL)
	assert.Equal(t, 1920, videos[0].Width)
	assert.Equal(t, "Erik", videos[0].User)

	// 无文件与无用户名时的回退
	assert.Equal(t, "Unknown", videos[1].User)
	assert.Equal(t, "https://pexels.com", videos[1].UserURL)
	assert.Equal(t, 1920, videos[1].Width)
	assert.NotNil(t, videos[1].Tags)
}

func TestPexelsMissingKey(t *testing.T) {
	client := NewPexelsClient("http://localhost:0", "", time.Second)

	_, err := client.SearchPhotos(context.Background(), "kurs", 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeKeyNotProvided))
}

func TestUnsplashSearchPhotos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID access123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"id": "abc", "width": 4000, "height": 3000,
					"urls": map[string]string{"regular": "https://img/r.jpg", "thumb": "https://img/t.jpg"},
					"user": map[string]any{"name": "Maja", "links": map[string]string{"html": "https://unsplash.com/@maja"}},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewUnsplashClient(srv.URL, "access123", 5*time.Second)
	photos, err := client.SearchPhotos(context.Background(), "kontor", 5)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	assert.Equal(t, "unsplash-abc", photos[0].ID)
	assert.Equal(t, "https://img/r.jpg", photos[0].URL)
	assert.Equal(t, "Maja", photos[0].Photographer)
	assert.Equal(t, "https://unsplash.com/@maja", photos[0].PhotographerURL)
	assert.Equal(t, "unsplash", photos[0].Source)
}

func TestPixabaySearchVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/videos/", r.URL.Path)
		assert.Equal(t, "key123", r.URL.Query().Get("key"))
		assert.Equal(t, "skog", r.URL.Query().Get("q"))
		json.NewEncoder(w).Encode(map[string]any{
			"hits": []map[string]any{
				{
					"id": 9, "duration": 30, "picture_id": "pic9",
					"tags": "skog, natur, träd", "user": "Lina", "user_id": 77,
					"videos": map[string]any{
						"large":  map[string]any{"url": "https://v/large.mp4", "width": 1920, "height": 1080},
						"medium": map[string]any{"url": "https://v/medium.mp4", "width": 1280, "height": 720},
						"tiny":   map[string]any{"url": "https://v/tiny.mp4", "width": 640, "height": 360},
					},
				},
				{
					"id": 10, "user": "",
					"videos": map[string]any{
						"medium": map[string]any{"url": "https://v/m10.mp4"},
					},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewPixabayClient(srv.URL, "key123", 5*time.Second)
	videos, err := client.SearchVideos(context.Background(), "skog", 10)
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "pixabay-9", videos[0].ID)
	assert.Equal(t, "https://v/large.mp4", videos[0].URL)
	assert.Equal(t, "https://v/tiny.mp4", videos[0].PreviewURL)
	assert.Equal(t, "https://i.vimeocdn.com/video/pic9_640x360.jpg", videos[0].ThumbnailURL)
	assert.Equal(t, []string{"skog", "natur", "träd"}, videos[0].Tags)
	assert.Equal(t, "https://pixabay.com/users/77/", videos[0].UserURL)

	// large 缺失时退回 medium，尺寸回落 1920x1080
	assert.Equal(t, "https://v/m10.mp4", videos[1].URL)
	assert.Equal(t, 1920, videos[1].Width)
	assert.Equal(t, "Unknown", videos[1].User)
}

func TestPixabayMissingKey(t *testing.T) {
	client := NewPixabayClient("http://localhost:0", "", time.Second)

	_, err := client.SearchVideos(context.Background(), "skog", 10)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeKeyNotProvided))
}
