package bunny

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func TestListVideos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/library/lib42/videos", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("AccessKey"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"guid": "g1", "title": "Lektion 1", "length": 120.0, "status": 4},
				{"guid": "g2"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key123", "lib42", "", 5*time.Second)
	videos, err := client.ListVideos(context.Background())
	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "Lektion 1", videos[0].Title)
	// CDN 域名缺省用媒体库默认域名
	assert.Equal(t, "https://lib42.b-cdn.net/g1/play.mp4", videos[0].VideoURL)
	assert.Equal(t, "https://lib42.b-cdn.net/g1/thumbnail.jpg", videos[0].ThumbnailURL)
	assert.Equal(t, "Untitled", videos[1].Title)
}

func TestListVideosCustomCDN(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{{"guid": "g1", "title": "x"}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "lib42", "media.kurs.se", 5*time.Second)
	videos, err := client.ListVideos(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://media.kurs.se/g1/play.mp4", videos[0].VideoURL)
}

func TestUpload(t *testing.T) {
	content := []byte{0x00, 0x01, 0x02}
	var uploaded []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "lektion.mp4", body["title"])
			json.NewEncoder(w).Encode(map[string]string{"guid": "g9"})
		case http.MethodPut:
			assert.Equal(t, "/library/lib42/videos/g9", r.URL.Path)
			assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
			uploaded, _ = io.ReadAll(r.Body)
			w.Write([]byte(`{"success": true}`))
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "lib42", "", 5*time.Second)
	result, err := client.Upload(context.Background(), content, "lektion.mp4")
	require.NoError(t, err)

	assert.Equal(t, "g9", result.VideoID)
	assert.Equal(t, "uploaded", result.Status)
	assert.Equal(t, content, uploaded)
}

func TestUploadEmptyContent(t *testing.T) {
	client := NewClient("http://localhost:0", "key", "lib", "", time.Second)

	_, err := client.Upload(context.Background(), nil, "x.mp4")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestRequireConfig(t *testing.T) {
	client := NewClient("http://localhost:0", "", "", "", time.Second)

	_, err := client.ListVideos(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeKeyNotProvided))
}
