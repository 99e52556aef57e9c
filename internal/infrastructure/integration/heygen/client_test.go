package heygen

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

func TestListAvatars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/avatars", r.URL.Path)
		assert.Equal(t, "key123", r.Header.Get("X-Api-Key"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"avatars": []map[string]any{
					{"avatar_id": "a1", "avatar_name": "Nils", "preview_image_url": "https://img/p.jpg", "gender": "male"},
					{"avatar_id": "a2", "thumbnail_url": "https://img/t.jpg"},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key123", 5*time.Second)
	avatars, err := client.ListAvatars(context.Background())
	require.NoError(t, err)
	require.Len(t, avatars, 2)

	assert.Equal(t, "Nils", avatars[0].Name)
	assert.Equal(t, "https://img/p.jpg", avatars[0].ThumbnailURL)
	// 缺失字段补默认值，缩略图回退 thumbnail_url
	assert.Equal(t, "Unknown", avatars[1].Name)
	assert.Equal(t, "https://img/t.jpg", avatars[1].ThumbnailURL)
	assert.Equal(t, "unknown", avatars[1].Gender)
}

func TestGenerate(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/video/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{"video_id": "vid-7"}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", 5*time.Second)
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Script:   "Hej och välkommen till kursen.",
		AvatarID: "a1",
	})
	require.NoError(t, err)

	assert.Equal(t, "vid-7", resp.VideoID)
	assert.Equal(t, "processing", resp.Status)

	inputs := captured["video_inputs"].([]any)
	require.Len(t, inputs, 1)
	input := inputs[0].(map[string]any)
	character := input["character"].(map[string]any)
	assert.Equal(t, "a1", character["avatar_id"])
	voice := input["voice"].(map[string]any)
	assert.Equal(t, "Hej och välkommen till kursen.", voice["input_text"])
	// 未指定音色时用默认音色
	assert.Equal(t, defaultVoiceID, voice["voice_id"])
	assert.Equal(t, "Course Video", captured["title"])
	dimension := captured["dimension"].(map[string]any)
	assert.Equal(t, float64(1280), dimension["width"])
}

func TestGenerateValidation(t *testing.T) {
	client := NewClient("http://localhost:0", "key", time.Second)

	_, err := client.Generate(context.Background(), GenerateRequest{AvatarID: "a1"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))

	_, err = client.Generate(context.Background(), GenerateRequest{Script: "text"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestGenerateMissingKey(t *testing.T) {
	client := NewClient("http://localhost:0", "", time.Second)

	_, err := client.Generate(context.Background(), GenerateRequest{Script: "s", AvatarID: "a"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeKeyNotProvided))
}

func TestCheckStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/video_status.get", r.URL.Path)
		assert.Equal(t, "vid-7", r.URL.Query().Get("video_id"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"status":    "completed",
				"video_url": "https://cdn/vid-7.mp4",
				"duration":  92.5,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", 5*time.Second)
	status, err := client.CheckStatus(context.Background(), "vid-7")
	require.NoError(t, err)

	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, "https://cdn/vid-7.mp4", status.VideoURL)
	assert.Equal(t, 92.5, status.Duration)
}

func TestCheckStatusUnknownFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", 5*time.Second)
	status, err := client.CheckStatus(context.Background(), "vid-x")
	require.NoError(t, err)
	assert.Equal(t, "unknown", status.Status)
	assert.Equal(t, "vid-x", status.VideoID)
}
