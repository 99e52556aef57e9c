package presenton

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func TestGenerate(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ppt/presentation/generate/async", r.URL.Path)
		assert.Equal(t, "Bearer key123", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]string{"id": "task-99"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key123", 5*time.Second)
	task, err := client.Generate(context.Background(), GenerateRequest{
		Topic:     "Introduktion till Go",
		NumSlides: 12,
		Language:  "sv",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", task.Status)
	assert.Equal(t, "task-99", task.TaskID)

	assert.Equal(t, "Swedish", captured["language"])
	assert.Equal(t, "general", captured["template"])
	assert.Equal(t, float64(12), captured["n_slides"])
	assert.Equal(t, "pptx", captured["export_as"])
	assert.Equal(t, "high", captured["quality_mode"])
	// 无讲稿时自动放开联网搜索
	assert.Equal(t, true, captured["web_search"])
	// 超过 8 页默认带目录
	assert.Equal(t, true, captured["include_table_of_contents"])
	assert.NotEmpty(t, captured["instructions"])
}

func TestGenerateCapsSlideCount(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]string{"id": "t"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "k", 5*time.Second)
	_, err := client.Generate(context.Background(), GenerateRequest{Topic: "Go", NumSlides: 200})
	require.NoError(t, err)
	assert.Equal(t, float64(50), captured["n_slides"])
}

func TestGenerateMissingKey(t *testing.T) {
	client := NewClient("http://localhost:0", "", time.Second)

	_, err := client.Generate(context.Background(), GenerateRequest{Topic: "Go"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeKeyNotProvided))
}

func TestGenerateMissingTopic(t *testing.T) {
	client := NewClient("http://localhost:0", "key", time.Second)

	_, err := client.Generate(context.Background(), GenerateRequest{Topic: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestCheckStatusCompleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/ppt/presentation/status/task-1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "completed",
			"data": map[string]any{
				"presentation_id":  "pres-1",
				"path":             "https://cdn.example.com/pres-1.pptx",
				"edit_path":        "https://app.example.com/edit/pres-1",
				"credits_consumed": 4,
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", 5*time.Second)
	status, err := client.CheckStatus(context.Background(), "task-1")
	require.NoError(t, err)

	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, "pres-1", status.PresentationID)
	assert.Equal(t, "https://cdn.example.com/pres-1.pptx", status.DownloadURL)
	assert.Equal(t, 4, status.CreditsConsumed)
}

func TestCheckStatusPending(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "processing", "message": "still working"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", 5*time.Second)
	status, err := client.CheckStatus(context.Background(), "task-2")
	require.NoError(t, err)

	assert.Equal(t, "processing", status.Status)
	assert.Equal(t, "still working", status.Message)
	assert.Empty(t, status.DownloadURL)
}

func TestCheckStatusMissingTaskID(t *testing.T) {
	client := NewClient("http://localhost:0", "key", time.Second)

	_, err := client.CheckStatus(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidParam))
}

func TestPreprocessContent(t *testing.T) {
	// 空内容换成主题引导
	got := preprocessContent("", "Go-kurs", 10)
	assert.Contains(t, got, "Create a comprehensive presentation about: Go-kurs")

	// 短内容补主题与页数上下文
	got = preprocessContent("kort", "Go-kurs", 10)
	assert.Contains(t, got, "Topic: Go-kurs")
	assert.Contains(t, got, "10 slides")

	// 长内容压缩空白并保留正文
	long := strings.Repeat("ord ", 60) + "slides"
	got = preprocessContent(long, "Go", 10)
	assert.NotContains(t, got, "  ")
	assert.Contains(t, got, "ord ord")
}
