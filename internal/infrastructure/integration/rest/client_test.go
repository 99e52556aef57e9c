package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "coursecraft-api/pkg/errors"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := New("testvendor", srv.URL, 5*time.Second).WithHTTPClient(srv.Client())
	return client, srv
}

func TestDoDecodesResponse(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/things", r.URL.Path)
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "hello", in["greeting"])

		json.NewEncoder(w).Encode(map[string]string{"id": "42"})
	}))
	defer srv.Close()

	var out struct {
		ID string `json:"id"`
	}
	err := client.Do(context.Background(), "create_thing", Request{
		Method: http.MethodPost,
		Path:   "/v1/things",
		Header: map[string]string{"Authorization": "Bearer token123"},
		Body:   map[string]string{"greeting": "hello"},
		Out:    &out,
	})
	require.NoError(t, err)
	assert.Equal(t, "42", out.ID)
}

func TestDoEncodesQuery(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "görkurs", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	query := url.Values{}
	query.Set("query", "görkurs")
	query.Set("per_page", "10")
	err := client.Do(context.Background(), "search", Request{
		Method: http.MethodGet,
		Path:   "/search",
		Query:  query,
	})
	assert.NoError(t, err)
}

func TestDoBytesReturnsRawBody(t *testing.T) {
	audio := []byte{0xff, 0xf3, 0x01, 0x02}
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(audio)
	}))
	defer srv.Close()

	got, err := client.DoBytes(context.Background(), "synthesize", Request{
		Method: http.MethodPost,
		Path:   "/speech",
	})
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestDoStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode apperrors.ErrorCode
	}{
		{"rate limited", http.StatusTooManyRequests, `{"message": "slow down"}`, apperrors.CodeRateLimited},
		{"quota exhausted", http.StatusPaymentRequired, `{"error": "no credits"}`, apperrors.CodeQuotaExhausted},
		{"bad key", http.StatusUnauthorized, `{}`, apperrors.CodeKeyNotProvided},
		{"forbidden", http.StatusForbidden, `{}`, apperrors.CodeKeyNotProvided},
		{"server error", http.StatusInternalServerError, `oops`, apperrors.CodeVendorError},
		{"not found", http.StatusNotFound, `{"message": "no such thing"}`, apperrors.CodeVendorError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := client.Do(context.Background(), "op", Request{Method: http.MethodGet, Path: "/x"})
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestDoInvalidJSONResponse(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	var out map[string]any
	err := client.Do(context.Background(), "op", Request{Method: http.MethodGet, Path: "/x", Out: &out})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeVendorError))
}

func TestVendorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message": "budget exceeded"}`, "budget exceeded"},
		{"error field", `{"error": "bad input"}`, "bad input"},
		{"nested error object", `{"error": {"message": "inner detail"}}`, "inner detail"},
		{"plain text", "gateway timeout", "gateway timeout"},
		{"empty body", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, vendorMessage([]byte(tt.body)))
		})
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/x", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := New("v", srv.URL+"/", 0).WithHTTPClient(srv.Client())
	err := client.Do(context.Background(), "op", Request{Method: http.MethodGet, Path: "/v1/x"})
	assert.NoError(t, err)
}
