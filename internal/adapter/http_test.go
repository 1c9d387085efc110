// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/config"
	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

// newTestStore creates an httpRemoteStore pointed at the test server.
func newTestStore(t *testing.T, serverURL string) *httpRemoteStore {
	t.Helper()

	s, err := NewHTTPRemoteStore(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          "  secret-token ",
	}, logger.Nop())
	require.NoError(t, err)
	return s.(*httpRemoteStore)
}

// ── GetFile ─────────────────────────────────────────────────────────────────

func TestGetFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/files/shop-sync/list_abc.json", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"/shop-sync/list_abc.json","data":{"id":"abc"},"revision":"r1","updated_at":"2026-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	file, err := s.GetFile(context.Background(), "/shop-sync/list_abc.json")

	require.NoError(t, err)
	assert.Equal(t, "/shop-sync/list_abc.json", file.Path)
	assert.JSONEq(t, `{"id":"abc"}`, string(file.Data))
	assert.Equal(t, "r1", file.Revision)
	assert.Equal(t, 2026, file.UpdatedAt.Year())
}

func TestGetFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("file not found"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.GetFile(context.Background(), "/shop-sync/shopping-lists.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFile_EscapesSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/files/shop-sync/list_a%20b.json", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"data":{}}`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	file, err := s.GetFile(context.Background(), "/shop-sync/list_a b.json")

	require.NoError(t, err)
	assert.Equal(t, "/shop-sync/list_a b.json", file.Path, "path falls back to the requested one")
}

func TestGetFile_InvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.GetFile(context.Background(), "/x.json")

	assert.ErrorIs(t, err, ErrDecodingResponse)
}

func TestGetFile_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	s := newTestStore(t, url)
	_, err := s.GetFile(context.Background(), "/x.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetFile_NoToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	s.SetToken("")
	_, err := s.GetFile(context.Background(), "/x.json")

	assert.ErrorIs(t, err, ErrNoToken)
	assert.False(t, called)
}

// ── PutFile ─────────────────────────────────────────────────────────────────

func TestPutFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/files/shop-sync/shopping-lists.json", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"shoppingLists":{}}`, string(body))

		_, _ = w.Write([]byte(`{"path":"/shop-sync/shopping-lists.json","revision":"r2","updated_at":"2026-01-02T03:04:05Z"}`))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	file, err := s.PutFile(context.Background(), "/shop-sync/shopping-lists.json", []byte(`{"shoppingLists":{}}`))

	require.NoError(t, err)
	assert.Equal(t, "r2", file.Revision)
	assert.JSONEq(t, `{"shoppingLists":{}}`, string(file.Data))
}

func TestPutFile_RejectsInvalidJSON(t *testing.T) {
	s := newTestStore(t, "http://localhost:1")
	_, err := s.PutFile(context.Background(), "/x.json", []byte(`{`))

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestPutFile_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.PutFile(context.Background(), "/x.json", []byte(`{}`))

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestPutFile_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token expired"))
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	_, err := s.PutFile(context.Background(), "/x.json", []byte(`{}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

// ── DeleteFile ──────────────────────────────────────────────────────────────

func TestDeleteFile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/files/shop-sync/list_abc.json", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	assert.NoError(t, s.DeleteFile(context.Background(), "/shop-sync/list_abc.json"))
}

func TestDeleteFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	s := newTestStore(t, srv.URL)
	assert.ErrorIs(t, s.DeleteFile(context.Background(), "/x.json"), ErrNotFound)
}

func TestDeleteFile_EmptyPath(t *testing.T) {
	s := newTestStore(t, "http://localhost:1")
	assert.ErrorIs(t, s.DeleteFile(context.Background(), "/"), ErrBadRequest)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestToken_Trimmed(t *testing.T) {
	s := newTestStore(t, "localhost:8080")
	assert.Equal(t, "secret-token", s.Token())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://example.com/", want: "https://example.com"},
		{name: "spaces", raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
