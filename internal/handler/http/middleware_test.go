package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

func TestWithTraceID_ReusesRequestHeader(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	var ctx context.Context
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { ctx = r.Context() })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, "trace-42", rr.Header().Get(traceIDHeader))
	require.NotNil(t, ctx)
	assert.NotNil(t, zerolog.Ctx(ctx))
}

func TestWithTraceID_GeneratesUUID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := map[string]bool{}
	for range 3 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rr.Header().Get(traceIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		seen[id] = true
	}
	assert.Len(t, seen, 3)
}

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusBadRequest)

		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("write implies 200 and counts bytes", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

		_, _ = w.Write([]byte("hello "))
		_, _ = w.Write([]byte("world"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 11, w.size)
	})
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusFromError(ErrDocumentTooLarge))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(ErrNoOwnerInContext))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
