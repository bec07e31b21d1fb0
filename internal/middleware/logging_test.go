// internal/middleware/logging_test.go
package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var ctxLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = GetLogger(r.Context())
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"NOT_FOUND"}}`))
	})

	handler := chimiddleware.RequestID(LoggingMiddleware(logger)(next))
	req := httptest.NewRequest(http.MethodPost, "/user_profiles", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	require.NotNil(t, ctxLogger)
	assert.NotSame(t, slog.Default(), ctxLogger)

	out := buf.String()
	assert.Contains(t, out, `"msg":"Request completed"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"status":404`)
	assert.Contains(t, out, `"path":"/user_profiles"`)
	assert.Contains(t, out, "a@example.com", "request body is logged at debug level")
	assert.Contains(t, out, "[SENSITIVE]")
	assert.NotContains(t, out, "secret-token")
}

func TestLoggingMiddleware_InfoLevelSkipsBodies(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	req := httptest.NewRequest(http.MethodPost, "/decks/1/cards", strings.NewReader(`{"word":"gato"}`))
	LoggingMiddleware(logger)(next).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"level":"INFO"`)
	assert.Contains(t, out, `"bytes_out":2`)
	assert.NotContains(t, out, "gato")
}

func TestGetLogger_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLogger(context.Background()))

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, custom, GetLogger(WithLogger(context.Background(), custom)))
}
