package middleware_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"

	"github.com/zvz09/2025-blog-public/internal/middleware"
)

// TestSlogLogger_logsRequestFields verifies that the SlogLogger middleware
// writes a structured JSON log line containing method, path, status, duration,
// and the request ID placed in context by chi's RequestID middleware.
func TestSlogLogger_logsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	// Wrap the SlogLogger around a trivial 200 handler.
	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	// Simulate what chimiddleware.RequestID does: inject a known ID into context.
	// This keeps the test focused on our middleware's logging behaviour only.
	ctx := context.WithValue(req.Context(), chimiddleware.RequestIDKey, "test-req-id")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Parse the single JSON log line written by the middleware.
	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

	require.Equal(t, "GET", logEntry["method"])
	require.Equal(t, "/healthz", logEntry["path"])
	require.EqualValues(t, http.StatusOK, logEntry["status"])
	require.Equal(t, "test-req-id", logEntry["request_id"])
	require.NotNil(t, logEntry["duration_ms"])
	require.Equal(t, "INFO", logEntry["level"])
	require.NotContains(t, logEntry, "route", "no router, no pattern")
}

// TestSlogLogger_logsHandlerStatus verifies that the status written by the
// downstream handler, not a default, is logged.
func TestSlogLogger_logsHandlerStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := middleware.NewSlogLogger(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "https://example.com", http.StatusFound)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/shares/1/open", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	require.EqualValues(t, http.StatusFound, logEntry["status"])
	require.Equal(t, "/shares/1/open", logEntry["path"])
}

// TestSlogLogger_logsRoutePattern verifies that requests routed by chi are
// logged with the matched pattern and the {id} parameter, including routes of
// a mounted sub-router.
func TestSlogLogger_logsRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	shares := chi.NewRouter()
	shares.Get("/shares/{id}/open", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://github.com", http.StatusFound)
	})
	r := chi.NewRouter()
	r.Use(middleware.NewSlogLogger(logger))
	r.Mount("/", shares)

	id := "0b6f6bd4-8f53-4a43-a3b0-3b0f1d1e6a51"
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/shares/"+id+"/open", nil))

	var logEntry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	require.Equal(t, "/shares/{id}/open", logEntry["route"])
	require.Equal(t, id, logEntry["id"])
	require.Equal(t, "/shares/"+id+"/open", logEntry["path"])
}

// TestSlogLogger_levelFollowsStatus verifies that client errors log at WARN
// and server errors at ERROR.
func TestSlogLogger_levelFollowsStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusSeeOther, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusTooManyRequests, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			r := chi.NewRouter()
			r.Use(middleware.NewSlogLogger(logger))
			r.Get("/logos/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/logos/x", nil))

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
			require.Equal(t, tc.level, logEntry["level"])
			require.Equal(t, "/logos/{id}", logEntry["route"])
			require.EqualValues(t, tc.status, logEntry["status"])
		})
	}
}
