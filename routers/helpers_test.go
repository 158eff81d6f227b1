package routers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go-http-exercises/middleware"
	"go-http-exercises/utils"
)

// newTestEngine mounts groups on an engine carrying the process-wide error handling.
func newTestEngine(logger *slog.Logger, groups ...Group) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.ErrorBoundary(DefaultResponders(logger)))
	r.Use(middleware.Recovery())
	r.NoRoute(NoRouteHandler)
	r.NoMethod(NoMethodHandler)
	Mount(r, groups...)
	return r
}

func root(register func(rg *gin.RouterGroup)) Group {
	return Group{Prefix: "/", Register: register}
}

func perform(r http.Handler, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// bufferLogger records json log entries for inspection.
func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return utils.NewLogger(&buf, slog.LevelDebug, "json"), &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}
