package service

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
	"go-http-exercises/utils"
)

func newTestService(t *testing.T, compression bool) *Service {
	gin.SetMode(gin.TestMode)
	config := &utils.Config{
		UploadDir:       t.TempDir(),
		CORSAllowOrigin: "*",
		Compression:     compression,
		TrustedProxies:  []string{"127.0.0.1"},
	}
	svc, err := NewService(config, utils.NewDiscardLogger())
	require.NoError(t, err)
	return svc
}

func do(h http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestEveryHandlerSetIsMounted(t *testing.T) {
	h := newTestService(t, false).Handler()

	paths := []string{
		"/hello", "/greet/Ana", "/products", "/info", "/status?level=error",
		"/animals", "/animals/1", "/headers", "/browser",
		"/text", "/html", "/json", "/xml", "/image", "/binary",
		"/api/v1/", "/api/v1/about", "/api/v1/user/profile/ana", "/api/v1/user/list",
	}
	for _, path := range paths {
		w := do(h, "GET", path, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestSharedPathsServeBothMethods(t *testing.T) {
	h := newTestService(t, false).Handler()

	w := do(h, "GET", "/text", "", "")
	assert.Equal(t, "Este es un texto plano", w.Body.String())

	w = do(h, "POST", "/text", "text/plain", "eco")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "eco", w.Body.String())
}

func TestHeadOnReadRoutes(t *testing.T) {
	h := newTestService(t, false).Handler()

	for _, path := range []string{"/hello", "/animals/1", "/products", "/image", "/api/v1/user/list"} {
		w := do(h, "HEAD", path, "", "")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// write-only routes still answer 405
	w := do(h, "HEAD", "/validate-id", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = do(h, "HEAD", "/animals/99", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConditionRespondersApplyEverywhere(t *testing.T) {
	h := newTestService(t, false).Handler()

	w := do(h, "GET", "/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"Not Found"}`, w.Body.String())

	w = do(h, "POST", "/hello", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, `{"error":"Method Not Allowed"}`, w.Body.String())

	w = do(h, "GET", "/products?min_price=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"error":"Bad Request"}`, w.Body.String())

	w = do(h, "GET", "/test-error", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestAnimalLifecycle(t *testing.T) {
	h := newTestService(t, false).Handler()

	w := do(h, "POST", "/animals", "application/json", `{"name":"Tigre","species":"Panthera tigris"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, `{"id":4,"name":"Tigre","species":"Panthera tigris"}`, w.Body.String())

	w = do(h, "POST", "/animals", "application/json", `{"name":"Tigre"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(h, "DELETE", "/animals/4", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(h, "GET", "/animals/4", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreflight(t *testing.T) {
	h := newTestService(t, false).Handler()

	for _, path := range []string{"/animals", "/api/v1/user/list", "/nowhere"} {
		w := do(h, "OPTIONS", path, "", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCompression(t *testing.T) {
	h := newTestService(t, true).Handler()
	body := strings.Repeat("texto comprimible ", 512)

	req := httptest.NewRequest("POST", "/echo", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(plain))

	// clients that do not ask for gzip get the raw body
	w = do(h, "POST", "/echo", "text/plain", "hola")
	assert.Equal(t, "", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "hola", w.Body.String())
}
