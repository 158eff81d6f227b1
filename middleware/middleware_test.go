package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
	"go-http-exercises/apierror"
	"go-http-exercises/store"
)

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middlewares...)
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorBoundaryUsesResponder(t *testing.T) {
	var seen *apierror.Error
	responders := map[apierror.Kind]Responder{
		apierror.NotFound: func(c *gin.Context, err *apierror.Error) {
			seen = err
			c.JSON(err.Kind.Status(), gin.H{"error": "custom"})
		},
	}
	r := newEngine(ErrorBoundary(responders))
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apierror.NewNotFound("nothing here"))
	})

	w := serve(r, "GET", "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":"custom"}`, w.Body.String())
	assert.Equal(t, "nothing here", seen.Message)
}

func TestErrorBoundaryDefaults(t *testing.T) {
	r := newEngine(ErrorBoundary(nil))
	r.GET("/bad", func(c *gin.Context) {
		_ = c.Error(apierror.NewBadRequest("bad", nil))
	})
	r.GET("/untagged", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	r.GET("/written", func(c *gin.Context) {
		c.String(http.StatusTeapot, "already answered")
		_ = c.Error(errors.New("late failure"))
	})

	w := serve(r, "GET", "/bad")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"error":"Bad Request"}`, w.Body.String())

	w = serve(r, "GET", "/untagged")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Internal Server Error"}`, w.Body.String())

	w = serve(r, "GET", "/written")
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "already answered", w.Body.String())
}

func TestRecoveryRendersInternalFault(t *testing.T) {
	r := newEngine(ErrorBoundary(nil), Recovery())
	r.GET("/panic", func(c *gin.Context) {
		panic("kaboom")
	})

	w := serve(r, "GET", "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestCORSMiddleware(t *testing.T) {
	r := newEngine(CORSMiddleware("https://example.org"))
	r.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "hi")
	})

	w := serve(r, "GET", "/hello")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.org", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, "OPTIONS", "/anything")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestApiMiddlewareSetsStore(t *testing.T) {
	animals := store.NewMemoryAnimalStore(store.SeedAnimals())
	r := newEngine(ApiMiddleware(animals))
	r.GET("/", func(c *gin.Context) {
		rp := c.MustGet(AnimalStoreKey).(store.AnimalStore)
		c.JSON(http.StatusOK, len(rp.FindAll()))
	})

	w := serve(r, "GET", "/")
	assert.Equal(t, "3", w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	r := newEngine(RequestLogger(logger))
	r.GET("/hello", func(c *gin.Context) {
		c.String(http.StatusOK, "hi")
	})

	serve(r, "GET", "/hello")
	line := buf.String()
	assert.Equal(t, true, strings.Contains(line, "method=GET"))
	assert.Equal(t, true, strings.Contains(line, "path=/hello"))
	assert.Equal(t, true, strings.Contains(line, "status=200"))
}
