package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFiles() fstest.MapFS {
	return fstest.MapFS{
		"index.html": {Data: []byte("<html><title>Linkpost</title></html>")},
		"app.css":    {Data: []byte("body{}")},
	}
}

func newStaticRouter(t *testing.T) chi.Router {
	handler, err := NewStaticHandler(staticFiles(), nopLogger{})
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Post("/api/feedback", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler.RegisterRoutes(router)
	return router
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestStaticHandler_ServesIndexAtRoot(t *testing.T) {
	rec := serve(newStaticRouter(t), http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<title>Linkpost</title>")
}

func TestStaticHandler_SPAFallback(t *testing.T) {
	for _, path := range []string{"/history", "/some/deep/link", "/index.html"} {
		rec := serve(newStaticRouter(t), http.MethodGet, path)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "<title>Linkpost</title>", path)
	}
}

func TestStaticHandler_ServesAssets(t *testing.T) {
	rec := serve(newStaticRouter(t), http.MethodGet, "/app.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
}

func TestStaticHandler_APIPathsAreNotFound(t *testing.T) {
	router := newStaticRouter(t)

	rec := serve(router, http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, float64(http.StatusNotFound), problem["status"])
	assert.Equal(t, "no route for GET /api/unknown", problem["detail"])

	rec = serve(router, http.MethodPost, "/submit")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// brokenWriter accepts headers but fails every body write
type brokenWriter struct {
	header http.Header
	status int
}

func (w *brokenWriter) Header() http.Header       { return w.header }
func (w *brokenWriter) WriteHeader(status int)    { w.status = status }
func (w *brokenWriter) Write([]byte) (int, error) { return 0, stderrors.New("connection reset") }

func TestStaticHandler_LogsFailedNotFoundWrite(t *testing.T) {
	logger := &recordingLogger{}
	handler, err := NewStaticHandler(staticFiles(), logger)
	require.NoError(t, err)

	w := &brokenWriter{header: http.Header{}}
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.status)
	require.Len(t, logger.warnings, 1)
	assert.Equal(t, "connection reset", logger.warnings[0]["error"])
}

func TestNewStaticHandler_RequiresIndex(t *testing.T) {
	_, err := NewStaticHandler(fstest.MapFS{}, nopLogger{})

	assert.Error(t, err)
}
