// ABOUTME: Static handler that serves the embedded web UI
// ABOUTME: Unknown non-API GET paths fall back to index.html

package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"

	"linkpost-api/core/interfaces"
)

// StaticHandler serves files from an fs.FS with an index.html fallback
type StaticHandler struct {
	logger  interfaces.Logger
	files   fs.FS
	server  http.Handler
	index   []byte
	modTime time.Time
}

// NewStaticHandler creates a static handler. files must contain index.html.
func NewStaticHandler(files fs.FS, logger interfaces.Logger) (*StaticHandler, error) {
	index, err := fs.ReadFile(files, "index.html")
	if err != nil {
		return nil, fmt.Errorf("read index.html: %w", err)
	}
	return &StaticHandler{
		logger:  logger,
		files:   files,
		server:  http.FileServer(http.FS(files)),
		index:   index,
		modTime: time.Now(),
	}, nil
}

// RegisterRoutes installs the handler for every path no other route matched
func (h *StaticHandler) RegisterRoutes(router chi.Router) {
	router.NotFound(h.ServeHTTP)
}

// ServeHTTP serves an existing file, otherwise index.html
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead || strings.HasPrefix(r.URL.Path, "/api/") {
		h.writeNotFound(w, r)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/")
	if name != "" && name != "index.html" {
		if info, err := fs.Stat(h.files, name); err == nil && !info.IsDir() {
			h.server.ServeHTTP(w, r)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", h.modTime, bytes.NewReader(h.index))
}

func (h *StaticHandler) writeNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusNotFound)
	err := json.NewEncoder(w).Encode(&huma.ErrorModel{
		Title:  http.StatusText(http.StatusNotFound),
		Status: http.StatusNotFound,
		Detail: "no route for " + r.Method + " " + r.URL.Path,
	})
	if err != nil {
		h.logger.Warn("Failed to write not found response", map[string]interface{}{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}
}
