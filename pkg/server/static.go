package server

import (
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// serveStatic serves built assets. Every build output has a
// precompressed .gz sibling; when the client accepts gzip the sibling
// is served directly with the original content type.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	// Clean against traversal before touching the filesystem.
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" || strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}

	name := filepath.Join(h.cfg.StaticDir, filepath.FromSlash(rel))
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Vary", "Accept-Encoding")
	if acceptsGzip(r) && !strings.HasSuffix(name, ".gz") {
		if _, err := os.Stat(name + ".gz"); err == nil {
			if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
				w.Header().Set("Content-Type", ctype)
			}
			w.Header().Set("Content-Encoding", "gzip")
			http.ServeFile(w, r, name+".gz")
			return
		}
	}
	http.ServeFile(w, r, name)
}

func acceptsGzip(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		if strings.TrimSpace(strings.SplitN(enc, ";", 2)[0]) == "gzip" {
			return true
		}
	}
	return false
}
