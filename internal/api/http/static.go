package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// MountStatic serves the tutor web UI from dir at the router root, falling
// back to index.html for unknown paths so client-side routing works.
func MountStatic(r chi.Router, dir string) {
	fs := http.FileServer(http.Dir(dir))
	r.Handle("/*", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		p := filepath.Join(dir, filepath.Clean(req.URL.Path))
		if info, err := os.Stat(p); err != nil || info.IsDir() && req.URL.Path != "/" {
			http.ServeFile(w, req, filepath.Join(dir, "index.html"))
			return
		}
		fs.ServeHTTP(w, req)
	}))
}
