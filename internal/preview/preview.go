// Package preview serves a rendered output tree locally for inspection.
package preview

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/sitetree/internal/logfields"
)

// Handler serves dir with directory listings suppressed and caching
// disabled, so edits show up on plain reload during local review.
func Handler(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			index := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(r.URL.Path, "/")), "index.html")
			if _, err := os.Stat(index); os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fileServer.ServeHTTP(w, r)
	})
}

// Serve blocks serving dir on addr until the listener fails.
func Serve(addr, dir string) error {
	slog.Info("Serving site", logfields.Output(dir), slog.String("addr", addr))
	return http.ListenAndServe(addr, Handler(dir))
}
