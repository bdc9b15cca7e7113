// Package web serves the embedded static landing page.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Index serves the landing page.
// GET /
func Index(w http.ResponseWriter, r *http.Request) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
