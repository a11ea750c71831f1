package shared

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// URLID reads an integer id from the route. A non-numeric value behaves like
// an id that does not exist, so callers answer 404.
func URLID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, false
	}
	return id, true
}

// LimitParam reads the optional limit query parameter, falling back to the
// endpoint default when absent or unusable.
func LimitParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return fallback
	}
	return limit
}
