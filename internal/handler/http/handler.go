package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// urlParamInt parses a numeric URL parameter. Returns ok=false when the
// parameter is missing or not a number; callers respond with 400.
func urlParamInt(r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func queryBool(r *http.Request, name string) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
