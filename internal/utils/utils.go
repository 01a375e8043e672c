package utils

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetIDFromPath parses the {id} route parameter as a 64-bit integer.
func GetIDFromPath(r *http.Request) (int64, error) {
	id := chi.URLParam(r, "id")
	return strconv.ParseInt(id, 10, 64)
}
