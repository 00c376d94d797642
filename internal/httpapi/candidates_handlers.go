package httpapi

import (
	"net/http"
	"strings"

	"empire-engine/internal/pool"
)

type CandidatesHandler struct {
	Pool *pool.Pool
}

// Import accepts an HTML contact export in the request body and adds its rows
// to the category's candidate pool.
func (h CandidatesHandler) Import(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "missing category query parameter")
		return
	}

	added, err := h.Pool.ImportHTML(category, r.Body)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "added": added, "available": h.Pool.Size(category)})
}
