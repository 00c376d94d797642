package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"empire-engine/internal/events"
	"empire-engine/internal/store"
)

type LeadsHandler struct {
	Store *store.Store
	Hub   *events.Hub
}

// ListByStream serves the grouped lead view the dashboard renders.
func (h LeadsHandler) ListByStream(w http.ResponseWriter, r *http.Request) {
	byStream, err := h.Store.ListByStream(r.Context())
	if err != nil {
		WriteAppErr(w, r, err)
		return
	}
	writeJSON(w, byStream)
}

// Get serves one lead by id (path /leads/{id}).
func (h LeadsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := leadIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "missing lead id")
		return
	}
	lead, err := h.Store.Get(r.Context(), id)
	if err != nil {
		WriteAppErr(w, r, err)
		return
	}
	writeJSON(w, lead)
}

// Activities serves a lead's append-only ledger (path /leads/{id}/activities).
func (h LeadsHandler) Activities(w http.ResponseWriter, r *http.Request) {
	id := leadIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "missing lead id")
		return
	}
	acts, err := h.Store.Activities(r.Context(), id)
	if err != nil {
		WriteAppErr(w, r, err)
		return
	}
	writeJSON(w, acts)
}

// Contact records a contact attempt (path /leads/{id}/contact).
func (h LeadsHandler) Contact(w http.ResponseWriter, r *http.Request) {
	id := leadIDFromPath(r.URL.Path)
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "missing lead id")
		return
	}

	var body struct {
		Method string `json:"method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || strings.TrimSpace(body.Method) == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "body must include a contact method")
		return
	}

	if err := h.Store.RecordContact(r.Context(), id, body.Method); err != nil {
		WriteAppErr(w, r, err)
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeLeadContacted, 1, map[string]any{
		"id": id, "method": body.Method,
	}))
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

// leadIDFromPath extracts the id segment from /leads/{id}[/suffix].
func leadIDFromPath(path string) string {
	rest := strings.TrimPrefix(path, "/leads/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}
