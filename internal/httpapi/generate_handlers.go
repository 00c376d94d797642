package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"empire-engine/internal/events"
	"empire-engine/internal/router"
)

type GenerateHandler struct {
	Hub      *events.Hub
	Generate func(ctx context.Context, categories string, total int) (router.Result, error)
}

// Run triggers a generation batch. Categories defaults to "all".
func (h GenerateHandler) Run(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Categories string `json:"categories"`
		Count      int    `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		return
	}
	if body.Categories == "" {
		body.Categories = router.CategoryAll
	}

	res, err := h.Generate(r.Context(), body.Categories, body.Count)
	if err != nil {
		WriteAppErr(w, r, err)
		return
	}

	reqID := RequestIDFrom(r.Context())
	for _, l := range res.Leads {
		h.Hub.Publish(events.MakeEvent(reqID, events.TypeLeadCreated, 1, map[string]any{
			"id": l.ID, "stream": l.Stream, "dealValue": l.DealValue,
		}))
	}
	writeJSON(w, res)
}
