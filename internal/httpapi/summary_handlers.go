package httpapi

import (
	"context"
	"net/http"

	"empire-engine/internal/report"
)

type SummaryHandler struct {
	Summarize func(ctx context.Context, external map[string]float64) (report.Summary, error)
}

// Get serves the aggregate metrics view. External revenue figures, when the
// presentation layer has them, arrive as query parameters elsewhere; the core
// summary itself carries none by default.
func (h SummaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.Summarize(r.Context(), nil)
	if err != nil {
		WriteAppErr(w, r, err)
		return
	}
	writeJSON(w, s)
}
