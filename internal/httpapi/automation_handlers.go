package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"empire-engine/internal/automation"
	"empire-engine/internal/config"
)

type AutomationHandler struct {
	CfgVal           *atomic.Value // config.Config
	AutomationStatus *atomic.Value // automation.Status
	RunCycle         func(ctx context.Context, cfg config.Config) (created int, totalValue float64, err error)
}

func (h AutomationHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, _ := h.AutomationStatus.Load().(automation.Status)
	writeJSON(w, st)
}

// Run triggers one generation cycle out of band of the background loop.
func (h AutomationHandler) Run(w http.ResponseWriter, r *http.Request) {
	st, _ := h.AutomationStatus.Load().(automation.Status)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.AutomationStatus.Store(automation.Status{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
		CyclesRun: st.CyclesRun,
	})

	go func() {
		cfg := h.CfgVal.Load().(config.Config)
		created, _, err := h.RunCycle(context.Background(), cfg)

		now := time.Now().Format(time.RFC3339)
		next, _ := h.AutomationStatus.Load().(automation.Status)
		next.Running = false
		next.LastRunAt = now
		next.LastCreated = created
		next.CyclesRun++
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
		}
		h.AutomationStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
