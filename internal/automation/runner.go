// Package automation runs periodic lead-generation cycles. It is deliberately
// thin: all decision logic lives in the router; this loop only decides when
// to call it, gated by the explicit automation.enabled config value.
package automation

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"empire-engine/internal/config"
	"empire-engine/internal/events"
	"empire-engine/internal/router"
)

// Generator is the router surface the runner drives.
type Generator interface {
	Generate(ctx context.Context, categories string, total int) (router.Result, error)
}

// Status is the last-cycle snapshot served to the presentation layer.
type Status struct {
	LastRunAt   string `json:"last_run_at"`
	LastOkAt    string `json:"last_ok_at"`
	LastError   string `json:"last_error"`
	LastCreated int    `json:"last_created"`
	Running     bool   `json:"running"`
	CyclesRun   int    `json:"cycles_run"`
}

// Cycle runs one generation pass over the configured categories and publishes
// the outcome. Shared by the background loop and the manual trigger endpoint.
func Cycle(ctx context.Context, cfg config.Config, gen Generator, hub *events.Hub) (created int, totalValue float64, err error) {
	cats := cfg.Automation.Categories
	if len(cats) == 0 {
		cats = []string{router.CategoryAll}
	}

	for _, cat := range cats {
		res, genErr := gen.Generate(ctx, cat, cfg.Automation.BatchSize)
		created += res.Count
		totalValue += res.TotalValue
		for _, l := range res.Leads {
			hub.Publish(events.MakeEvent("", events.TypeLeadCreated, 1, map[string]any{
				"id": l.ID, "stream": l.Stream, "dealValue": l.DealValue,
			}))
		}
		if genErr != nil {
			return created, totalValue, genErr
		}
	}

	hub.Publish(events.MakeEvent("", events.TypeGenerationComplete, 1, map[string]any{
		"created": created, "totalValue": totalValue,
	}))
	return created, totalValue, nil
}

// Start launches the background generation loop. The interval is read once at
// startup; the enabled toggle and batch settings are re-read every tick so a
// config save takes effect without a restart. A cycle cap, when configured,
// is enforced with a rate limiter.
func Start(ctx context.Context, cfgVal *atomic.Value, statusVal *atomic.Value, hub *events.Hub, gen Generator) {
	cfg := cfgVal.Load().(config.Config)

	interval := time.Duration(cfg.Automation.IntervalSeconds) * time.Second
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	var limiter *rate.Limiter
	if n := cfg.Automation.MaxCyclesPerHour; n > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(n)/3600.0), 1)
	}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}

			cfg := cfgVal.Load().(config.Config)
			if !cfg.Automation.Enabled {
				continue
			}
			if limiter != nil && !limiter.Allow() {
				log.Printf("[automation] cycle cap reached, skipping tick")
				continue
			}

			st := loadStatus(statusVal)
			st.Running = true
			st.LastRunAt = time.Now().Format(time.RFC3339)
			statusVal.Store(st)

			created, totalValue, err := Cycle(ctx, cfg, gen, hub)

			st = loadStatus(statusVal)
			st.Running = false
			st.LastCreated = created
			st.CyclesRun++
			if err != nil {
				st.LastError = err.Error()
				log.Printf("[automation] cycle error: %v", err)
			} else {
				st.LastError = ""
				st.LastOkAt = time.Now().Format(time.RFC3339)
				log.Printf("[automation] cycle ok created=%d value=%.0f", created, totalValue)
			}
			statusVal.Store(st)
		}
	}()
}

func loadStatus(v *atomic.Value) Status {
	if st, ok := v.Load().(Status); ok {
		return st
	}
	return Status{}
}
