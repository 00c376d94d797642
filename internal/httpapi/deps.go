package httpapi

import (
	"context"
	"sync/atomic"

	"empire-engine/internal/config"
	"empire-engine/internal/events"
	"empire-engine/internal/pool"
	"empire-engine/internal/report"
	"empire-engine/internal/router"
	"empire-engine/internal/store"
)

type Deps struct {
	Store *store.Store
	Pool  *pool.Pool
	Hub   *events.Hub

	// Atomic stores
	CfgVal           *atomic.Value // stores config.Config
	AutomationStatus *atomic.Value // stores automation.Status

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Core operations (injected for testability)
	Generate  func(ctx context.Context, categories string, total int) (router.Result, error)
	Summarize func(ctx context.Context, external map[string]float64) (report.Summary, error)
	RunCycle  func(ctx context.Context, cfg config.Config) (created int, totalValue float64, err error)
}
