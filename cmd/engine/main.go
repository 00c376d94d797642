package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"empire-engine/internal/automation"
	"empire-engine/internal/config"
	"empire-engine/internal/events"
	"empire-engine/internal/httpapi"
	"empire-engine/internal/icp"
	"empire-engine/internal/pool"
	"empire-engine/internal/report"
	"empire-engine/internal/router"
	"empire-engine/internal/store"
)

func main() {
	// Engine data dir: env if provided, else local folder.
	dataDir := os.Getenv("EMPIRE_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// Single engine per data dir; a second instance would race the store.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("data dir lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	candidatesPath, err := config.EnsureCandidatesFile(dataDir, filepath.Join("config", "candidates.yml"))
	if err != nil {
		log.Fatalf("candidates bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.OverlayCriteria(&cfg, filepath.Join(dataDir, "criteria.yml")); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	st, err := store.Open(filepath.Join(dataDir, "empire.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()
	if err := st.Migrate(); err != nil {
		log.Fatal(err)
	}

	candidates := pool.New(cfg.Pool.SampleSeed)
	if err := candidates.LoadFile(candidatesPath); err != nil {
		log.Fatalf("candidate seed load failed: %v", err)
	}

	registry := icp.FromConfig(cfg)
	rt := &router.Router{Registry: registry, Pool: candidates, Store: st}
	agg := &report.Aggregator{Store: st, MonthlyTarget: cfg.Targets.MonthlyRevenue}

	hub := events.NewHub()

	var automationStatus atomic.Value
	automationStatus.Store(automation.Status{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	automation.Start(ctx, &cfgVal, &automationStatus, hub, rt)

	mux := httpapi.NewMux(httpapi.Deps{
		Store:            st,
		Pool:             candidates,
		Hub:              hub,
		CfgVal:           &cfgVal,
		AutomationStatus: &automationStatus,
		UserCfgPath:      userCfgPath,
		LoadCfg:          loadCfg,
		Generate:         rt.Generate,
		Summarize:        agg.Summarize,
		RunCycle: func(ctx context.Context, cfg config.Config) (int, float64, error) {
			return automation.Cycle(ctx, cfg, rt, hub)
		},
	})

	addr := "127.0.0.1:38471"
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog, httpapi.Cors),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
