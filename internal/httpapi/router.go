package httpapi

import (
	"net/http"
	"strings"
)

// NewMux wires the presentation endpoints over the core operations. No HTML,
// no auth: the engine serves a localhost dashboard frontend.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Leads
	lh := LeadsHandler{Store: d.Store, Hub: d.Hub}
	mux.HandleFunc("/leads", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: lh.ListByStream,
	}))
	mux.HandleFunc("/leads/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/contact") && r.Method == http.MethodPost:
			lh.Contact(w, r)
		case strings.HasSuffix(r.URL.Path, "/activities") && r.Method == http.MethodGet:
			lh.Activities(w, r)
		case r.Method == http.MethodGet:
			lh.Get(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Generation
	gh := GenerateHandler{Hub: d.Hub, Generate: d.Generate}
	mux.HandleFunc("/generate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: gh.Run,
	}))

	// Reporting
	sh := SummaryHandler{Summarize: d.Summarize}
	mux.HandleFunc("/summary", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
	}))

	// Candidate intake
	ch := CandidatesHandler{Pool: d.Pool}
	mux.HandleFunc("/candidates/import", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ch.Import,
	}))

	// Config
	cfh := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Get,
		http.MethodPut: cfh.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: cfh.Path,
	}))

	// Automation
	ah := AutomationHandler{
		CfgVal:           d.CfgVal,
		AutomationStatus: d.AutomationStatus,
		RunCycle:         d.RunCycle,
	}
	mux.HandleFunc("/automation/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Status,
	}))
	mux.HandleFunc("/automation/run", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Run,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Maintenance
	dh := DBHandler{DB: d.Store.DB()}
	mux.HandleFunc("/db/checkpoint", dh.Checkpoint)

	return mux
}
