package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empire-engine/internal/apperr"
	"empire-engine/internal/automation"
	"empire-engine/internal/config"
	"empire-engine/internal/domain"
	"empire-engine/internal/events"
	"empire-engine/internal/pool"
	"empire-engine/internal/report"
	"empire-engine/internal/router"
	"empire-engine/internal/store"
)

type testEnv struct {
	mux   *http.ServeMux
	store *store.Store
	pool  *pool.Pool

	generated []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "empire.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate())
	t.Cleanup(func() { _ = st.Close() })

	env := &testEnv{store: st, pool: pool.New(1)}

	var cfgVal, statusVal atomic.Value
	cfgVal.Store(config.Config{})
	statusVal.Store(automation.Status{LastCreated: 3})

	env.mux = NewMux(Deps{
		Store:            st,
		Pool:             env.pool,
		Hub:              events.NewHub(),
		CfgVal:           &cfgVal,
		AutomationStatus: &statusVal,
		UserCfgPath:      filepath.Join(t.TempDir(), "config.yml"),
		LoadCfg:          func() (config.Config, error) { return config.Config{}, nil },
		Generate: func(_ context.Context, categories string, total int) (router.Result, error) {
			env.generated = append(env.generated, categories)
			if total <= 0 {
				return router.Result{}, apperr.Validation("count must be positive")
			}
			return router.Result{Count: 0}, nil
		},
		Summarize: func(context.Context, map[string]float64) (report.Summary, error) {
			return report.Summary{Totals: report.Totals{MonthlyTarget: 25000}}, nil
		},
		RunCycle: func(context.Context, config.Config) (int, float64, error) {
			return 3, 45000, nil
		},
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func seedLead(t *testing.T, st *store.Store, id string) domain.Lead {
	t.Helper()
	now := time.Now()
	l := domain.Lead{
		ID:        id,
		Name:      "Maya Okafor",
		Email:     "maya@example.com",
		Category:  "job_search_clients",
		Stream:    "Job/Advisor Search",
		Score:     0.9,
		DealValue: 15000,
		Stage:     domain.StageProspect,
		Source:    domain.LeadSource,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.UpsertWithActivity(context.Background(), l, domain.ActivityGenerated, "seeded"))
	return l
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestLeadEndpoints(t *testing.T) {
	env := newTestEnv(t)
	l := seedLead(t, env.store, "lead_1771722000_a3f2b7c1")

	rec := env.do(t, http.MethodGet, "/leads", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byStream map[string][]domain.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &byStream))
	require.Len(t, byStream["Job/Advisor Search"], 1)

	rec = env.do(t, http.MethodGet, "/leads/"+l.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, l.Name, got.Name)

	rec = env.do(t, http.MethodPost, "/leads/"+l.ID+"/contact", `{"method":"email"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/leads/"+l.ID+"/activities", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var acts []domain.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acts))
	require.Len(t, acts, 2)
	assert.Equal(t, domain.ActivityContacted, acts[1].Type)
}

func TestLeadNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/leads/lead_0000000000_deadbeef", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var e APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "not_found", e.Error.Code)
}

func TestContactRequiresMethod(t *testing.T) {
	env := newTestEnv(t)
	l := seedLead(t, env.store, "lead_1771722000_a3f2b7c1")

	for _, body := range []string{``, `{}`, `{"method":"  "}`} {
		rec := env.do(t, http.MethodPost, "/leads/"+l.ID+"/contact", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/generate", `{"count":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, env.generated, 1)
	assert.Equal(t, router.CategoryAll, env.generated[0])

	rec = env.do(t, http.MethodPost, "/generate", `{"categories":"board_advisory","count":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/generate", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var s report.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 25000.0, s.Totals.MonthlyTarget)
}

func TestCandidatesImport(t *testing.T) {
	env := newTestEnv(t)

	html := `<table><tr>
<td>Maya Okafor</td><td>maya@example.com</td><td>Meridian</td>
<td>CTO</td><td>Healthcare</td><td>1001-5000</td></tr></table>`
	rec := env.do(t, http.MethodPost, "/candidates/import?category=job_search_clients", html)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, env.pool.Size("job_search_clients"))
}

func TestAutomationStatus(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/automation/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var st automation.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	assert.Equal(t, 3, st.LastCreated)
	assert.False(t, st.Running)
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodDelete, "/leads", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = env.do(t, http.MethodPut, "/generate", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
