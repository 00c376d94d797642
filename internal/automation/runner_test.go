package automation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empire-engine/internal/config"
	"empire-engine/internal/domain"
	"empire-engine/internal/events"
	"empire-engine/internal/router"
)

type stubGenerator struct {
	calls []string
	errOn string
}

func (g *stubGenerator) Generate(_ context.Context, categories string, total int) (router.Result, error) {
	g.calls = append(g.calls, categories)
	if categories == g.errOn {
		return router.Result{}, errors.New("generation failed")
	}
	l := domain.Lead{ID: "lead_1771722000_a3f2b7c1", Stream: "Board Advisory", DealValue: 50000}
	return router.Result{Leads: []domain.Lead{l}, Count: 1, TotalValue: 50000}, nil
}

func drain(ch chan string) []string {
	var out []string
	for {
		select {
		case e := <-ch:
			out = append(out, e)
		default:
			return out
		}
	}
}

func TestCycle_DefaultsToAll(t *testing.T) {
	var cfg config.Config
	cfg.Automation.BatchSize = 10

	gen := &stubGenerator{}
	hub := events.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	created, totalValue, err := Cycle(context.Background(), cfg, gen, hub)
	require.NoError(t, err)
	assert.Equal(t, []string{router.CategoryAll}, gen.calls)
	assert.Equal(t, 1, created)
	assert.Equal(t, 50000.0, totalValue)

	got := drain(sub)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], events.TypeLeadCreated)
	assert.Contains(t, got[1], events.TypeGenerationComplete)
}

func TestCycle_ConfiguredCategories(t *testing.T) {
	var cfg config.Config
	cfg.Automation.BatchSize = 5
	cfg.Automation.Categories = []string{"job_search_clients", "board_advisory"}

	gen := &stubGenerator{}
	created, _, err := Cycle(context.Background(), cfg, gen, events.NewHub())
	require.NoError(t, err)
	assert.Equal(t, cfg.Automation.Categories, gen.calls)
	assert.Equal(t, 2, created)
}

func TestCycle_StopsOnError(t *testing.T) {
	var cfg config.Config
	cfg.Automation.BatchSize = 5
	cfg.Automation.Categories = []string{"job_search_clients", "broken", "board_advisory"}

	gen := &stubGenerator{errOn: "broken"}
	hub := events.NewHub()
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	created, _, err := Cycle(context.Background(), cfg, gen, hub)
	require.Error(t, err)
	assert.Equal(t, []string{"job_search_clients", "broken"}, gen.calls)
	assert.Equal(t, 1, created)

	// No completion event on a failed cycle.
	for _, e := range drain(sub) {
		assert.False(t, strings.Contains(e, events.TypeGenerationComplete))
	}
}
