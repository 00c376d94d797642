// Package router orchestrates lead generation: draw candidates, score them,
// gate on the category threshold, route survivors to a revenue stream, and
// persist each exactly once.
package router

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"empire-engine/internal/apperr"
	"empire-engine/internal/domain"
	"empire-engine/internal/icp"
)

// CategoryAll expands to every registered category.
const CategoryAll = "all"

// StreamOther receives leads from categories outside the fixed mapping.
const StreamOther = "Other"

// streamByCategory is the fixed category -> revenue stream lookup. Categories
// added via config that are not listed here route to StreamOther.
var streamByCategory = map[string]string{
	"job_search_clients":        "Job/Advisor Search",
	"health_management_clients": "Health Management",
	"corporate_consulting":      "Corporate Consulting",
	"speaking_engagements":      "Speaking & Workshops",
	"board_advisory":            "Board Advisory",
}

// StreamFor maps a category to its revenue stream label.
func StreamFor(category string) string {
	if s, ok := streamByCategory[category]; ok {
		return s
	}
	return StreamOther
}

// Sampler supplies candidates; satisfied by *pool.Pool and by test stubs.
type Sampler interface {
	Sample(category string, n int) []domain.Candidate
}

// LeadWriter persists a lead and its generation activity atomically;
// satisfied by *store.Store.
type LeadWriter interface {
	UpsertWithActivity(ctx context.Context, l domain.Lead, actType, description string) error
}

type Router struct {
	Registry *icp.Registry
	Pool     Sampler
	Store    LeadWriter
}

// Result is what Generate hands back to callers: the created leads plus the
// derived totals the presentation layer renders.
type Result struct {
	Leads      []domain.Lead `json:"leads"`
	Count      int           `json:"count"`
	TotalValue float64       `json:"totalValue"`
	Streams    []string      `json:"streams"`
}

// Generate draws up to total candidates split evenly across the selected
// categories, keeps those scoring at or above their category threshold, and
// persists each survivor with a generation activity.
//
// The split is integer division and the remainder is dropped, not
// redistributed; generate("all", 10) across 4 categories yields at most 8
// leads. This truncation is intentional, documented behavior.
//
// A storage failure stops persistence and is returned; leads already written
// are still reported so the caller can decide whether to retry the batch.
// Repeating Generate is safe: every call mints fresh ids and never touches
// earlier leads.
func (r *Router) Generate(ctx context.Context, categories string, total int) (Result, error) {
	var res Result
	if total <= 0 {
		return res, apperr.Validation(fmt.Sprintf("count must be positive, got %d", total)).WithOp("router.generate")
	}

	var cats []string
	if categories == CategoryAll {
		cats = r.Registry.Categories()
	} else {
		cats = []string{categories}
	}

	// Fail fast on unregistered categories before any work starts.
	criteria := make(map[string]icp.Criterion, len(cats))
	for _, cat := range cats {
		cr, err := r.Registry.Get(cat)
		if err != nil {
			return res, err
		}
		criteria[cat] = cr
	}

	perCategory := total / len(cats)
	if perCategory == 0 {
		return res, nil
	}

	qualified := make(map[string][]domain.Lead, len(cats))
	var g errgroup.Group
	results := make(chan categoryLeads, len(cats))

	for _, cat := range cats {
		cat := cat
		cr := criteria[cat]
		g.Go(func() error {
			leads, err := r.qualify(cat, cr, perCategory)
			if err != nil {
				return err
			}
			results <- categoryLeads{category: cat, leads: leads}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}
	close(results)
	for cl := range results {
		qualified[cl.category] = cl.leads
	}

	// Persist in category order so repeated runs behave reproducibly.
	streams := make(map[string]bool)
	for _, cat := range cats {
		for _, l := range qualified[cat] {
			desc := fmt.Sprintf("Lead generated from %s pool (score %.2f)", cat, l.Score)
			if err := r.Store.UpsertWithActivity(ctx, l, domain.ActivityGenerated, desc); err != nil {
				return res, err
			}
			res.Leads = append(res.Leads, l)
			res.TotalValue += l.DealValue
			streams[l.Stream] = true
		}
	}

	res.Count = len(res.Leads)
	res.Streams = make([]string, 0, len(streams))
	for s := range streams {
		res.Streams = append(res.Streams, s)
	}
	sort.Strings(res.Streams)
	return res, nil
}

type categoryLeads struct {
	category string
	leads    []domain.Lead
}

// qualify samples, scores, and threshold-filters one category. Empty pools
// and empty survivor sets are valid outcomes, never errors.
func (r *Router) qualify(category string, cr icp.Criterion, n int) ([]domain.Lead, error) {
	var out []domain.Lead
	now := time.Now()

	for _, cand := range r.Pool.Sample(category, n) {
		score := icp.Score(cand, cr)
		if score < cr.Threshold {
			continue
		}

		id, err := domain.NewLeadID()
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "mint lead id", err).WithOp("router.generate")
		}

		out = append(out, domain.Lead{
			ID:          id,
			Name:        cand.Name,
			Email:       cand.Email,
			Company:     cand.Company,
			Title:       cand.Title,
			Industry:    cand.Industry,
			CompanySize: cand.CompanySize,
			Notes:       cand.Notes,
			Category:    category,
			Stream:      StreamFor(category),
			Score:       math.Round(score*100) / 100,
			DealValue:   cr.AvgDealValue,
			Stage:       domain.StageProspect,
			Source:      domain.LeadSource,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return out, nil
}
