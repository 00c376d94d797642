// Package report derives revenue-stream and portfolio metrics from the lead
// store. Nothing here is persisted; every summary is recomputed on demand so
// the figures can never drift from the stored leads.
package report

import (
	"context"
	"sort"

	"empire-engine/internal/domain"
)

type StreamSummary struct {
	Stream       string  `json:"stream"`
	LeadCount    int     `json:"leadCount"`
	AvgDealValue float64 `json:"avgDealValue"`
	TotalValue   float64 `json:"totalValue"`
}

type Totals struct {
	LeadCount     int     `json:"leadCount"`
	PipelineValue float64 `json:"pipelineValue"`
	StreamCount   int     `json:"streamCount"`
	MonthlyTarget float64 `json:"monthlyTarget"`
	// TargetProgress is pipeline / monthly target; 0 when no target is set.
	TargetProgress float64 `json:"targetProgress"`
	// External carries externally supplied revenue figures (time-series
	// rollups, projections). They are opaque to the core and echoed through
	// for the presentation layer.
	External map[string]float64 `json:"external,omitempty"`
}

type Summary struct {
	PerStream []StreamSummary `json:"perStream"`
	Totals    Totals          `json:"totals"`
}

// LeadLister is the store query surface the aggregator needs.
type LeadLister interface {
	ListByStream(ctx context.Context) (map[string][]domain.Lead, error)
}

type Aggregator struct {
	Store         LeadLister
	MonthlyTarget float64
}

// Summarize computes per-stream and portfolio metrics in a single pass over
// the store. An empty store yields zeroed aggregates, not an error.
func (a *Aggregator) Summarize(ctx context.Context, external map[string]float64) (Summary, error) {
	byStream, err := a.Store.ListByStream(ctx)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		PerStream: make([]StreamSummary, 0, len(byStream)),
		Totals: Totals{
			MonthlyTarget: a.MonthlyTarget,
			External:      external,
		},
	}

	for stream, leads := range byStream {
		ss := StreamSummary{Stream: stream, LeadCount: len(leads)}
		for _, l := range leads {
			ss.TotalValue += l.DealValue
		}
		if ss.LeadCount > 0 {
			ss.AvgDealValue = ss.TotalValue / float64(ss.LeadCount)
		}
		s.PerStream = append(s.PerStream, ss)

		s.Totals.LeadCount += ss.LeadCount
		s.Totals.PipelineValue += ss.TotalValue
	}

	sort.Slice(s.PerStream, func(i, j int) bool {
		if s.PerStream[i].TotalValue != s.PerStream[j].TotalValue {
			return s.PerStream[i].TotalValue > s.PerStream[j].TotalValue
		}
		return s.PerStream[i].Stream < s.PerStream[j].Stream
	})

	s.Totals.StreamCount = len(s.PerStream)
	if a.MonthlyTarget > 0 {
		s.Totals.TargetProgress = s.Totals.PipelineValue / a.MonthlyTarget
	}
	return s, nil
}
