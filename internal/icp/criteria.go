// Package icp holds the Ideal-Customer-Profile criteria registry and the
// prospect scoring engine.
package icp

import (
	"sort"

	"empire-engine/internal/apperr"
	"empire-engine/internal/config"
)

// Weights are the per-component scoring weights for one category. The four
// weights sum to 1.0; the registry guarantees this at construction.
type Weights struct {
	Title    float64
	Industry float64
	Size     float64
	Keyword  float64
}

func (w Weights) Sum() float64 {
	return w.Title + w.Industry + w.Size + w.Keyword
}

// DefaultWeights is the fixed weighting of the scoring algorithm.
func DefaultWeights() Weights {
	return Weights{Title: 0.4, Industry: 0.3, Size: 0.2, Keyword: 0.1}
}

// Criterion is one category's ICP rules. Immutable for the process lifetime.
type Criterion struct {
	Category     string
	Titles       []string
	Industries   []string
	CompanySizes []string
	Keywords     []string
	Threshold    float64
	AvgDealValue float64
	Weights      Weights
}

// Registry is the static criteria table, keyed by category.
type Registry struct {
	byCategory map[string]Criterion
}

// NewRegistry builds a registry from the given criteria. Criteria with zero
// weights receive DefaultWeights.
func NewRegistry(criteria ...Criterion) *Registry {
	m := make(map[string]Criterion, len(criteria))
	for _, c := range criteria {
		if c.Weights == (Weights{}) {
			c.Weights = DefaultWeights()
		}
		m[c.Category] = c
	}
	return &Registry{byCategory: m}
}

// FromConfig builds a registry from the built-in defaults plus any config
// entries, which replace same-category defaults.
func FromConfig(cfg config.Config) *Registry {
	criteria := Defaults()
	for _, cc := range cfg.Criteria {
		c := Criterion{
			Category:     cc.Category,
			Titles:       cc.Titles,
			Industries:   cc.Industries,
			CompanySizes: cc.CompanySizes,
			Keywords:     cc.Keywords,
			Threshold:    cc.Threshold,
			AvgDealValue: cc.AvgDealValue,
		}
		replaced := false
		for i := range criteria {
			if criteria[i].Category == c.Category {
				criteria[i] = c
				replaced = true
				break
			}
		}
		if !replaced {
			criteria = append(criteria, c)
		}
	}
	return NewRegistry(criteria...)
}

// Get returns the criterion for category, or a configuration error when the
// category has no registered entry.
func (r *Registry) Get(category string) (Criterion, error) {
	c, ok := r.byCategory[category]
	if !ok {
		return Criterion{}, apperr.Configuration("no criterion registered for category " + category).WithOp("icp.get")
	}
	return c, nil
}

// Categories returns registered category ids in stable (sorted) order.
func (r *Registry) Categories() []string {
	out := make([]string, 0, len(r.byCategory))
	for cat := range r.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Defaults returns the built-in criteria table, one entry per business line.
func Defaults() []Criterion {
	return []Criterion{
		{
			Category:     "job_search_clients",
			Titles:       []string{"CTO", "VP Engineering", "Chief Technology Officer", "Head of Engineering", "Engineering Director"},
			Industries:   []string{"Healthcare", "Fintech", "SaaS", "Biotech"},
			CompanySizes: []string{"201-500", "501-1000", "1001-5000"},
			Keywords:     []string{"transition", "searching", "new role", "opportunity", "executive"},
			Threshold:    0.8,
			AvgDealValue: 15000,
		},
		{
			Category:     "health_management_clients",
			Titles:       []string{"Founder", "CEO", "Executive", "Partner", "Managing Director"},
			Industries:   []string{"Healthcare", "Wellness", "Consulting", "Legal"},
			CompanySizes: []string{"1-10", "11-50", "51-200"},
			Keywords:     []string{"burnout", "chronic", "accessibility", "wellness", "stress"},
			Threshold:    0.75,
			AvgDealValue: 8000,
		},
		{
			Category:     "corporate_consulting",
			Titles:       []string{"Chief People Officer", "VP People", "Head of DEI", "CHRO", "Chief Diversity Officer"},
			Industries:   []string{"Technology", "Finance", "Insurance", "Pharmaceutical"},
			CompanySizes: []string{"1001-5000", "5001-10000", "10000+"},
			Keywords:     []string{"inclusion", "equity", "belonging", "culture", "transformation"},
			Threshold:    0.85,
			AvgDealValue: 75000,
		},
		{
			Category:     "speaking_engagements",
			Titles:       []string{"Event Director", "Conference Organizer", "Program Chair", "Head of Events"},
			Industries:   []string{"Technology", "Education", "Media", "Nonprofit"},
			CompanySizes: []string{"51-200", "201-500", "501-1000"},
			Keywords:     []string{"keynote", "summit", "conference", "panel", "workshop"},
			Threshold:    0.8,
			AvgDealValue: 25000,
		},
		{
			Category:     "board_advisory",
			Titles:       []string{"CEO", "Board Chair", "Managing Partner", "President"},
			Industries:   []string{"Venture Capital", "Private Equity", "Technology", "Healthcare"},
			CompanySizes: []string{"11-50", "51-200", "201-500"},
			Keywords:     []string{"board", "governance", "advisor", "oversight", "independent director"},
			Threshold:    0.8,
			AvgDealValue: 50000,
		},
	}
}
