// Package pool supplies the raw candidate records the router draws from.
// Candidates are read-only reference data grouped by category.
package pool

import (
	"math/rand"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"empire-engine/internal/domain"
)

type seedFile struct {
	Categories map[string][]domain.Candidate `yaml:"categories"`
}

type Pool struct {
	mu         sync.Mutex
	byCategory map[string][]domain.Candidate
	rng        *rand.Rand
}

// New creates an empty pool. A non-zero seed fixes the sampling order, which
// tests rely on; 0 seeds from the clock for demo variety.
func New(seed int64) *Pool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Pool{
		byCategory: make(map[string][]domain.Candidate),
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// LoadFile merges a YAML seed file into the pool.
func (p *Pool) LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sf seedFile
	if err := yaml.Unmarshal(b, &sf); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for cat, cands := range sf.Categories {
		p.byCategory[cat] = append(p.byCategory[cat], cands...)
	}
	return nil
}

// Add appends candidates to a category.
func (p *Pool) Add(category string, cands ...domain.Candidate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.byCategory[category] = append(p.byCategory[category], cands...)
}

// Size returns the number of candidates available for a category.
func (p *Pool) Size(category string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byCategory[category])
}

// Sample draws up to n candidates from a category without replacement. If
// fewer than n exist it returns all of them. The underlying set is never
// mutated and no candidate repeats within one call.
func (p *Pool) Sample(category string, n int) []domain.Candidate {
	p.mu.Lock()
	defer p.mu.Unlock()

	cands := p.byCategory[category]
	if n <= 0 || len(cands) == 0 {
		return nil
	}
	if n >= len(cands) {
		out := make([]domain.Candidate, len(cands))
		copy(out, cands)
		return out
	}

	out := make([]domain.Candidate, 0, n)
	for _, i := range p.rng.Perm(len(cands))[:n] {
		out = append(out, cands[i])
	}
	return out
}
