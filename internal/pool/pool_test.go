package pool

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"empire-engine/internal/domain"
)

func seededPool(t *testing.T, n int) *Pool {
	t.Helper()
	p := New(42)
	for i := 0; i < n; i++ {
		p.Add("clients", domain.Candidate{
			Name:  "Candidate " + strconv.Itoa(i),
			Email: "c" + strconv.Itoa(i) + "@example.com",
		})
	}
	return p
}

func TestSample_NoDuplicatesWithinDraw(t *testing.T) {
	p := seededPool(t, 20)

	got := p.Sample("clients", 10)
	require.Len(t, got, 10)

	seen := make(map[string]bool)
	for _, c := range got {
		require.False(t, seen[c.Email], "candidate %s drawn twice", c.Email)
		seen[c.Email] = true
	}
}

func TestSample_ShortPoolReturnsAll(t *testing.T) {
	p := seededPool(t, 3)

	got := p.Sample("clients", 10)
	assert.Len(t, got, 3)
}

func TestSample_DoesNotMutatePool(t *testing.T) {
	p := seededPool(t, 12)

	before := p.Size("clients")
	for i := 0; i < 5; i++ {
		p.Sample("clients", 4)
	}
	assert.Equal(t, before, p.Size("clients"))
}

func TestSample_EmptyAndZero(t *testing.T) {
	p := seededPool(t, 5)

	assert.Nil(t, p.Sample("unknown", 3))
	assert.Nil(t, p.Sample("clients", 0))
	assert.Nil(t, p.Sample("clients", -1))
}

func TestSample_FixedSeedIsDeterministic(t *testing.T) {
	a := seededPool(t, 20)
	b := seededPool(t, 20)

	assert.Equal(t, a.Sample("clients", 5), b.Sample("clients", 5))
	assert.Equal(t, a.Sample("clients", 5), b.Sample("clients", 5))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.yml")
	seed := `categories:
  clients:
    - name: Ada Okoro
      email: ada@example.com
      company: Northwind
      title: CTO
      industry: Healthcare
      company_size: 1001-5000
      notes: ""
  events:
    - name: Ben Ito
      email: ben@example.org
      company: SummitCo
      title: Event Director
      industry: Media
      company_size: 51-200
`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	p := New(1)
	require.NoError(t, p.LoadFile(path))

	assert.Equal(t, 1, p.Size("clients"))
	assert.Equal(t, 1, p.Size("events"))

	got := p.Sample("clients", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada Okoro", got[0].Name)
	assert.Equal(t, "1001-5000", got[0].CompanySize)
}

func TestLoadFile_MissingFile(t *testing.T) {
	p := New(1)
	assert.Error(t, p.LoadFile(filepath.Join(t.TempDir(), "nope.yml")))
}
