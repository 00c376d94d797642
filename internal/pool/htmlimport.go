package pool

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"empire-engine/internal/domain"
)

// ParseHTML extracts candidates from the first table of an HTML contact
// export (CRM or search-result exports saved as HTML). Expected cell order:
// name, email, company, title, industry, company size, optional notes.
// Header rows and rows with too few cells are skipped.
func ParseHTML(r io.Reader) ([]domain.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse candidate export: %w", err)
	}

	var out []domain.Candidate
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		text := func(i int) string { return cleanText(cells.Eq(i).Text()) }
		c := domain.Candidate{
			Name:        text(0),
			Email:       text(1),
			Company:     text(2),
			Title:       text(3),
			Industry:    text(4),
			CompanySize: text(5),
		}
		if cells.Length() > 6 {
			c.Notes = text(6)
		}
		if c.Name == "" && c.Email == "" {
			return
		}
		out = append(out, c)
	})

	return out, nil
}

// ImportHTML parses an export and adds its candidates to a category,
// returning how many were added.
func (p *Pool) ImportHTML(category string, r io.Reader) (int, error) {
	cands, err := ParseHTML(r)
	if err != nil {
		return 0, err
	}
	p.Add(category, cands...)
	return len(cands), nil
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
