package icp

import (
	"strings"

	"empire-engine/internal/domain"
)

// Score rates a candidate against one category's criterion, returning a value
// in [0,1]. Pure function: identical inputs always produce identical output.
//
// Components: title and industry match on case-insensitive substrings, size
// on exact bucket membership, keywords on the matched fraction across
// notes+title+industry. The final cap tolerates future weight changes; with
// the default weights the sum cannot exceed 1.0 by construction.
func Score(c domain.Candidate, cr Criterion) float64 {
	score := 0.0

	title := strings.ToLower(c.Title)
	for _, phrase := range cr.Titles {
		if strings.Contains(title, strings.ToLower(phrase)) {
			score += cr.Weights.Title
			break
		}
	}

	industry := strings.ToLower(c.Industry)
	for _, phrase := range cr.Industries {
		if strings.Contains(industry, strings.ToLower(phrase)) {
			score += cr.Weights.Industry
			break
		}
	}

	for _, bucket := range cr.CompanySizes {
		if c.CompanySize == bucket {
			score += cr.Weights.Size
			break
		}
	}

	if len(cr.Keywords) > 0 {
		text := strings.ToLower(c.Notes + " " + c.Title + " " + c.Industry)
		matched := 0
		for _, kw := range cr.Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(cr.Keywords))
		if ratio > 1 {
			ratio = 1
		}
		score += ratio * cr.Weights.Keyword
	}

	if score > 1 {
		score = 1
	}
	return score
}
