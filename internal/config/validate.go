package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy plus validation results.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Automation.Categories = trimList(out.Automation.Categories)
	for i := range out.Criteria {
		c := &out.Criteria[i]
		c.Category = strings.ToLower(strings.TrimSpace(c.Category))
		c.Titles = trimList(c.Titles)
		c.Industries = trimList(c.Industries)
		c.CompanySizes = trimList(c.CompanySizes)
		c.Keywords = trimList(c.Keywords)
	}

	// ---- Validation rules ----

	if out.Automation.IntervalSeconds <= 0 {
		res.addErr("automation.interval_seconds must be > 0")
	} else if out.Automation.IntervalSeconds < 30 {
		res.addWarn("automation.interval_seconds is very low (%d); generation cycles may pile up.", out.Automation.IntervalSeconds)
	}
	if out.Automation.BatchSize <= 0 {
		res.addErr("automation.batch_size must be > 0")
	}
	if out.Automation.MaxCyclesPerHour < 0 {
		res.addErr("automation.max_cycles_per_hour must be >= 0")
	}

	if out.Targets.MonthlyRevenue < 0 {
		res.addErr("targets.monthly_revenue must be >= 0")
	}

	seenCat := map[string]bool{}
	for i, c := range out.Criteria {
		if c.Category == "" {
			res.addErr("criteria[%d].category is required", i)
			continue
		}
		if seenCat[c.Category] {
			res.addErr("criteria[%d]: duplicate category %q", i, c.Category)
		}
		seenCat[c.Category] = true
		if c.Threshold < 0 || c.Threshold > 1 {
			res.addErr("criteria[%d] (%s): threshold must be in [0,1]", i, c.Category)
		}
		if c.AvgDealValue <= 0 {
			res.addErr("criteria[%d] (%s): avg_deal_value must be > 0", i, c.Category)
		}
		if len(c.Titles) == 0 && len(c.Industries) == 0 {
			res.addWarn("criteria[%d] (%s): no title or industry phrases; nothing can clear a threshold above 0.3", i, c.Category)
		}
		if len(c.Keywords) == 0 {
			res.addWarn("criteria[%d] (%s): keyword list is empty; keyword component always scores 0", i, c.Category)
		}
	}

	return out, res
}
