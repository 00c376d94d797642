package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type criteriaFile struct {
	Criteria []CriterionConfig `yaml:"criteria"`
}

// OverlayCriteria merges extra registry entries from a side file into cfg,
// replacing same-category entries. A missing file is not an error so a fresh
// data dir starts with the built-in registry only.
func OverlayCriteria(cfg *Config, criteriaPath string) error {
	b, err := os.ReadFile(criteriaPath)
	if err != nil {
		return nil
	}

	var cf criteriaFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		return err
	}

	for _, extra := range cf.Criteria {
		replaced := false
		for i, c := range cfg.Criteria {
			if c.Category == extra.Category {
				cfg.Criteria[i] = extra
				replaced = true
				break
			}
		}
		if !replaced {
			cfg.Criteria = append(cfg.Criteria, extra)
		}
	}
	return nil
}
