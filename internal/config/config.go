package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CriterionConfig is one ICP registry entry. Adding a category is a config
// change, not a code change; the router maps unknown categories to the
// generic "Other" revenue stream.
type CriterionConfig struct {
	Category     string   `yaml:"category" json:"category"`
	Titles       []string `yaml:"titles" json:"titles"`
	Industries   []string `yaml:"industries" json:"industries"`
	CompanySizes []string `yaml:"company_sizes" json:"company_sizes"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
	Threshold    float64  `yaml:"threshold" json:"threshold"`
	AvgDealValue float64  `yaml:"avg_deal_value" json:"avg_deal_value"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Automation struct {
		Enabled          bool     `yaml:"enabled" json:"enabled"`
		IntervalSeconds  int      `yaml:"interval_seconds" json:"interval_seconds"`
		BatchSize        int      `yaml:"batch_size" json:"batch_size"`
		Categories       []string `yaml:"categories" json:"categories"`
		MaxCyclesPerHour int      `yaml:"max_cycles_per_hour" json:"max_cycles_per_hour"`
	} `yaml:"automation" json:"automation"`

	Targets struct {
		MonthlyRevenue float64 `yaml:"monthly_revenue" json:"monthly_revenue"`
	} `yaml:"targets" json:"targets"`

	Pool struct {
		CandidatesFile string `yaml:"candidates_file" json:"candidates_file"`
		// SampleSeed fixes the sampler's randomness; 0 means time-seeded.
		SampleSeed int64 `yaml:"sample_seed" json:"sample_seed"`
	} `yaml:"pool" json:"pool"`

	// Criteria overrides or extends the built-in ICP registry entries.
	Criteria []CriterionConfig `yaml:"criteria" json:"criteria"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
