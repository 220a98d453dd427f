// Package config loads the optional YAML file that tunes the self-test
// CLI: log output, the commission tier table and bonus policy, and the
// payroll rates.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root of the YAML document.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Commission CommissionConfig `yaml:"commission"`
	Payroll    PayrollConfig    `yaml:"payroll"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// Tier is one row of the commission tier table.
type Tier struct {
	Limit float64 `yaml:"limit"`
	Rate  float64 `yaml:"rate"`
}

// BonusConfig holds the tenure thresholds of the bonus policy.
type BonusConfig struct {
	SeniorYears int     `yaml:"senior_years"`
	SeniorRate  float64 `yaml:"senior_rate"`
	MidYears    int     `yaml:"mid_years"`
	MidRate     float64 `yaml:"mid_rate"`
}

// CommissionConfig describes a commission calculation.
type CommissionConfig struct {
	BaseRate    float64     `yaml:"base_rate"`
	Tiers       []Tier      `yaml:"tiers"`
	Bonus       BonusConfig `yaml:"bonus"`
	TenureYears int         `yaml:"tenure_years"`
}

// PayrollConfig holds the payroll policy rates.
type PayrollConfig struct {
	TaxRate   float64 `yaml:"tax_rate"`
	BonusRate float64 `yaml:"bonus_rate"`
}

// DefaultConfig returns the built-in configuration: a 5% base rate, the
// 1000/5000/10000 tier table and a seven year tenure.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Commission: CommissionConfig{
			BaseRate: 0.05,
			Tiers: []Tier{
				{Limit: 1000, Rate: 0.02},
				{Limit: 5000, Rate: 0.03},
				{Limit: 10000, Rate: 0.04},
			},
			Bonus: BonusConfig{
				SeniorYears: 10,
				SeniorRate:  0.05,
				MidYears:    5,
				MidRate:     0.02,
			},
			TenureYears: 7,
		},
		Payroll: PayrollConfig{
			TaxRate:   0.20,
			BonusRate: 0.10,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative rates, negative tenure and tier tables that
// are empty or not sorted by ascending limit.
func (c *Config) Validate() error {
	cc := c.Commission
	if cc.BaseRate < 0 {
		return fmt.Errorf("commission.base_rate must not be negative, got %v", cc.BaseRate)
	}
	if len(cc.Tiers) == 0 {
		return errors.New("commission.tiers must not be empty")
	}
	for i, tier := range cc.Tiers {
		if tier.Rate < 0 {
			return fmt.Errorf("commission.tiers[%d].rate must not be negative, got %v", i, tier.Rate)
		}
		if i > 0 && tier.Limit <= cc.Tiers[i-1].Limit {
			return fmt.Errorf("commission.tiers[%d].limit %v must exceed %v", i, tier.Limit, cc.Tiers[i-1].Limit)
		}
	}
	if cc.TenureYears < 0 {
		return fmt.Errorf("commission.tenure_years must not be negative, got %d", cc.TenureYears)
	}
	if cc.Bonus.SeniorRate < 0 || cc.Bonus.MidRate < 0 {
		return errors.New("commission.bonus rates must not be negative")
	}
	if c.Payroll.TaxRate < 0 || c.Payroll.BonusRate < 0 {
		return errors.New("payroll rates must not be negative")
	}
	return nil
}
