package profile

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"ratio above one", func(c *Config) { c.CategoricalDistinctRatio = 1.2 }},
		{"negative fraction", func(c *Config) { c.LowCardinalityFraction = -0.1 }},
		{"negative count", func(c *Config) { c.LowCardinalityCount = -1 }},
		{"zero top-N", func(c *Config) { c.TopNCategories = 0 }},
		{"unsorted quantiles", func(c *Config) { c.Quantiles = []float64{0.5, 0.25} }},
		{"quantile above one", func(c *Config) { c.Quantiles = []float64{0.5, 1.5} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
