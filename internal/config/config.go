package config

import (
	"os"
	"runtime"
	"strconv"
	"time"

	"dataprof/domain/profile"
	"dataprof/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ProfilingConfig holds the engine thresholds and run limits
type ProfilingConfig struct {
	CategoricalDistinctRatio float64
	LowCardinalityCount      int
	LowCardinalityFraction   float64
	TopNCategories           int
	Workers                  int
	Timeout                  time.Duration
}

// Load reads the configuration from the environment. Every value has a
// default; DATABASE_URL stays empty when unset and Postgres features are
// simply unavailable.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Profiling: ProfilingConfig{
			CategoricalDistinctRatio: getEnvFloat("PROFILE_CATEGORICAL_RATIO", 0.5),
			LowCardinalityCount:      getEnvInt("PROFILE_LOW_CARDINALITY_COUNT", 10),
			LowCardinalityFraction:   getEnvFloat("PROFILE_LOW_CARDINALITY_FRACTION", 0.05),
			TopNCategories:           getEnvInt("PROFILE_TOP_N", 10),
			Workers:                  getEnvInt("PROFILE_WORKERS", runtime.NumCPU()),
			Timeout:                  time.Duration(getEnvInt("PROFILE_TIMEOUT_SECONDS", 0)) * time.Second,
		},
	}

	if err := cfg.EngineConfig().Validate(); err != nil {
		return nil, errors.ConfigInvalid(err.Error())
	}
	return cfg, nil
}

// EngineConfig maps the environment-derived thresholds onto the engine's
// explicit configuration value.
func (c *Config) EngineConfig() profile.Config {
	engineCfg := profile.DefaultConfig()
	engineCfg.CategoricalDistinctRatio = c.Profiling.CategoricalDistinctRatio
	engineCfg.LowCardinalityCount = c.Profiling.LowCardinalityCount
	engineCfg.LowCardinalityFraction = c.Profiling.LowCardinalityFraction
	engineCfg.TopNCategories = c.Profiling.TopNCategories
	engineCfg.Workers = c.Profiling.Workers
	engineCfg.Timeout = c.Profiling.Timeout
	return engineCfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
