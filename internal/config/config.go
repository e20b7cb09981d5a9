// Package config defines forge's YAML configuration file: capacity
// overrides for the engine's registry and pools, plus logging and tracing
// settings. It is read once at startup; forge never writes it back (the
// engine carries no persisted state of its own).
package config

import (
	"fmt"
	"os"

	"github.com/banksean/forge/internal/build"
	"gopkg.in/yaml.v3"
)

// EngineConfig is the shape of the YAML file named by forge's --config flag
// (.forge.yaml in the working directory by default; no other location is
// searched).
type EngineConfig struct {
	LogFile      string `yaml:"logFile"`
	LogLevel     string `yaml:"logLevel"`
	OTLPEndpoint string `yaml:"otlpEndpoint"`

	Limits LimitsConfig `yaml:"limits"`
}

// LimitsConfig overrides build.Limits fields when nonzero. Fields left at
// zero fall back to build.DefaultLimits().
type LimitsConfig struct {
	MaxTargets     int `yaml:"maxTargets"`
	MaxConfigs     int `yaml:"maxConfigs"`
	MaxGlobs       int `yaml:"maxGlobs"`
	MaxThreads     int `yaml:"maxThreads"`
	MaxEnvs        int `yaml:"maxEnvs"`
	MaxJoinStrings int `yaml:"maxJoinStrings"`
	MaxMaps        int `yaml:"maxMaps"`
}

// Default returns an EngineConfig with forge's stock logging defaults and
// no capacity overrides.
func Default() EngineConfig {
	return EngineConfig{
		LogFile:  "",
		LogLevel: "info",
	}
}

// Load reads and parses path as YAML into an EngineConfig seeded with
// Default(). A missing file is not an error: Default() is returned as-is,
// the same "no config file means stock behavior" contract kong.Configuration
// resolvers expect.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// ResolvedLimits resolves build.Limits by layering LimitsConfig's nonzero
// overrides onto build.DefaultLimits().
func (c EngineConfig) ResolvedLimits() build.Limits {
	limits := build.DefaultLimits()
	if c.Limits.MaxTargets > 0 {
		limits.MaxTargets = c.Limits.MaxTargets
	}
	if c.Limits.MaxConfigs > 0 {
		limits.MaxConfigs = c.Limits.MaxConfigs
	}
	if c.Limits.MaxGlobs > 0 {
		limits.MaxGlobs = c.Limits.MaxGlobs
	}
	if c.Limits.MaxThreads > 0 {
		limits.MaxThreads = c.Limits.MaxThreads
	}
	if c.Limits.MaxEnvs > 0 {
		limits.MaxEnvs = c.Limits.MaxEnvs
	}
	if c.Limits.MaxJoinStrings > 0 {
		limits.MaxJoinStrings = c.Limits.MaxJoinStrings
	}
	if c.Limits.MaxMaps > 0 {
		limits.MaxMaps = c.Limits.MaxMaps
	}
	return limits
}
