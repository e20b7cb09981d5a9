package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/banksean/forge/internal/build"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err != nil {
		t.Fatalf("Load(missing file): %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing file) = %+v, want %+v", cfg, Default())
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".forge.yaml")
	contents := []byte("logLevel: debug\notlpEndpoint: localhost:4317\nlimits:\n  maxThreads: 4\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.OTLPEndpoint != "localhost:4317" {
		t.Errorf("OTLPEndpoint = %q, want %q", cfg.OTLPEndpoint, "localhost:4317")
	}
	if cfg.Limits.MaxThreads != 4 {
		t.Errorf("Limits.MaxThreads = %d, want 4", cfg.Limits.MaxThreads)
	}
}

func TestResolvedLimitsLayersOverridesOntoDefaults(t *testing.T) {
	cfg := Default()
	cfg.Limits.MaxThreads = 4
	cfg.Limits.MaxTargets = 2

	got := cfg.ResolvedLimits()
	want := build.DefaultLimits()
	want.MaxThreads = 4
	want.MaxTargets = 2

	if got != want {
		t.Errorf("ResolvedLimits() = %+v, want %+v", got, want)
	}
}

func TestResolvedLimitsWithNoOverridesMatchesDefaultLimits(t *testing.T) {
	cfg := Default()
	if got := cfg.ResolvedLimits(); got != build.DefaultLimits() {
		t.Errorf("ResolvedLimits() with no overrides = %+v, want %+v", got, build.DefaultLimits())
	}
}
