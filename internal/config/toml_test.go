package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Analysis.Buckets != nil || cfg.Report.Format != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[analysis]
buckets = 64
word-policy = "reject"

[report]
order = "count"
top = 10
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Analysis.Buckets == nil || *cfg.Analysis.Buckets != 64 {
		t.Fatalf("unexpected buckets: %v", cfg.Analysis.Buckets)
	}
	if cfg.Analysis.WordPolicy == nil || *cfg.Analysis.WordPolicy != "reject" {
		t.Fatalf("unexpected word policy: %v", cfg.Analysis.WordPolicy)
	}
	if cfg.Analysis.MaxWordLength != nil {
		t.Fatalf("expected unset max word length")
	}
	if cfg.Report.Order == nil || *cfg.Report.Order != "count" {
		t.Fatalf("unexpected order: %v", cfg.Report.Order)
	}
	if cfg.Report.Top == nil || *cfg.Report.Top != 10 {
		t.Fatalf("unexpected top: %v", cfg.Report.Top)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "analysis:\n  max-word-length: 12\nreport:\n  format: json\n  color: never\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Analysis.MaxWordLength == nil || *cfg.Analysis.MaxWordLength != 12 {
		t.Fatalf("unexpected max word length: %v", cfg.Analysis.MaxWordLength)
	}
	if cfg.Report.Format == nil || *cfg.Report.Format != "json" {
		t.Fatalf("unexpected format: %v", cfg.Report.Format)
	}
	if cfg.Report.Color == nil || *cfg.Report.Color != "never" {
		t.Fatalf("unexpected color: %v", cfg.Report.Color)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[analysis\nbuckets ="), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultConfigPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "tstat", "config.toml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	want := filepath.Join(home, ".config", AppName)
	if got := Dir(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got := DefaultConfigPath(); got != filepath.Join(want, "config.toml") {
		t.Fatalf("expected config under %q, got %q", want, got)
	}
}
