package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SeparatorColumn != 60 {
		t.Errorf("expected separator column 60, got %d", cfg.SeparatorColumn)
	}
	if cfg.FixedCJKWidth {
		t.Error("expected fixed CJK width off by default")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanalign.yaml")
	content := "separator_column: 52\nfixed_cjk_width: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SeparatorColumn != 52 {
		t.Errorf("expected separator column 52, got %d", cfg.SeparatorColumn)
	}
	if !cfg.FixedCJKWidth {
		t.Error("expected fixed CJK width on")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("separator_column: [not an int\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BEANALIGN_SEPARATOR_COLUMN", "44")
	t.Setenv("BEANALIGN_FIXED_CJK_WIDTH", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SeparatorColumn != 44 {
		t.Errorf("expected separator column 44, got %d", cfg.SeparatorColumn)
	}
	if !cfg.FixedCJKWidth {
		t.Error("expected fixed CJK width on")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beanalign.yaml")
	if err := os.WriteFile(path, []byte("separator_column: 52\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("BEANALIGN_SEPARATOR_COLUMN", "48")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SeparatorColumn != 48 {
		t.Errorf("env should override file: expected 48, got %d", cfg.SeparatorColumn)
	}
}

func TestInvalidEnvValue(t *testing.T) {
	t.Setenv("BEANALIGN_SEPARATOR_COLUMN", "sixty")

	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric separator column")
	}
}

func TestValidateSeparatorColumn(t *testing.T) {
	cfg := Config{SeparatorColumn: 0}
	if err := cfg.Validate(); !errors.Is(err, ErrSeparatorColumn) {
		t.Errorf("expected ErrSeparatorColumn, got %v", err)
	}

	cfg.SeparatorColumn = 1
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
