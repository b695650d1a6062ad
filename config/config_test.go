package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Shuffle.HasSeed {
		t.Fatalf("expected no seed configured by default")
	}
}

func TestLoadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".chef.toml")
	if err := os.WriteFile(path, []byte("[shuffle]\nseed = 42\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Shuffle.HasSeed || cfg.Shuffle.Seed != 42 {
		t.Fatalf("expected seed 42, got %+v", cfg.Shuffle)
	}
}
