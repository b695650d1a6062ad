// Package config loads interpreter configuration from an optional
// .chef.toml file, mirroring the teacher's BurntSushi/toml posture.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the one piece of configurable interpreter behavior spec.md
// §9 calls acceptable to make deterministic: the Shuffle RNG seed.
type Config struct {
	Shuffle ShuffleConfig `toml:"shuffle"`
}

// ShuffleConfig pins Shuffle's RNG for reproducible test runs.
type ShuffleConfig struct {
	Seed    int64 `toml:"seed"`
	HasSeed bool  `toml:"-"`
}

// Default returns a Config with no seed pinned (non-deterministic
// Shuffle, spec.md's default).
func Default() *Config {
	return &Config{}
}

// Load reads and parses a TOML config file at path. A missing file is
// not an error; it returns Default().
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	var raw struct {
		Shuffle struct {
			Seed *int64 `toml:"seed"`
		} `toml:"shuffle"`
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	cfg := Default()
	if raw.Shuffle.Seed != nil {
		cfg.Shuffle.Seed = *raw.Shuffle.Seed
		cfg.Shuffle.HasSeed = true
	}
	return cfg, nil
}
