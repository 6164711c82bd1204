package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Fatalf("Validate() on defaults failed: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestTick(t *testing.T) {
	if got := DefaultBreakoutConfig().Timing.Tick(); got != 33*time.Millisecond {
		t.Errorf("Tick() = %v, expected 33ms", got)
	}
}

func TestValidateRejectsDegenerateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		want   string
	}{
		{"no interior", func(c *BreakoutConfig) { c.Playfield.Width = 2 }, "no interior"},
		{"zero columns", func(c *BreakoutConfig) { c.Bricks.Columns = 0 }, "positive dimensions"},
		{"negative rows", func(c *BreakoutConfig) { c.Bricks.Rows = -1 }, "positive dimensions"},
		{"paddle too wide", func(c *BreakoutConfig) { c.Paddle.Width = 59 }, "paddle width"},
		{"zero paddle", func(c *BreakoutConfig) { c.Paddle.Width = 0 }, "paddle width"},
		{"negative speed", func(c *BreakoutConfig) { c.Paddle.Speed = -1 }, "paddle speed"},
		{"too short", func(c *BreakoutConfig) { c.Playfield.Height = 12 }, "cannot fit"},
		{"negative margin", func(c *BreakoutConfig) { c.Playfield.TopMargin = -1 }, "top margin"},
		{"zero throttle", func(c *BreakoutConfig) { c.Ball.Throttle = 0 }, "throttle"},
		{"zero max dx", func(c *BreakoutConfig) { c.Ball.MaxDX = 0 }, "max_dx"},
		{"vertical start", func(c *BreakoutConfig) { c.Ball.StartDX = 0 }, "start_dx"},
		{"start dx out of range", func(c *BreakoutConfig) { c.Ball.StartDX = 3 }, "start_dx"},
		{"start dx out of range left", func(c *BreakoutConfig) { c.Ball.StartDX = -3 }, "start_dx"},
		{"fast start dy", func(c *BreakoutConfig) { c.Ball.StartDY = 2 }, "start_dy"},
		{"zero tick", func(c *BreakoutConfig) { c.Timing.TickMS = 0 }, "tick_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() error %q, expected it to mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Bricks.Columns = 0
	cfg.Timing.TickMS = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "positive dimensions") || !strings.Contains(msg, "tick_ms") {
		t.Errorf("Validate() = %q, expected both problems reported", msg)
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := []byte("bricks:\n  columns: 1\n  rows: 1\nball:\n  throttle: 1\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Bricks.Columns != 1 || cfg.Bricks.Rows != 1 {
		t.Errorf("bricks = %+v, expected 1x1", cfg.Bricks)
	}
	if cfg.Ball.Throttle != 1 {
		t.Errorf("throttle = %d, expected 1", cfg.Ball.Throttle)
	}
	// Keys not present in the file keep their defaults
	if cfg.Playfield != DefaultBreakoutConfig().Playfield {
		t.Errorf("playfield = %+v, expected defaults", cfg.Playfield)
	}
}

func TestLoadBreakoutMissingFile(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadBreakout() on missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadBreakout() error %v should wrap os.ErrNotExist", err)
	}
}

func TestLoadBreakoutBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bricks: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadBreakout(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadBreakout() error = %v, expected parse failure", err)
	}
}

func TestDefaultYAMLDocumentsEveryKey(t *testing.T) {
	for _, key := range []string{"playfield:", "bricks:", "paddle:", "ball:", "timing:", "tick_ms:"} {
		if !bytes.Contains(DefaultYAML(), []byte(key)) {
			t.Errorf("default YAML is missing %q", key)
		}
	}
}
