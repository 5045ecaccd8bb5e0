package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	cfg.Normalize()

	def := Default()
	if cfg != def {
		t.Errorf("embedded default = %+v, want %+v", cfg, def)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	doc := "board:\n  width: 12\n  height: 24\ntiming:\n  tick_rate: 30\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Width != 12 || cfg.Board.Height != 24 {
		t.Errorf("board = %dx%d, want 12x24", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("tick rate = %d, want 30", cfg.Timing.TickRate)
	}

	// Fields the document omits fall back to defaults
	def := Default()
	if cfg.Input.MoveReleaseMS != def.Input.MoveReleaseMS {
		t.Errorf("move release = %d, want default %d", cfg.Input.MoveReleaseMS, def.Input.MoveReleaseMS)
	}
	if cfg.Storage.SaveSlot != def.Storage.SaveSlot {
		t.Errorf("save slot = %q, want default %q", cfg.Storage.SaveSlot, def.Storage.SaveSlot)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load() with missing explicit path should fail")
	}
}

func TestNormalizeClampsOutOfRange(t *testing.T) {
	cfg := Config{
		Board:  BoardConfig{Width: -5, Height: 1000},
		Timing: TimingConfig{TickRate: 100000},
	}
	cfg.Normalize()

	def := Default()
	if cfg.Board.Width != def.Board.Width {
		t.Errorf("width = %d, want default %d", cfg.Board.Width, def.Board.Width)
	}
	if cfg.Board.Height != def.Board.Height {
		t.Errorf("height = %d, want default %d", cfg.Board.Height, def.Board.Height)
	}
	if cfg.Timing.TickRate != def.Timing.TickRate {
		t.Errorf("tick rate = %d, want default %d", cfg.Timing.TickRate, def.Timing.TickRate)
	}
}
