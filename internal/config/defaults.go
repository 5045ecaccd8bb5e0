package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			MoveReleaseMS:   250,
			RotateReleaseMS: 350,
		},
		Storage: StorageConfig{
			DBPath:   "~/.blockfall/blockfall.db",
			SaveSlot: "blockfall.save.v1",
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
