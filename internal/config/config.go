// Package config provides YAML-based configuration loading for the game.
package config

// Config contains all tunable settings for a game session.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
}

// BoardConfig defines the dimensions of the playfield.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// InputConfig defines how held keys are inferred from terminal input.
// Terminals report key presses only, so a control counts as released
// once this many milliseconds pass without a repeat.
type InputConfig struct {
	MoveReleaseMS   int `yaml:"move_release_ms"`
	RotateReleaseMS int `yaml:"rotate_release_ms"`
}

// StorageConfig defines where persistent data lives.
type StorageConfig struct {
	DBPath   string `yaml:"db_path"`
	SaveSlot string `yaml:"save_slot"`
}

// Normalize clamps out-of-range values back to sane defaults.
// A zero value in any field means "use the default".
func (c *Config) Normalize() {
	def := Default()

	if c.Board.Width < 4 || c.Board.Width > 100 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height < 4 || c.Board.Height > 200 {
		c.Board.Height = def.Board.Height
	}
	if c.Timing.TickRate < 1 || c.Timing.TickRate > 240 {
		c.Timing.TickRate = def.Timing.TickRate
	}
	if c.Input.MoveReleaseMS <= 0 {
		c.Input.MoveReleaseMS = def.Input.MoveReleaseMS
	}
	if c.Input.RotateReleaseMS <= 0 {
		c.Input.RotateReleaseMS = def.Input.RotateReleaseMS
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Storage.SaveSlot == "" {
		c.Storage.SaveSlot = def.Storage.SaveSlot
	}
}
