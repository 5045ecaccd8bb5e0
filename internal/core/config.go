package core

// RuntimeConfig contains everything the platform layer needs to run a
// session: terminal dimensions, board dimensions, timing, and the seed
// for the deterministic piece sequence.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // Piece-sequence seed (0 means use current time)

	BoardW int // Board width in cells
	BoardH int // Board height in cells

	// Held-key release thresholds in milliseconds. Terminals report key
	// repeats but no key-up, so a control counts as released once this
	// long passes without another repeat.
	MoveReleaseMS   int
	RotateReleaseMS int

	SaveSlot  string // Storage key for the persisted game
	FreshGame bool   // Skip loading the persisted game on startup
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		TickRate:        60,
		Seed:            0,
		BoardW:          10,
		BoardH:          20,
		MoveReleaseMS:   250,
		RotateReleaseMS: 350,
		SaveSlot:        "blockfall.save.v1",
	}
}
