package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/blockfall/internal/core"
	"github.com/ametelin/blockfall/internal/game"
	"github.com/ametelin/blockfall/internal/storage"
)

// loadedMsg carries the serialized save slot contents, possibly empty.
type loadedMsg struct {
	raw string
}

// savedMsg signals that the save slot write finished.
type savedMsg struct{}

// Model is the Bubble Tea model for running the game.
type Model struct {
	state      game.State
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	state, _ := game.New(cfg.BoardW, cfg.BoardH, cfg.Seed)

	return Model{
		state:  state,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
		keys:   NewKeyMapper(cfg),
	}
}

// Init starts the model by resolving the save slot.
func (m Model) Init() tea.Cmd {
	return m.perform(game.EffectLoad)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case loadedMsg:
		var eff game.Effect
		m.state, eff = game.Dispatch(m.state, game.Loaded{Raw: msg.raw})
		return m, m.perform(eff)

	case savedMsg:
		var eff game.Effect
		m.state, eff = game.Dispatch(m.state, game.Saved{})
		return m, m.perform(eff)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events, quit := m.keys.Press(msg.String(), time.Now(), m.state.Phase)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	for _, ev := range events {
		if _, ok := ev.(game.Start); ok {
			m.scoreSaved = false
		}
		var eff game.Effect
		m.state, eff = game.Dispatch(m.state, ev)
		if cmd := m.perform(eff); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleTick processes simulation frames.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Synthesize releases for controls whose key repeats stopped
	for _, ev := range m.keys.Expired(now) {
		m.state, _ = game.Dispatch(m.state, ev)
	}

	prevPhase := m.state.Phase

	var eff game.Effect
	m.state, eff = game.Dispatch(m.state, game.Frame{Now: now})

	// Record the final score once when the game tops out
	if prevPhase == game.PhasePlaying && m.state.Phase == game.PhaseStopped && !m.scoreSaved {
		if m.store != nil && m.state.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.state.Score, m.state.Lines, m.state.Level())
		}
		m.scoreSaved = true
	}

	return m, m.perform(eff)
}

// perform turns a simulation effect into a Bubble Tea command.
func (m Model) perform(eff game.Effect) tea.Cmd {
	switch eff {
	case game.EffectTick:
		return tickCmd(m.config.TickRate)
	case game.EffectLoad:
		return m.loadCmd()
	case game.EffectSave:
		return m.saveCmd()
	}
	return nil
}

// loadCmd reads the save slot in the background.
// A fresh-game request or any read failure resolves to an empty slot.
func (m Model) loadCmd() tea.Cmd {
	store := m.store
	slot := m.config.SaveSlot
	fresh := m.config.FreshGame

	return func() tea.Msg {
		if fresh || store == nil {
			return loadedMsg{}
		}
		raw, err := store.LoadState(slot)
		if err != nil {
			return loadedMsg{}
		}
		return loadedMsg{raw: raw}
	}
}

// saveCmd writes the current state to the save slot in the background.
func (m Model) saveCmd() tea.Cmd {
	store := m.store
	slot := m.config.SaveSlot
	encoded := game.Encode(m.state)

	return func() tea.Msg {
		if store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			store.SaveState(slot, encoded)
		}
		return savedMsg{}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	RenderGame(m.state, m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
