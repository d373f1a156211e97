package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model runs one game session: it feeds ticks and input frames to the
// game, mirrors the reported state, and persists scores and saved runs
// through the store.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	scoreSaved bool
}

// NewModel wires a game to the terminal loop. A zero seed is replaced
// with the wall clock so runs differ unless one is forced.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update dispatches Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Screenshot is a platform shortcut, not a game action
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		persistRun(m.game, m.store)
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionNone:
	case action == core.ActionRestart && !m.gameState.GameOver:
		// Restart only counts once the run is over
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize rebuilds the session at the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.gameState = rebuildForResize(m.game, m.config, m.gameState)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		return m.restartRun()
	}
	m.gameState, m.scoreSaved = stepGame(m.game, m.store, &m.inputFrame, m.scoreSaved)
	return m, tickCmd(m.config.TickRate)
}

// restartRun begins a new run with a fresh seed.
func (m Model) restartRun() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// stepGame advances the game one tick and clears the frame for the
// next one. The first game-over tick records the score; the returned
// latch keeps later ticks from recording it again.
func stepGame(game registry.Game, store *storage.Store, frame *core.InputFrame, scoreSaved bool) (core.GameState, bool) {
	state := game.Step(*frame).State

	if state.GameOver && !scoreSaved && state.Score > 0 {
		if store != nil {
			//nolint:errcheck // best-effort, the session continues regardless
			store.SaveScore(game.ID(), state.Score)
		}
		scoreSaved = true
	}

	frame.Clear()
	return state, scoreSaved
}

// rebuildForResize resets a game at new dimensions. Resumable games
// carry their run across the rebuild; others restart unless the run
// already ended.
func rebuildForResize(game registry.Game, cfg core.RuntimeConfig, state core.GameState) core.GameState {
	if saver, ok := game.(registry.Saver); ok {
		data, err := saver.SaveData()
		game.Reset(cfg)
		if err == nil && data != nil {
			//nolint:errcheck // fall back to the fresh run on bad data
			saver.RestoreData(data)
		}
		return game.State()
	}

	if !state.GameOver {
		game.Reset(cfg)
	}
	return state
}

// persistRun stores the current run of a resumable game, or clears the
// slot when the game reports nothing worth resuming.
func persistRun(game registry.Game, store *storage.Store) {
	saver, ok := game.(registry.Saver)
	if !ok || store == nil {
		return
	}

	data, err := saver.SaveData()
	if err != nil {
		return
	}
	if data == nil {
		//nolint:errcheck // best-effort cleanup
		store.DeleteSaves(game.ID())
		return
	}
	//nolint:errcheck // best-effort, quitting continues regardless
	store.SaveGameData(game.ID(), data)
}

// saveScreenshot dumps the rendered screen to a text file under the
// user's data directory.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // best-effort, the session continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View draws the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run drives a game session until the player quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
