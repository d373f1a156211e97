// Package registry keeps the table of playable modes. Each mode
// registers a factory from init(), and the rest of the program looks
// modes up by ID, so menus, CLI commands, and SSH sessions never name
// concrete game types.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game is the contract between a playable mode and the platform. A Game
// holds pure simulation logic: no terminal handling, no Bubble Tea, no
// storage. The platform owns key mapping, the tick loop, and pushing
// the rendered buffer to the terminal.
type Game interface {
	// ID returns the stable identifier used for CLI commands and score
	// storage, e.g. "platformer".
	ID() string

	// Title returns the display name shown in menus.
	Title() string

	// Reset starts a fresh run with the given screen size and RNG
	// seed. It runs once before the first Step and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation one fixed tick under the given
	// input actions and reports the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst. The buffer keeps its
	// previous contents, so implementations clear it first.
	Render(dst *core.Screen)

	// State returns the current score and run flags.
	State() core.GameState
}

// Saver is implemented by games whose run can be persisted and resumed.
// The platform saves the encoded run when a session ends mid-game and
// feeds it back on the next play.
type Saver interface {
	// SaveData encodes the current run. A nil slice with a nil error
	// means there is nothing worth resuming (e.g., a finished run).
	SaveData() ([]byte, error)

	// RestoreData replaces the current run with a previously saved one.
	// The game must already have been Reset so configuration is loaded.
	RestoreData(data []byte) error
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh instance of a mode.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu    sync.RWMutex
	modes = make(map[string]entry)
)

// Register adds a mode under its ID, typically from the mode package's
// init(). It panics when the ID is already taken, since that is a
// programming error rather than a runtime condition.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, taken := modes[id]; taken {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// Build a throwaway instance once so List never has to
	modes[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered mode sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(modes))
	for id := range modes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	infos := make([]GameInfo, len(ids))
	for i, id := range ids {
		infos[i] = GameInfo{ID: id, Title: modes[id].title}
	}
	return infos
}

// Create builds a fresh instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := modes[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}
