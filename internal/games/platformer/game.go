// Package platformer provides the side-scrolling platformer game.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play the level pack once, win at the end
	ModeEndless                  // Cycle the pack forever with rising difficulty
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the zero-based level index to begin at, set via CLI
var startLevel int

// levelsDir stores a custom level directory set via CLI
var levelsDir string

// resumeData stores a saved run to restore on the next Reset, set via CLI
var resumeData []byte

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the zero-based index of the first level to play.
func SetStartLevel(index int) {
	startLevel = index
}

// SetLevelsDir points the game at a directory of custom level files
// instead of the built-in pack. An empty string restores the built-ins.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetResumeData queues a saved run to be restored by the next Reset.
// The data is consumed by that Reset whether or not it decodes.
func SetResumeData(data []byte) {
	resumeData = data
}

// Game adapts the platformer simulation to the terminal platform.
type Game struct {
	mode GameMode

	sim *core.State

	runtime    platformcore.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager

	// Custom level pack loaded from levelsDir; nil means built-ins.
	pack []*core.LevelData

	// Endless mode: completed passes through the pack.
	cycle int

	// Terminals deliver key presses but no key releases, so held
	// movement is latched: a direction press sticks until the opposite
	// direction, or down, clears it. Run is a toggle.
	heldLeft  bool
	heldRight bool
	running   bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new platformer game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new platformer game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "platformer_endless"
	}
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Platformer (Endless)"
	}
	return "Platformer"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Check screen size; the tallest level plus the HUD must fit.
	g.minScreenW = 40
	g.minScreenH = 18
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Load custom level pack if one was requested. A bad directory
	// falls back to the built-in pack.
	g.pack = nil
	if levelsDir != "" {
		if all, err := levels.NewLoader(levelsDir).LoadAll(); err == nil && len(all) > 0 {
			g.pack = all
		}
	}

	g.cycle = 0
	g.heldLeft = false
	g.heldRight = false
	g.running = false

	// A queued save takes the place of a fresh run. It is consumed
	// either way so a restart after a failed resume starts clean.
	if resumeData != nil {
		data := resumeData
		resumeData = nil
		if err := g.restoreFrom(data); err == nil {
			return
		}
	}

	index := startLevel
	if index < 0 || index >= g.levelCount() {
		index = 0
	}
	data, err := g.levelData(index)
	if err != nil {
		// The built-in pack always parses; a custom pack that fails
		// here was already filtered out by the loader.
		data, _ = levels.GetLevel(0)
		index = 0
	}
	g.applyDifficulty(data, 0, 0)
	g.sim = core.New(data, g.simConfig(0, 0), index, runtime.Seed)
}

// levelCount returns the size of the active level pack.
func (g *Game) levelCount() int {
	if len(g.pack) > 0 {
		return len(g.pack)
	}
	return levels.LevelCount()
}

// levelData returns a fresh copy of the pack level at index i, wrapping
// past the end of the pack.
func (g *Game) levelData(i int) (*core.LevelData, error) {
	if len(g.pack) > 0 {
		n := len(g.pack)
		idx := ((i % n) + n) % n
		return g.pack[idx].Clone(), nil
	}
	return levels.GetLevel(i)
}

// simConfig builds the simulation config for a level starting at the
// given score and tick, folding in difficulty scaling and the endless
// cycle bonus.
func (g *Game) simConfig(score, ticks int) core.Config {
	cfg := g.cfg

	enemySpeed := g.difficulty.Speed(cfg.Enemies.EnemySpeed, score, ticks)
	bossSpeed := g.difficulty.Speed(cfg.Enemies.BossSpeed, score, ticks)
	fireballSpeed := cfg.Enemies.FireballSpeed
	if g.mode == ModeEndless && g.cycle > 0 {
		bump := 0.01 * float64(g.cycle)
		enemySpeed += bump
		bossSpeed += bump
		fireballSpeed += bump
	}

	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	return core.Config{
		TickRate:      tickRate,
		ViewportWidth: g.runtime.ScreenW,

		Gravity:     cfg.Physics.Gravity,
		MaxFall:     cfg.Physics.MaxFallSpeed,
		JumpImpulse: cfg.Physics.JumpImpulse,
		WalkSpeed:   cfg.Physics.WalkSpeed,
		RunSpeed:    cfg.Physics.RunSpeed,
		GroundAccel: cfg.Physics.GroundAccel,
		AirAccel:    cfg.Physics.AirAccel,
		GroundDecel: cfg.Physics.GroundDecel,
		StompBounce: cfg.Physics.StompBounce,
		DeathLaunch: cfg.Physics.DeathLaunch,

		EnemySpeed:    enemySpeed,
		ItemSpeed:     cfg.Enemies.ItemSpeed,
		FireballSpeed: fireballSpeed,
		FireballAmp:   cfg.Enemies.FireballAmp,
		BossSpeed:     bossSpeed,
		BossHealth:    cfg.Enemies.BossHealth,
		BossFireTicks: cfg.Enemies.BossFireTicks,
		BossEnrage:    cfg.Enemies.BossEnrage,
		SpawnerTicks:  cfg.Enemies.SpawnerTicks,

		InvulnTicks:     cfg.Gameplay.InvulnTicks,
		BossInvulnTicks: cfg.Gameplay.BossInvulnTicks,
		IntroTicks:      cfg.Gameplay.IntroTicks,
		DeadWaitTicks:   cfg.Gameplay.DeadWaitTicks,
		ClearTicks:      cfg.Gameplay.ClearTicks,

		StompScore:   cfg.Scoring.Stomp,
		CoinScore:    cfg.Scoring.Coin,
		ItemScore:    cfg.Scoring.Item,
		BossScore:    cfg.Scoring.Boss,
		FlagBonusMin: cfg.Scoring.FlagBonusMin,
		FlagBonusMax: cfg.Scoring.FlagBonusMax,
		TimeBonus:    cfg.Scoring.TimeBonus,

		StartLives: cfg.Gameplay.Lives,
		DeadZone:   cfg.Gameplay.DeadZone,
	}
}

// applyDifficulty shrinks the level clock as difficulty rises.
func (g *Game) applyDifficulty(data *core.LevelData, score, ticks int) {
	data.Level.TimeLimit = g.difficulty.TimeLimit(data.Level.TimeLimit, score, ticks)
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.screenTooSmall || g.sim == nil {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.sim.Mode.Terminal() {
		g.Reset(g.runtime)
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.sim.TogglePause()
	}

	g.latchMovement(in)

	g.sim.Step(core.Input{
		Left:  g.heldLeft,
		Right: g.heldRight,
		Jump:  in.Has(platformcore.ActionJump) || in.Has(platformcore.ActionUp),
		Run:   g.running,
	})

	if g.sim.AwaitingAdvance() {
		g.advance()
	}

	return platformcore.StepResult{State: g.State()}
}

// latchMovement converts discrete key presses into held state.
func (g *Game) latchMovement(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionLeft) {
		g.heldLeft = true
		g.heldRight = false
	}
	if in.Has(platformcore.ActionRight) {
		g.heldLeft = false
		g.heldRight = true
	}
	if in.Has(platformcore.ActionDown) || in.Has(platformcore.ActionDuck) {
		g.heldLeft = false
		g.heldRight = false
	}
	if in.Has(platformcore.ActionRun) {
		g.running = !g.running
	}
}

// advance moves the run to the next level once the clear pause ends.
func (g *Game) advance() {
	next := g.sim.LevelIndex + 1

	if g.mode == ModeCampaign {
		if next >= g.levelCount() {
			g.sim.FinishRun()
			return
		}
	} else if next%g.levelCount() == 0 {
		g.cycle++
	}

	data, err := g.levelData(next)
	if err != nil {
		g.sim.FinishRun()
		return
	}

	score := g.sim.Score
	ticks := int(g.sim.Tick)
	g.applyDifficulty(data, score, ticks)
	g.sim.AdvanceLevel(data, g.simConfig(score, ticks))
}

// restoreFrom replaces the current run with a decoded save.
func (g *Game) restoreFrom(data []byte) error {
	snap, err := core.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	// Tuning is re-derived from the snapshot's own score and tick; the
	// snapshot carries world state, not config.
	g.cycle = 0
	if g.mode == ModeEndless && g.levelCount() > 0 {
		g.cycle = snap.LevelIndex / g.levelCount()
	}
	sim, err := core.Load(snap, g.simConfig(snap.Score, int(snap.Tick)))
	if err != nil {
		return err
	}
	g.sim = sim
	return nil
}

// SaveData encodes the current run for persistence. Finished runs have
// nothing worth resuming, so they return nil data.
func (g *Game) SaveData() ([]byte, error) {
	if g.sim == nil || g.sim.Mode.Terminal() {
		return nil, nil
	}
	return core.Save(g.sim).Encode()
}

// RestoreData replaces the current run with a previously saved one.
// Reset must have been called first so config is loaded.
func (g *Game) RestoreData(data []byte) error {
	return g.restoreFrom(data)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.sim.Score,
		GameOver: g.sim.Mode.Terminal(),
		Paused:   g.sim.Mode == core.ModePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
	registry.Register("platformer_endless", func() registry.Game {
		return NewEndless()
	})
}
