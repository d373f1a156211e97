package core

import "fmt"

// Mode is the state machine position that gates what a tick does.
type Mode string

const (
	ModeIntro    Mode = "level_intro"
	ModePlaying  Mode = "playing"
	ModePaused   Mode = "paused"
	ModeDead     Mode = "dead"
	ModeClear    Mode = "level_clear"
	ModeGameOver Mode = "game_over"
	ModeVictory  Mode = "victory"
)

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeIntro, ModePlaying, ModePaused, ModeDead, ModeClear, ModeGameOver, ModeVictory:
		return true
	}
	return false
}

// Terminal reports whether the mode accepts no further play. Both ends of
// a run, lost and won, only leave via an external restart.
func (m Mode) Terminal() bool {
	return m == ModeGameOver || m == ModeVictory
}

// Input is the control snapshot for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
	Run   bool
}

// deathFallMargin is how far below the level the dying player falls before
// the sequence resolves into a respawn or game over.
const deathFallMargin = 4.0

// State is the aggregate root: it owns the level grid and every entity
// collection outright. Components mutate them only through the resolver
// and the interaction rules, so no second reference can drift from the
// canonical world.
type State struct {
	Level     *Level
	Player    Player
	Enemies   []Enemy
	Items     []Item
	Fireballs []Fireball
	Spawners  []Spawner
	Boss      *Boss
	Particles []Particle

	Camera     float64
	Score      int
	Coins      int
	Lives      int
	TimeLeft   int // ticks
	LevelIndex int
	Mode       Mode
	Spawn      Vec
	Tick       uint64
	Cue        string

	cfg        Config
	rng        *RNG
	modeTimer  Countdown
	prevBottom float64
	bumps      []TilePos
}

// New creates a fresh run on the given level. The level data is cloned,
// never aliased, so the caller's copy stays pristine.
func New(data *LevelData, cfg Config, levelIndex int, seed int64) *State {
	s := &State{
		cfg:        cfg,
		rng:        NewRNG(seed),
		Lives:      cfg.StartLives,
		LevelIndex: levelIndex,
	}
	s.buildLevel(data)
	s.setMode(ModeIntro)
	return s
}

// Config returns the tunables the state runs under.
func (s *State) Config() Config {
	return s.cfg
}

// buildLevel installs a private copy of the level and populates entities
// from its scanned markers. Carried fields (score, coins, lives, player
// size) are untouched; everything level-local is rebuilt.
func (s *State) buildLevel(data *LevelData) {
	s.Level = data.Level.Clone()
	s.Spawn = data.Spawn

	s.Enemies = make([]Enemy, 0, len(data.Enemies))
	for _, pos := range data.Enemies {
		s.Enemies = append(s.Enemies, Enemy{X: pos.X, Y: pos.Y, VX: -s.cfg.EnemySpeed, Alive: true})
	}
	s.Items = nil
	s.Fireballs = nil
	s.Particles = nil
	s.Spawners = make([]Spawner, 0, len(data.Spawners))
	for _, spec := range data.Spawners {
		s.Spawners = append(s.Spawners, Spawner{
			X:        spec.Pos.X,
			Y:        spec.Pos.Y,
			Dir:      spec.Dir,
			Pattern:  spec.Pattern,
			Interval: s.cfg.SpawnerTicks,
			Timer:    NewCountdown(s.cfg.SpawnerTicks),
		})
	}
	s.Boss = nil
	if data.Boss != nil {
		s.Boss = &Boss{
			X:            data.Boss.X,
			Y:            data.Boss.Y,
			VX:           -s.cfg.BossSpeed,
			Alive:        true,
			Health:       s.cfg.BossHealth,
			MaxHealth:    s.cfg.BossHealth,
			FireInterval: s.cfg.BossFireTicks,
			FireTimer:    NewCountdown(s.cfg.BossFireTicks),
		}
	}

	p := &s.Player
	p.X = s.Spawn.X
	// Feet on the spawn row regardless of size, so a big player carried
	// over from the previous level does not start buried.
	p.Y = s.Spawn.Y + 1 - p.Height()
	p.VX, p.VY = 0, 0
	p.Facing = FacingRight
	p.OnGround = false
	p.Invuln = Countdown{}

	s.TimeLeft = s.Level.TimeLimit * s.cfg.TickRate
	s.bumps = nil
	s.centerCamera()
}

// Step advances the simulation one tick under the given input. The mode
// gates what runs: only playing moves the world; paused and the terminal
// modes freeze everything, including the tick counter.
func (s *State) Step(in Input) {
	switch s.Mode {
	case ModePaused, ModeGameOver, ModeVictory:
		return
	}
	s.Tick++

	switch s.Mode {
	case ModeIntro:
		if s.modeTimer.Tick() {
			s.setMode(ModePlaying)
		}
	case ModePlaying:
		s.stepPlaying(in)
	case ModeDead:
		s.stepDead()
	case ModeClear:
		// Celebration burns down, then the state holds for the host to
		// advance the level or finish the run.
		s.modeTimer.Tick()
	}
}

func (s *State) stepPlaying(in Input) {
	s.bumps = s.bumps[:0]
	s.stepPlayer(in)
	s.stepEnemies()
	s.stepItems()
	s.stepFireballs()
	s.stepBoss()
	s.stepSpawners()
	s.stepParticles()
	s.runInteractions()
	s.compactTransient()
	s.updateCamera()
	s.tickClock()
}

// tickClock burns the level timer; reaching zero is a forced death. A
// level with no time limit never starts the clock.
func (s *State) tickClock() {
	if s.Mode != ModePlaying || s.TimeLeft <= 0 {
		return
	}
	s.TimeLeft--
	if s.TimeLeft == 0 {
		s.damagePlayer(damageFall)
	}
}

// stepDead plays the scripted death: a frozen beat, one upward hop, then
// an uninterrupted fall out of the level, resolving into a respawn or the
// end of the run.
func (s *State) stepDead() {
	p := &s.Player
	if s.modeTimer.Active() {
		if s.modeTimer.Tick() {
			p.VY = s.cfg.DeathLaunch
		}
		return
	}
	// Ballistic fall, no collision: the world is already out of reach.
	p.VY += s.cfg.Gravity
	p.Y += p.VY
	if p.Y > float64(s.Level.Height)+deathFallMargin {
		if s.Lives <= 0 {
			s.setMode(ModeGameOver)
			return
		}
		s.respawn()
	}
}

// respawn returns the player to the stored spawn point with fresh
// invulnerability. The level keeps its mutations: spent blocks and
// collected coins do not come back, and dead enemies stay dead.
func (s *State) respawn() {
	p := &s.Player
	p.X = s.Spawn.X
	p.Y = s.Spawn.Y + 1 - p.Height()
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.Invuln = NewCountdown(s.cfg.InvulnTicks)
	s.centerCamera()
	s.setMode(ModePlaying)
}

func (s *State) startDeath() {
	if s.Mode == ModeDead {
		return
	}
	s.setMode(ModeDead)
}

// setMode switches modes and arms the timer and cue belonging to the new
// mode. Entering dead costs a life immediately and zeroes the player's
// velocity for the frozen beat of the sequence.
func (s *State) setMode(m Mode) {
	s.Mode = m
	s.Cue = cueForMode(m, s.LevelIndex)
	switch m {
	case ModeIntro:
		s.modeTimer = NewCountdown(s.cfg.IntroTicks)
	case ModeDead:
		if s.Lives > 0 {
			s.Lives--
		}
		s.Player.VX = 0
		s.Player.VY = 0
		s.modeTimer = NewCountdown(s.cfg.DeadWaitTicks)
	case ModeClear:
		s.modeTimer = NewCountdown(s.cfg.ClearTicks)
	}
}

// TogglePause flips between playing and paused. The pair is the machine's
// only bidirectional edge; every other mode ignores the request.
func (s *State) TogglePause() {
	switch s.Mode {
	case ModePlaying:
		s.setMode(ModePaused)
	case ModePaused:
		s.setMode(ModePlaying)
	}
}

// AwaitingAdvance reports whether the level-clear celebration has finished
// and the state is holding for the host to supply the next level or end
// the run.
func (s *State) AwaitingAdvance() bool {
	return s.Mode == ModeClear && s.modeTimer.Expired()
}

// AdvanceLevel rebuilds the world for the next level, carrying score,
// coins, lives, and player size across. The config is re-supplied so hosts
// can rescale tunables between levels. No-op unless awaiting advance.
func (s *State) AdvanceLevel(data *LevelData, cfg Config) {
	if !s.AwaitingAdvance() {
		return
	}
	s.cfg = cfg
	s.LevelIndex++
	s.buildLevel(data)
	s.setMode(ModeIntro)
}

// FinishRun ends a cleared run in victory when no level remains. No-op
// unless awaiting advance.
func (s *State) FinishRun() {
	if !s.AwaitingAdvance() {
		return
	}
	s.setMode(ModeVictory)
}

// addScore adds points. Score never drops below zero.
func (s *State) addScore(points int) {
	s.Score += points
	if s.Score < 0 {
		s.Score = 0
	}
}

// TimeSeconds converts the remaining tick budget to whole seconds.
func (s *State) TimeSeconds() int {
	if s.cfg.TickRate <= 0 {
		return 0
	}
	return s.TimeLeft / s.cfg.TickRate
}

// cueForMode derives the transient banner text for a mode. Snapshots do
// not store the cue; restores call this again.
func cueForMode(m Mode, levelIndex int) string {
	switch m {
	case ModeIntro:
		return fmt.Sprintf("LEVEL %d", levelIndex+1)
	case ModePaused:
		return "PAUSED"
	case ModeDead:
		return "OUCH!"
	case ModeClear:
		return "LEVEL CLEAR!"
	case ModeGameOver:
		return "GAME OVER"
	case ModeVictory:
		return "YOU WIN!"
	}
	return ""
}
