package core

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
)

// SnapshotVersion tags the wire format. Decoders refuse anything else
// outright; there is no partial compatibility.
const SnapshotVersion = 1

// round3 rounds to three decimals, the declared precision of fractional
// snapshot fields.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// PlayerSnap is the player's serialized form. The on-ground flag is
// deliberately absent; it is re-derived from geometry on restore.
type PlayerSnap struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Facing int     `json:"facing"`
	Size   int     `json:"size"`
	Invuln int     `json:"invuln"`
}

type EnemySnap struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Alive bool    `json:"alive"`
}

type ItemSnap struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type FireballSnap struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	VX      float64 `json:"vx"`
	BaseY   float64 `json:"base_y"`
	Pattern int     `json:"pattern"`
}

type SpawnerSnap struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Dir      int     `json:"dir"`
	Pattern  int     `json:"pattern"`
	Interval int     `json:"interval"`
	Timer    int     `json:"timer"`
}

type BossSnap struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	VX           float64 `json:"vx"`
	VY           float64 `json:"vy"`
	Alive        bool    `json:"alive"`
	Health       int     `json:"health"`
	MaxHealth    int     `json:"max_health"`
	Invuln       int     `json:"invuln"`
	FireInterval int     `json:"fire_interval"`
	FireCooldown int     `json:"fire_cooldown"`
}

// Snapshot is the complete serializable simulation state: the mutated
// grid, the entity collections, progress counters, and the RNG state.
// Camera, particles, the cue banner, and phase timers are presentation or
// re-derivable and are not stored.
type Snapshot struct {
	Version    int            `json:"version"`
	Tick       uint64         `json:"tick"`
	Mode       Mode           `json:"mode"`
	LevelID    string         `json:"level_id"`
	LevelName  string         `json:"level_name"`
	LevelIndex int            `json:"level_index"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	TimeLimit  int            `json:"time_limit"`
	Grid       [][]int        `json:"grid"`
	Score      int            `json:"score"`
	Coins      int            `json:"coins"`
	Lives      int            `json:"lives"`
	TimeLeft   int            `json:"time_left"`
	SpawnX     float64        `json:"spawn_x"`
	SpawnY     float64        `json:"spawn_y"`
	RNGState   uint64         `json:"rng_state"`
	Player     PlayerSnap     `json:"player"`
	Enemies    []EnemySnap    `json:"enemies"`
	Items      []ItemSnap     `json:"items"`
	Fireballs  []FireballSnap `json:"fireballs"`
	Spawners   []SpawnerSnap  `json:"spawners"`
	Boss       *BossSnap      `json:"boss,omitempty"`
}

// Save captures the full simulation state with fractional fields rounded
// to three decimals. Dead enemies keep their slots; dead items and
// fireballs are dropped.
func Save(s *State) *Snapshot {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		Tick:       s.Tick,
		Mode:       s.Mode,
		LevelID:    s.Level.ID,
		LevelName:  s.Level.Name,
		LevelIndex: s.LevelIndex,
		Width:      s.Level.Width,
		Height:     s.Level.Height,
		TimeLimit:  s.Level.TimeLimit,
		Score:      s.Score,
		Coins:      s.Coins,
		Lives:      s.Lives,
		TimeLeft:   s.TimeLeft,
		SpawnX:     round3(s.Spawn.X),
		SpawnY:     round3(s.Spawn.Y),
		RNGState:   s.rng.State(),
	}

	snap.Grid = make([][]int, s.Level.Height)
	for y := 0; y < s.Level.Height; y++ {
		row := make([]int, s.Level.Width)
		for x := 0; x < s.Level.Width; x++ {
			row[x] = int(s.Level.Grid[y][x])
		}
		snap.Grid[y] = row
	}

	p := &s.Player
	snap.Player = PlayerSnap{
		X:      round3(p.X),
		Y:      round3(p.Y),
		VX:     round3(p.VX),
		VY:     round3(p.VY),
		Facing: int(p.Facing),
		Size:   int(p.Size),
		Invuln: p.Invuln.Remaining,
	}

	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemySnap{
			X: round3(e.X), Y: round3(e.Y), VX: round3(e.VX), VY: round3(e.VY), Alive: e.Alive,
		})
	}
	for _, it := range s.Items {
		if !it.Alive {
			continue
		}
		snap.Items = append(snap.Items, ItemSnap{
			X: round3(it.X), Y: round3(it.Y), VX: round3(it.VX), VY: round3(it.VY),
		})
	}
	for _, f := range s.Fireballs {
		if !f.Alive {
			continue
		}
		snap.Fireballs = append(snap.Fireballs, FireballSnap{
			X: round3(f.X), Y: round3(f.Y), VX: round3(f.VX), BaseY: round3(f.BaseY), Pattern: int(f.Pattern),
		})
	}
	for _, sp := range s.Spawners {
		snap.Spawners = append(snap.Spawners, SpawnerSnap{
			X: round3(sp.X), Y: round3(sp.Y), Dir: int(sp.Dir), Pattern: int(sp.Pattern),
			Interval: sp.Interval, Timer: sp.Timer.Remaining,
		})
	}
	if b := s.Boss; b != nil {
		snap.Boss = &BossSnap{
			X: round3(b.X), Y: round3(b.Y), VX: round3(b.VX), VY: round3(b.VY),
			Alive: b.Alive, Health: b.Health, MaxHealth: b.MaxHealth,
			Invuln: b.Invuln.Remaining, FireInterval: b.FireInterval, FireCooldown: b.FireTimer.Remaining,
		}
	}
	return snap
}

// Load rebuilds a state from a snapshot under the supplied config.
// Validation is strict: an unknown version, mode, or malformed grid is an
// error, never a partial state. On-ground flags are re-derived from the
// restored geometry, the cue from the restored mode; phase timers restart
// from the top.
func Load(snap *Snapshot, cfg Config) (*State, error) {
	if snap == nil {
		return nil, fmt.Errorf("platformer: nil snapshot")
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("platformer: unsupported snapshot version %d", snap.Version)
	}
	if !snap.Mode.Valid() {
		return nil, fmt.Errorf("platformer: unknown mode %q", snap.Mode)
	}
	if snap.Player.Size != int(SizeSmall) && snap.Player.Size != int(SizeBig) {
		return nil, fmt.Errorf("platformer: unknown player size %d", snap.Player.Size)
	}
	level, err := levelFromSnapshot(snap)
	if err != nil {
		return nil, err
	}

	s := &State{
		Level:      level,
		Score:      snap.Score,
		Coins:      snap.Coins,
		Lives:      snap.Lives,
		TimeLeft:   snap.TimeLeft,
		LevelIndex: snap.LevelIndex,
		Spawn:      Vec{X: snap.SpawnX, Y: snap.SpawnY},
		Tick:       snap.Tick,
		cfg:        cfg,
		rng:        NewRNG(1),
	}
	s.rng.Restore(snap.RNGState)

	facing := FacingRight
	if snap.Player.Facing < 0 {
		facing = FacingLeft
	}
	s.Player = Player{
		X:      snap.Player.X,
		Y:      snap.Player.Y,
		VX:     snap.Player.VX,
		VY:     snap.Player.VY,
		Facing: facing,
		Size:   PlayerSize(snap.Player.Size),
		Invuln: NewCountdown(snap.Player.Invuln),
	}

	for _, e := range snap.Enemies {
		s.Enemies = append(s.Enemies, Enemy{X: e.X, Y: e.Y, VX: e.VX, VY: e.VY, Alive: e.Alive})
	}
	for _, it := range snap.Items {
		s.Items = append(s.Items, Item{X: it.X, Y: it.Y, VX: it.VX, VY: it.VY, Alive: true})
	}
	for _, f := range snap.Fireballs {
		s.Fireballs = append(s.Fireballs, Fireball{
			X: f.X, Y: f.Y, VX: f.VX, BaseY: f.BaseY, Pattern: FireballPattern(f.Pattern), Alive: true,
		})
	}
	for _, sp := range snap.Spawners {
		dir := FacingRight
		if sp.Dir < 0 {
			dir = FacingLeft
		}
		s.Spawners = append(s.Spawners, Spawner{
			X: sp.X, Y: sp.Y, Dir: dir, Pattern: FireballPattern(sp.Pattern),
			Interval: sp.Interval, Timer: NewCountdown(sp.Timer),
		})
	}
	if b := snap.Boss; b != nil {
		s.Boss = &Boss{
			X: b.X, Y: b.Y, VX: b.VX, VY: b.VY,
			Alive: b.Alive, Health: b.Health, MaxHealth: b.MaxHealth,
			Invuln: NewCountdown(b.Invuln), FireInterval: b.FireInterval, FireTimer: NewCountdown(b.FireCooldown),
		}
	}

	s.rederiveGround()
	s.Mode = snap.Mode
	s.Cue = cueForMode(snap.Mode, s.LevelIndex)
	switch snap.Mode {
	case ModeIntro:
		s.modeTimer = NewCountdown(cfg.IntroTicks)
	case ModeDead:
		s.modeTimer = NewCountdown(cfg.DeadWaitTicks)
	case ModeClear:
		s.modeTimer = NewCountdown(cfg.ClearTicks)
	}
	s.centerCamera()
	return s, nil
}

// levelFromSnapshot validates and rebuilds the level grid.
func levelFromSnapshot(snap *Snapshot) (*Level, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("platformer: snapshot has degenerate level size %dx%d", snap.Width, snap.Height)
	}
	if len(snap.Grid) != snap.Height {
		return nil, fmt.Errorf("platformer: snapshot grid has %d rows, want %d", len(snap.Grid), snap.Height)
	}
	grid := make([][]Tile, snap.Height)
	for y, row := range snap.Grid {
		if len(row) != snap.Width {
			return nil, fmt.Errorf("platformer: snapshot grid row %d has %d cells, want %d", y, len(row), snap.Width)
		}
		grid[y] = make([]Tile, snap.Width)
		for x, v := range row {
			t := Tile(v)
			if !t.Valid() {
				return nil, fmt.Errorf("platformer: snapshot grid has unknown tile %d at %d,%d", v, x, y)
			}
			grid[y][x] = t
		}
	}
	return &Level{
		ID:        snap.LevelID,
		Name:      snap.LevelName,
		Width:     snap.Width,
		Height:    snap.Height,
		TimeLimit: snap.TimeLimit,
		Grid:      grid,
	}, nil
}

// rederiveGround recomputes on-ground flags from restored geometry: a
// mover is grounded when a solid cell sits directly under its feet.
func (s *State) rederiveGround() {
	p := &s.Player
	p.OnGround = groundUnder(s.Level, p.X, p.Y, p.Width(), p.Height())
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Alive {
			e.OnGround = groundUnder(s.Level, e.X, e.Y, 1, 1)
		}
	}
	if s.Boss != nil && s.Boss.Alive {
		s.Boss.OnGround = groundUnder(s.Level, s.Boss.X, s.Boss.Y, 2, 2)
	}
}

// groundUnder probes one hairline below the box's feet.
func groundUnder(lv *Level, x, y, w, h float64) bool {
	ty := int(math.Floor(y + h + edgeInset))
	if ty >= lv.Height {
		return false
	}
	tx0, tx1 := tileSpan(x, w)
	for tx := tx0; tx <= tx1; tx++ {
		if lv.SolidAt(tx, ty) {
			return true
		}
	}
	return false
}

// Encode serializes the snapshot as JSON.
func (sn *Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(sn)
	if err != nil {
		return nil, fmt.Errorf("platformer: encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses an encoded snapshot. Structural validation is
// Load's job; this only rejects malformed JSON.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var sn Snapshot
	if err := json.Unmarshal(data, &sn); err != nil {
		return nil, fmt.Errorf("platformer: decode snapshot: %w", err)
	}
	return &sn, nil
}

// Hash digests the encoded snapshot. Two runs agree exactly when their
// snapshot hashes agree, which makes determinism checks one comparison.
func (sn *Snapshot) Hash() (uint64, error) {
	data, err := sn.Encode()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64(), nil
}
