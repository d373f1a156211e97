package core

// View is the read-only projection renderers consume. Positions come
// pre-rounded, dead entities are already filtered, and blink phases are
// resolved, so a renderer needs no simulation knowledge and no access to
// State internals.
type View struct {
	Mode        Mode
	Cue         string
	Score       int
	Coins       int
	Lives       int
	TimeSeconds int
	LevelIndex  int
	LevelName   string
	LevelWidth  int
	LevelHeight int
	Camera      float64
	Player      PlayerView
	Enemies     []EntityView
	Items       []EntityView
	Fireballs   []EntityView
	Spawners    []EntityView
	Boss        *BossView
	Particles   []EntityView
}

// PlayerView is the player as a renderer sees it.
type PlayerView struct {
	X, Y     float64
	VX, VY   float64
	Facing   Facing
	Size     PlayerSize
	Blinking bool // true on the off-beats of the invulnerability blink
}

// EntityView is a bare drawable position.
type EntityView struct {
	X, Y float64
}

// BossView adds the health readout and hit flash to a drawable position.
type BossView struct {
	X, Y      float64
	Health    int
	MaxHealth int
	Flashing  bool
}

// blinkPeriod paces invulnerability and boss-hit flashing, in ticks per
// half-cycle.
const blinkPeriod = 4

// View builds the presentation projection for the current tick.
func (s *State) View() View {
	offBeat := (s.Tick/blinkPeriod)%2 == 1

	v := View{
		Mode:        s.Mode,
		Cue:         s.Cue,
		Score:       s.Score,
		Coins:       s.Coins,
		Lives:       s.Lives,
		TimeSeconds: s.TimeSeconds(),
		LevelIndex:  s.LevelIndex,
		LevelName:   s.Level.Name,
		LevelWidth:  s.Level.Width,
		LevelHeight: s.Level.Height,
		Camera:      round3(s.Camera),
	}

	p := &s.Player
	v.Player = PlayerView{
		X:        round3(p.X),
		Y:        round3(p.Y),
		VX:       round3(p.VX),
		VY:       round3(p.VY),
		Facing:   p.Facing,
		Size:     p.Size,
		Blinking: p.Invuln.Active() && offBeat,
	}

	for _, e := range s.Enemies {
		if !e.Alive {
			continue
		}
		v.Enemies = append(v.Enemies, EntityView{X: round3(e.X), Y: round3(e.Y)})
	}
	for _, it := range s.Items {
		if !it.Alive {
			continue
		}
		v.Items = append(v.Items, EntityView{X: round3(it.X), Y: round3(it.Y)})
	}
	for _, f := range s.Fireballs {
		if !f.Alive {
			continue
		}
		v.Fireballs = append(v.Fireballs, EntityView{X: round3(f.X), Y: round3(f.Y)})
	}
	for _, sp := range s.Spawners {
		v.Spawners = append(v.Spawners, EntityView{X: round3(sp.X), Y: round3(sp.Y)})
	}
	if b := s.Boss; b != nil && b.Alive {
		v.Boss = &BossView{
			X:         round3(b.X),
			Y:         round3(b.Y),
			Health:    b.Health,
			MaxHealth: b.MaxHealth,
			Flashing:  b.Invuln.Active() && offBeat,
		}
	}
	for _, pt := range s.Particles {
		if pt.Life.Active() {
			v.Particles = append(v.Particles, EntityView{X: round3(pt.X), Y: round3(pt.Y)})
		}
	}
	return v
}
