package core

// Facing is a horizontal direction that doubles as a velocity sign.
type Facing int

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// PlayerSize is the player's growth stage.
type PlayerSize int

const (
	SizeSmall PlayerSize = iota
	SizeBig
)

// playerHeights maps size to bounding-box height in tiles.
var playerHeights = [2]float64{
	SizeSmall: 1,
	SizeBig:   2,
}

// FireballPattern selects how a fireball moves.
type FireballPattern int

const (
	PatternLinear FireballPattern = iota
	PatternWave
)

// Box is an axis-aligned rectangle in world units, used for entity overlap
// tests. Tile collision never builds boxes; it probes the grid directly.
type Box struct {
	X, Y, W, H float64
}

// Intersects reports whether two boxes overlap with positive area.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Player is the controlled character. Position is the top-left corner of
// its bounding box; a big player extends one tile further up, so growing
// moves Y, not the feet.
type Player struct {
	X, Y     float64
	VX, VY   float64
	Facing   Facing
	OnGround bool
	Size     PlayerSize
	Invuln   Countdown
}

// Width returns the player's bounding-box width in tiles.
func (p *Player) Width() float64 { return 1 }

// Height returns the player's bounding-box height for its current size.
func (p *Player) Height() float64 { return playerHeights[p.Size] }

// Bounds returns the player's bounding box.
func (p *Player) Bounds() Box {
	return Box{X: p.X, Y: p.Y, W: p.Width(), H: p.Height()}
}

// Enemy is a walker: constant speed, turns at walls, falls with gravity.
// Dead enemies stay in the slice with Alive cleared so indexes and replay
// order never shift mid-level.
type Enemy struct {
	X, Y     float64
	VX, VY   float64
	Alive    bool
	OnGround bool
}

// Bounds returns the enemy's bounding box.
func (e *Enemy) Bounds() Box {
	return Box{X: e.X, Y: e.Y, W: 1, H: 1}
}

// Item is a power-up released from a question block. It moves under the
// same walker physics as enemies and is removed once collected or dead.
type Item struct {
	X, Y   float64
	VX, VY float64
	Alive  bool
}

// Bounds returns the item's bounding box.
func (i *Item) Bounds() Box {
	return Box{X: i.X, Y: i.Y, W: 1, H: 1}
}

// Fireball is a gravity-exempt projectile. Wave fireballs oscillate around
// BaseY with a phase keyed to X, so their path is a pure function of
// position and needs no extra clock.
type Fireball struct {
	X, Y    float64
	VX      float64
	BaseY   float64
	Pattern FireballPattern
	Alive   bool
}

// Bounds returns the fireball's bounding box.
func (f *Fireball) Bounds() Box {
	return Box{X: f.X, Y: f.Y, W: 1, H: 1}
}

// Spawner emits fireballs at a fixed interval while the camera is near.
// It never moves and never collides.
type Spawner struct {
	X, Y     float64
	Dir      Facing
	Pattern  FireballPattern
	Interval int
	Timer    Countdown
}

// Boss is a large walker with health, a firing timer, and an enrage ramp:
// every hit scales its speed up and its firing interval down.
type Boss struct {
	X, Y         float64
	VX, VY       float64
	Alive        bool
	OnGround     bool
	Health       int
	MaxHealth    int
	Invuln       Countdown
	FireInterval int
	FireTimer    Countdown
}

// Bounds returns the boss's bounding box, two tiles on each side.
func (b *Boss) Bounds() Box {
	return Box{X: b.X, Y: b.Y, W: 2, H: 2}
}

// Particle is a short-lived cosmetic effect. Particles are never
// snapshotted and never influence the simulation.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   Countdown
}
