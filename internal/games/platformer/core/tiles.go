// Package core implements the platformer simulation: a deterministic,
// fixed-timestep world of axis-aligned entities moving over a tile grid.
// The package performs no I/O and holds no goroutines; a host drives it by
// calling Step once per tick and reads results through View and Snapshot.
package core

// Tile identifies one kind of grid cell. The zero value is empty air.
type Tile int

const (
	TileEmpty Tile = iota
	TileGround
	TileBrick
	TileQuestion // solid until head-bumped, then becomes TileUsed
	TileUsed
	TilePipe
	TilePipeTop
	TileFlagPole
	TileFlagTop
	TileSpike
	TileLiquid
	TileCoin
	TileDecor
	tileCount
)

// tileTraits classifies every tile kind once, so collision and interaction
// code looks traits up instead of comparing kinds inline.
// Indexed by Tile; keep in sync with the constant block above.
var tileTraits = [tileCount]struct {
	solid  bool
	hazard bool
	goal   bool
}{
	TileEmpty:    {},
	TileGround:   {solid: true},
	TileBrick:    {solid: true},
	TileQuestion: {solid: true},
	TileUsed:     {solid: true},
	TilePipe:     {solid: true},
	TilePipeTop:  {solid: true},
	TileFlagPole: {goal: true},
	TileFlagTop:  {goal: true},
	TileSpike:    {hazard: true},
	TileLiquid:   {hazard: true},
	TileCoin:     {},
	TileDecor:    {},
}

// Valid reports whether t is one of the defined tile kinds.
func (t Tile) Valid() bool {
	return t >= TileEmpty && t < tileCount
}

// Solid reports whether entities collide with this tile.
func (t Tile) Solid() bool {
	if !t.Valid() {
		return false
	}
	return tileTraits[t].solid
}

// Hazard reports whether touching this tile damages the player.
func (t Tile) Hazard() bool {
	if !t.Valid() {
		return false
	}
	return tileTraits[t].hazard
}

// Goal reports whether this tile is part of the level's end flag.
func (t Tile) Goal() bool {
	if !t.Valid() {
		return false
	}
	return tileTraits[t].goal
}

// Level is a rectangular tile grid plus its metadata. The grid mutates
// during play (coins collected, question blocks used), so a State always
// owns a private copy.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	TimeLimit int // seconds granted on entry
	Grid      [][]Tile
}

// TileAt returns the tile at grid coordinates.
// Outside the grid everything reads as empty; solidity of the outside is a
// separate policy handled by SolidAt.
func (l *Level) TileAt(tx, ty int) Tile {
	if tx < 0 || tx >= l.Width || ty < 0 || ty >= l.Height {
		return TileEmpty
	}
	return l.Grid[ty][tx]
}

// SolidAt reports whether the cell blocks movement. Cells outside the grid
// are solid, which walls off the level edges without authoring borders.
func (l *Level) SolidAt(tx, ty int) bool {
	if tx < 0 || tx >= l.Width || ty < 0 || ty >= l.Height {
		return true
	}
	return l.Grid[ty][tx].Solid()
}

// SetTile replaces the tile at grid coordinates.
// Out-of-bounds coordinates are silently ignored.
func (l *Level) SetTile(tx, ty int, t Tile) {
	if tx < 0 || tx >= l.Width || ty < 0 || ty >= l.Height {
		return
	}
	l.Grid[ty][tx] = t
}

// Clone returns a deep copy of the level.
func (l *Level) Clone() *Level {
	grid := make([][]Tile, l.Height)
	for y := range grid {
		grid[y] = make([]Tile, l.Width)
		copy(grid[y], l.Grid[y])
	}
	return &Level{
		ID:        l.ID,
		Name:      l.Name,
		Width:     l.Width,
		Height:    l.Height,
		TimeLimit: l.TimeLimit,
		Grid:      grid,
	}
}

// Vec is a point in world units. One unit spans exactly one tile.
type Vec struct {
	X float64
	Y float64
}

// TilePos addresses a single grid cell.
type TilePos struct {
	X int
	Y int
}

// SpawnerSpec describes a fireball spawner scanned out of a level map.
type SpawnerSpec struct {
	Pos     Vec
	Dir     Facing
	Pattern FireballPattern
}

// LevelData is a parsed level: the grid plus everything scanned out of it
// at load time. Spawn markers never survive into the grid itself.
type LevelData struct {
	Level    *Level
	Spawn    Vec
	Enemies  []Vec
	Spawners []SpawnerSpec
	Boss     *Vec
}

// Clone returns a deep copy of the level data.
func (d *LevelData) Clone() *LevelData {
	c := &LevelData{
		Level: d.Level.Clone(),
		Spawn: d.Spawn,
	}
	c.Enemies = append(c.Enemies, d.Enemies...)
	c.Spawners = append(c.Spawners, d.Spawners...)
	if d.Boss != nil {
		b := *d.Boss
		c.Boss = &b
	}
	return c
}
