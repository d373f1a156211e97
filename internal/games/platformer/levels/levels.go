// Package levels parses tile-code maps and ships the built-in campaign.
// This package depends on core but core does not depend on levels.
package levels

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// tileCodes maps map characters to tile kinds. Spawn markers are not in
// this table; they are scanned separately and never reach the grid.
var tileCodes = map[rune]core.Tile{
	' ': core.TileEmpty,
	'#': core.TileGround,
	'B': core.TileBrick,
	'?': core.TileQuestion,
	'U': core.TileUsed,
	'|': core.TilePipe,
	'T': core.TilePipeTop,
	'F': core.TileFlagPole,
	'G': core.TileFlagTop,
	'^': core.TileSpike,
	'~': core.TileLiquid,
	'o': core.TileCoin,
	'.': core.TileDecor,
}

// Spawn marker characters. Each is replaced with empty air in the grid.
const (
	markPlayer        = 'P'
	markEnemy         = 'E'
	markWaveSpawner   = 'W'
	markLinearSpawner = 'S'
	markBoss          = 'X'
)

// ParseLevel builds a level from rows of single-character tile codes.
// The rows must be rectangular and non-empty, contain exactly one player
// marker, and use only known characters; anything else is a
// ValidationError. Entity markers are collected into the returned
// LevelData and their cells read as empty air.
func ParseLevel(id, name string, rows []string, timeLimit int) (*core.LevelData, error) {
	if len(rows) == 0 {
		return nil, ValidationError{Code: "EMPTY_LEVEL", Message: "level has no rows"}
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, ValidationError{Code: "EMPTY_LEVEL", Message: "level rows are empty"}
	}
	height := len(rows)

	lv := &core.Level{
		ID:        id,
		Name:      name,
		Width:     width,
		Height:    height,
		TimeLimit: timeLimit,
		Grid:      make([][]core.Tile, height),
	}
	data := &core.LevelData{Level: lv}
	spawns := 0

	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != width {
			return nil, ValidationError{
				Code:    "RAGGED_ROWS",
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(cells), width),
			}
		}
		lv.Grid[y] = make([]core.Tile, width)
		for x, ch := range cells {
			if t, ok := tileCodes[ch]; ok {
				lv.Grid[y][x] = t
				continue
			}
			switch ch {
			case markPlayer:
				spawns++
				data.Spawn = core.Vec{X: float64(x), Y: float64(y)}
			case markEnemy:
				data.Enemies = append(data.Enemies, core.Vec{X: float64(x), Y: float64(y)})
			case markWaveSpawner:
				data.Spawners = append(data.Spawners, core.SpawnerSpec{
					Pos:     core.Vec{X: float64(x), Y: float64(y)},
					Dir:     core.FacingLeft,
					Pattern: core.PatternWave,
				})
			case markLinearSpawner:
				data.Spawners = append(data.Spawners, core.SpawnerSpec{
					Pos:     core.Vec{X: float64(x), Y: float64(y)},
					Dir:     core.FacingLeft,
					Pattern: core.PatternLinear,
				})
			case markBoss:
				// The marker names the boss's bottom-left tile; the
				// 2x2 body extends one tile up from it.
				data.Boss = &core.Vec{X: float64(x), Y: float64(y) - 1}
			default:
				return nil, ValidationError{
					Code:    "BAD_TILE",
					Message: fmt.Sprintf("unknown tile %q at %d,%d", ch, x, y),
				}
			}
			// Marker cells become air.
			lv.Grid[y][x] = core.TileEmpty
		}
	}

	if spawns == 0 {
		return nil, ValidationError{Code: "NO_SPAWN", Message: "level has no player spawn marker"}
	}
	if spawns > 1 {
		return nil, ValidationError{
			Code:    "MULTIPLE_SPAWNS",
			Message: fmt.Sprintf("level has %d player spawn markers, want 1", spawns),
		}
	}
	return data, nil
}
