package core

import "math"

// Movement is resolved one axis at a time, horizontal first, and each axis
// probes only the destination cells, not the travel path. An entity moving
// more than a tile per tick can therefore clip a corner or pass a one-tile
// wall outright. That is an accepted trade: probes stay branch-free and
// cheap, and the shipped tunables keep every speed well under a tile per
// tick. Faster configs are out of contract.

// edgeInset pulls probe points just inside the box so an edge resting
// exactly on a tile boundary does not read the neighboring cell.
const edgeInset = 1e-6

// tileSpan returns the first and last tile indexes covered by the interval
// [lo, lo+size).
func tileSpan(lo, size float64) (int, int) {
	return int(math.Floor(lo + edgeInset)), int(math.Floor(lo + size - edgeInset))
}

// moveHorizontal resolves horizontal movement for a box at (x, y) moving by
// dx. The leading edge is probed across the box's full vertical extent;
// any solid cell refuses the whole move. There is no partial slide.
func moveHorizontal(lv *Level, x, y, w, h, dx float64) (nx float64, blocked bool) {
	if dx == 0 {
		return x, false
	}
	nx = x + dx
	var edgeX float64
	if dx > 0 {
		edgeX = nx + w - edgeInset
	} else {
		edgeX = nx
	}
	tx := int(math.Floor(edgeX))
	ty0, ty1 := tileSpan(y, h)
	for ty := ty0; ty <= ty1; ty++ {
		if lv.SolidAt(tx, ty) {
			return x, true
		}
	}
	return nx, false
}

// moveVertical resolves vertical movement for a box at (x, y) moving by dy.
// Falling probes the foot row and snaps the box onto the tile top; rising
// probes the head row, snaps the box under it, and reports the bumped
// cells. fallThrough opens the space below the bottom row so movers can
// drop out of the level; pit deaths depend on it, so every mover passes
// true and the sealed-floor reading of the boundary applies only to the
// sides and top.
func moveVertical(lv *Level, x, y, w, h, dy float64, fallThrough bool) (ny, nvy float64, grounded bool, bumps []TilePos) {
	ny = y + dy
	tx0, tx1 := tileSpan(x, w)

	if dy >= 0 {
		ty := int(math.Floor(ny + h))
		for tx := tx0; tx <= tx1; tx++ {
			solid := lv.SolidAt(tx, ty)
			if fallThrough && ty >= lv.Height {
				solid = false
			}
			if solid {
				return float64(ty) - h, 0, true, nil
			}
		}
		return ny, dy, false, nil
	}

	ty := int(math.Floor(ny))
	for tx := tx0; tx <= tx1; tx++ {
		if lv.SolidAt(tx, ty) {
			bumps = append(bumps, TilePos{X: tx, Y: ty})
		}
	}
	if len(bumps) > 0 {
		return float64(ty + 1), 0, false, bumps
	}
	return ny, dy, false, nil
}

// overlappedTiles calls fn for every grid cell the box covers. Cells
// outside the grid are skipped; the boundary policy only matters for
// solidity, and interactions never fire out of bounds.
func overlappedTiles(lv *Level, b Box, fn func(tx, ty int, t Tile) bool) {
	tx0, tx1 := tileSpan(b.X, b.W)
	ty0, ty1 := tileSpan(b.Y, b.H)
	for ty := ty0; ty <= ty1; ty++ {
		if ty < 0 || ty >= lv.Height {
			continue
		}
		for tx := tx0; tx <= tx1; tx++ {
			if tx < 0 || tx >= lv.Width {
				continue
			}
			if !fn(tx, ty, lv.Grid[ty][tx]) {
				return
			}
		}
	}
}
