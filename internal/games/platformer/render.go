package platformer

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '@'
	PlayerBody   = '█'
	EnemyChar    = '●'
	ItemChar     = '◆'
	FireballChar = '*'
	SpawnerChar  = '«'
	BossChar     = '▓'
	ParticleChar = '·'
	SeparatorCh  = '─'
)

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 2

// tileGlyph returns the glyph and color for a tile kind.
// Empty and unknown tiles draw nothing.
func tileGlyph(t core.Tile) (rune, platformcore.Color) {
	switch t {
	case core.TileGround:
		return '█', platformcore.ColorOrange
	case core.TileBrick:
		return '▒', platformcore.ColorRed
	case core.TileQuestion:
		return '?', platformcore.ColorBrightYellow
	case core.TileUsed:
		return '#', platformcore.ColorGray
	case core.TilePipe:
		return '║', platformcore.ColorBrightGreen
	case core.TilePipeTop:
		return '╦', platformcore.ColorBrightGreen
	case core.TileFlagPole:
		return '│', platformcore.ColorWhite
	case core.TileFlagTop:
		return '►', platformcore.ColorBrightRed
	case core.TileSpike:
		return '▲', platformcore.ColorBrightRed
	case core.TileLiquid:
		return '≈', platformcore.ColorBrightBlue
	case core.TileCoin:
		return 'o', platformcore.ColorBrightYellow
	case core.TileDecor:
		return '"', platformcore.ColorGreen
	default:
		return 0, platformcore.ColorDefault
	}
}

// layout holds the screen placement of the current frame.
type layout struct {
	cam     int // leftmost visible world column
	offsetX int // left padding when the level is narrower than the screen
	top     int // screen row of world row 0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sim == nil {
		return
	}

	v := g.sim.View()

	// The level sits on the bottom edge of the screen, sky above.
	lay := layout{
		cam: int(math.Floor(v.Camera)),
		top: dst.Height() - v.LevelHeight,
	}
	if v.LevelWidth < dst.Width() {
		lay.offsetX = (dst.Width() - v.LevelWidth) / 2
	}
	if lay.top < hudRows {
		dst.DrawTextCentered(dst.Height()/2, "Level too tall for this window")
		return
	}

	g.renderTiles(dst, v, lay)
	g.renderEntities(dst, v, lay)
	g.renderHUD(dst, v)
	g.renderOverlay(dst, v)
}

// cellX maps a world column to a screen column.
func (lay layout) cellX(wx float64) int {
	return lay.offsetX + int(math.Floor(wx)) - lay.cam
}

// cellY maps a world row to a screen row.
func (lay layout) cellY(wy float64) int {
	return lay.top + int(math.Floor(wy))
}

// renderTiles draws the visible slice of the level grid.
func (g *Game) renderTiles(dst *platformcore.Screen, v core.View, lay layout) {
	lv := g.sim.Level
	for wy := 0; wy < lv.Height; wy++ {
		sy := lay.top + wy
		for wx := lay.cam; wx < lv.Width; wx++ {
			sx := lay.offsetX + wx - lay.cam
			if sx >= dst.Width() {
				break
			}
			ch, color := tileGlyph(lv.TileAt(wx, wy))
			if ch == 0 {
				continue
			}
			dst.SetWithColor(sx, sy, ch, color)
		}
	}
}

// renderEntities draws everything that moves, player on top.
func (g *Game) renderEntities(dst *platformcore.Screen, v core.View, lay layout) {
	for _, sp := range v.Spawners {
		dst.SetWithColor(lay.cellX(sp.X), lay.cellY(sp.Y), SpawnerChar, platformcore.ColorMagenta)
	}
	for _, it := range v.Items {
		dst.SetWithColor(lay.cellX(it.X), lay.cellY(it.Y), ItemChar, platformcore.ColorBrightGreen)
	}
	for _, e := range v.Enemies {
		dst.SetWithColor(lay.cellX(e.X), lay.cellY(e.Y), EnemyChar, platformcore.ColorBrightRed)
	}
	if b := v.Boss; b != nil && !b.Flashing {
		bx, by := lay.cellX(b.X), lay.cellY(b.Y)
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				dst.SetWithColor(bx+dx, by+dy, BossChar, platformcore.ColorBrightMagenta)
			}
		}
	}
	for _, f := range v.Fireballs {
		dst.SetWithColor(lay.cellX(f.X), lay.cellY(f.Y), FireballChar, platformcore.ColorBrightYellow)
	}

	// The player flickers on invulnerability off-beats.
	if !v.Player.Blinking {
		px, py := lay.cellX(v.Player.X), lay.cellY(v.Player.Y)
		dst.SetWithColor(px, py, PlayerChar, platformcore.ColorBrightCyan)
		if v.Player.Size == core.SizeBig {
			dst.SetWithColor(px, py+1, PlayerBody, platformcore.ColorBrightCyan)
		}
	}

	for _, pt := range v.Particles {
		dst.SetWithColor(lay.cellX(pt.X), lay.cellY(pt.Y), ParticleChar, platformcore.ColorYellow)
	}
}

// renderHUD draws score, coins, lives, timer, and the level banner.
func (g *Game) renderHUD(dst *platformcore.Screen, v core.View) {
	scoreText := fmt.Sprintf("Score: %d", v.Score)
	dst.DrawText(1, 0, scoreText)

	coinsText := fmt.Sprintf("Coins: %d", v.Coins)
	dst.DrawText(1+len(scoreText)+3, 0, coinsText)

	livesText := fmt.Sprintf("Lives: %d", v.Lives)
	dst.DrawTextCentered(0, livesText)

	// Level on right, clock beside it when the level is timed
	var levelText string
	if g.mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", v.LevelIndex+1)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", v.LevelIndex+1, g.levelCount())
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
	if v.TimeSeconds > 0 {
		timeText := fmt.Sprintf("Time: %d", v.TimeSeconds)
		color := platformcore.ColorDefault
		if v.TimeSeconds <= 30 {
			color = platformcore.ColorBrightRed
		}
		dst.DrawTextWithColor(dst.Width()-len(levelText)-len(timeText)-4, 0, timeText, color)
	}

	// Separator with the level name, plus boss health while one is up
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, SeparatorCh)
	}
	dst.DrawText(2, 1, " "+v.LevelName+" ")
	if b := v.Boss; b != nil {
		health := fmt.Sprintf(" Boss: %d/%d ", b.Health, b.MaxHealth)
		dst.DrawTextWithColor(dst.Width()-len(health)-2, 1, health, platformcore.ColorBrightMagenta)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *platformcore.Screen, v core.View) {
	switch v.Mode {
	case core.ModeIntro:
		dst.DrawTextCentered(dst.Height()/2-1, v.Cue)
		dst.DrawTextCentered(dst.Height()/2+1, v.LevelName)

	case core.ModeDead:
		dst.DrawTextCentered(dst.Height()/2-1, v.Cue)

	case core.ModeClear:
		dst.DrawTextCentered(dst.Height()/2-1, v.Cue)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Score: %d", v.Score))

	case core.ModePaused:
		g.drawCenteredBox(dst, v.Cue, "Press P to resume")

	case core.ModeGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", v.Score)
		g.drawCenteredBox(dst, v.Cue, subtitle)

	case core.ModeVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", v.Score)
		g.drawCenteredBox(dst, v.Cue, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(platformcore.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(platformcore.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
