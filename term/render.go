package term

import (
	"fmt"
	"time"

	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of screen rows above the map.
const hudRows = 1

var (
	styleDefault  = tcell.StyleDefault
	styleBlock    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 110, 70))
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleExit     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleGem      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePowerUp  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	stylePowered  = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleWarning  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// tileOf converts a pixel position to the tile it falls in. Character
// positions are bottom-center, so the row above the feet is used.
func tileOf(x, y float64) (int, int) {
	return int(x) / leveldata.TileWidth, (int(y) - 1) / leveldata.TileHeight
}

// ScrollX is the first map column shown so that the player stays in view
// on maps wider than the screen.
func ScrollX(playerCol, mapWidth, cols int) int {
	if mapWidth <= cols {
		return 0
	}
	x := playerCol - cols/2
	return max(0, min(x, mapWidth-cols))
}

// Draw renders one frame: a HUD row, then the map with one cell per tile.
func Draw(screen tcell.Screen, v level.View, banner string) {
	screen.Clear()
	cols, rows := screen.Size()

	pcol, prow := tileOf(v.Player.Position.X, v.Player.Position.Y)
	scroll := ScrollX(pcol, v.Map.Width, cols)

	put := func(x, y int, r rune, style tcell.Style) {
		sx, sy := x-scroll, y+hudRows
		if sx < 0 || sx >= cols || sy < hudRows || sy >= rows {
			return
		}
		screen.SetContent(sx, sy, r, nil, style)
	}

	for y := 0; y < v.Map.Height; y++ {
		for x := 0; x < v.Map.Width; x++ {
			tile, _ := v.Map.TileAt(x, y)
			switch tile.Collision {
			case leveldata.Impassable:
				put(x, y, '#', styleBlock)
			case leveldata.Platform:
				put(x, y, '-', stylePlatform)
			}
		}
	}

	ex, ey := v.Map.Exit.X, v.Map.Exit.Y
	put(ex, ey, 'X', styleExit)

	for _, p := range v.Pickups {
		x, y := tileOf(p.Position.X, p.Position.Y+1)
		if p.PowerUp {
			put(x, y, 'P', stylePowerUp)
		} else {
			put(x, y, '*', styleGem)
		}
	}

	for _, e := range v.Enemies {
		x, y := tileOf(e.Position.X, e.Position.Y)
		r := rune(e.SpriteSet[0])
		if !e.Alive {
			r = 'x'
		}
		put(x, y, r, styleEnemy)
	}

	playerRune, playerStyle := '@', stylePlayer
	switch {
	case !v.Player.Alive:
		playerRune = '%'
	case v.Player.PoweredUp:
		playerStyle = stylePowered
	}
	put(pcol, prow, playerRune, playerStyle)

	drawText(screen, 0, 0, HUDLine(v), styleDefault)
	if v.TimeRemaining <= cfg.Level.WarningTime && !v.ReachedExit && int(v.TimeRemaining.Seconds())%2 == 1 {
		drawText(screen, 0, 0, "TIME", styleWarning)
	}
	if banner != "" {
		drawText(screen, max(0, (cols-len(banner))/2), rows/2, banner, styleBanner)
	}
	screen.Show()
}

// HUDLine is the status row shown above the map.
func HUDLine(v level.View) string {
	remaining := v.TimeRemaining
	return fmt.Sprintf("TIME %02d:%02d  SCORE %d  LEVEL %d",
		int(remaining/time.Minute), int(remaining%time.Minute/time.Second), v.Score, v.Index+1)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
