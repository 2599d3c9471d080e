package leveldata

import "github.com/automoto/nightfall/shared/gamemath"

// CollisionAt returns the collision class at tile (x, y). Columns outside the
// map are walls; rows outside the map are open sky above and an open pit below.
func (m *Map) CollisionAt(x, y int) TileCollision {
	if x < 0 || x >= m.Width {
		return Impassable
	}
	if y < 0 || y >= m.Height {
		return Passable
	}
	return m.tiles[y*m.Width+x].Collision
}

// TileAt returns the tile at (x, y); ok is false outside the map.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Tile{}, false
	}
	return m.tiles[y*m.Width+x], true
}

// PixelWidth and PixelHeight give the map size in pixels.
func (m *Map) PixelWidth() int  { return m.Width * TileWidth }
func (m *Map) PixelHeight() int { return m.Height * TileHeight }

// StartPosition is the bottom-center of the start tile.
func (m *Map) StartPosition() gamemath.Vec {
	return gamemath.BottomCenter(BoundsOf(m.Start.X, m.Start.Y))
}

// ExitPoint is the center of the exit door.
func (m *Map) ExitPoint() gamemath.Point {
	return DoorBounds(m.Exit.X, m.Exit.Y).Center()
}

// Rows renders the map back to its symbol rows.
func (m *Map) Rows() []string {
	rows := make([]string, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]rune, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = m.tiles[y*m.Width+x].Symbol
		}
		rows[y] = string(row)
	}
	return rows
}

// BoundsOf returns the pixel rectangle of tile (x, y).
func BoundsOf(x, y int) gamemath.Rect {
	return gamemath.Rect{X: x * TileWidth, Y: y * TileHeight, W: TileWidth, H: TileHeight}
}

// DoorBounds returns the pixel rectangle of a door anchored at tile (x, y).
func DoorBounds(x, y int) gamemath.Rect {
	return gamemath.Rect{X: x * TileWidth, Y: y * TileHeight, W: DoorWidth, H: DoorHeight}
}
