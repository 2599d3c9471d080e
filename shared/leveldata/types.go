// Package leveldata parses level maps into tile grids and spawn lists.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

import "github.com/automoto/nightfall/shared/gamemath"

const (
	TileWidth  = 32
	TileHeight = 32

	// The exit door is taller than a tile; its center is the exit point.
	DoorWidth  = 32
	DoorHeight = 38

	// Number of visual variants for solid blocks.
	BlockVariants = 7
)

// TileCollision is the collision class of a tile.
type TileCollision int

const (
	Passable TileCollision = iota
	Impassable
	Platform
)

func (c TileCollision) String() string {
	switch c {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	case Platform:
		return "platform"
	}
	return "unknown"
}

// Tile is one grid cell. Variant selects a texture for solid blocks.
type Tile struct {
	Collision TileCollision
	HasVisual bool
	Symbol    rune
	Variant   int
}

// SpawnKind identifies what a map symbol spawns.
type SpawnKind int

const (
	SpawnEnemyA SpawnKind = iota
	SpawnEnemyB
	SpawnGem
	SpawnPowerUp
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnEnemyA:
		return "enemy-a"
	case SpawnEnemyB:
		return "enemy-b"
	case SpawnGem:
		return "gem"
	case SpawnPowerUp:
		return "power-up"
	}
	return "unknown"
}

// Spawn is an entity placed by the map, in tile coordinates.
type Spawn struct {
	Kind SpawnKind
	X, Y int
}

// Map is a validated level: a rectangular grid with exactly one start and
// one exit. A Map is never modified after parsing.
type Map struct {
	Width, Height int
	Start         gamemath.Point
	Exit          gamemath.Point
	Enemies       []Spawn
	Pickups       []Spawn

	tiles []Tile
}
