package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/automoto/nightfall/shared/gamemath"
)

// Seed for solid block variety; the same map always looks the same.
const variantSeed = 458324

// ReadText reads a text map, one row per line.
func ReadText(r io.Reader) (*Map, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseText(rows)
}

// ParseText builds a Map from equal-length rows of symbols:
//
//	.  empty          #  solid block
//	-  platform       1  player start
//	X  exit           G  gem (10 points)
//	P  power-up       A, B  enemies
func ParseText(rows []string) (*Map, error) {
	if len(rows) == 0 {
		return nil, malformed("level has no rows")
	}

	grid := make([][]rune, len(rows))
	width := len([]rune(rows[0]))
	for y, row := range rows {
		grid[y] = []rune(row)
		if len(grid[y]) != width {
			return nil, &MalformedLevelError{
				Reason: "the length of this line differs from the preceding lines",
				Line:   y,
				Column: -1,
			}
		}
	}

	m := &Map{
		Width:  width,
		Height: len(rows),
		tiles:  make([]Tile, width*len(rows)),
	}
	rng := rand.New(rand.NewSource(variantSeed))
	hasStart, hasExit := false, false

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			ch := grid[y][x]
			tile := Tile{Symbol: ch, Collision: Passable}

			switch ch {
			case '.':
			case 'X':
				if hasExit {
					return nil, &MalformedLevelError{Reason: "a level may only have one exit", Line: y, Column: x, Char: ch}
				}
				hasExit = true
				m.Exit = gamemath.Point{X: x, Y: y}
				tile.HasVisual = true
			case 'G':
				m.Pickups = append(m.Pickups, Spawn{Kind: SpawnGem, X: x, Y: y})
			case 'P':
				m.Pickups = append(m.Pickups, Spawn{Kind: SpawnPowerUp, X: x, Y: y})
			case '-':
				tile.Collision = Platform
				tile.HasVisual = true
			case 'A':
				m.Enemies = append(m.Enemies, Spawn{Kind: SpawnEnemyA, X: x, Y: y})
			case 'B':
				m.Enemies = append(m.Enemies, Spawn{Kind: SpawnEnemyB, X: x, Y: y})
			case '1':
				if hasStart {
					return nil, &MalformedLevelError{Reason: "a level may only have one starting point", Line: y, Column: x, Char: ch}
				}
				hasStart = true
				m.Start = gamemath.Point{X: x, Y: y}
			case '#':
				tile.Collision = Impassable
				tile.HasVisual = true
				tile.Variant = rng.Intn(BlockVariants)
			default:
				return nil, &MalformedLevelError{Reason: "unsupported tile type character", Line: y, Column: x, Char: ch}
			}

			m.tiles[y*m.Width+x] = tile
		}
	}

	if !hasStart {
		return nil, malformed("a level must have a starting point")
	}
	if !hasExit {
		return nil, malformed("a level must have an exit")
	}
	return m, nil
}
