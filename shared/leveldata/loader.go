package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// SymbolLayer is the TMX tile layer read by LoadTMX. Each tileset tile used
// on it carries a "symbol" string property holding one map symbol.
const SymbolLayer = "symbols"

// LoadTMX parses a Tiled map and validates it like a text map. Empty cells
// are read as '.'. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != TileWidth || levelMap.TileHeight != TileHeight {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d, want %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight, TileWidth, TileHeight)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == SymbolLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, SymbolLayer)
	}

	rows := make([]string, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		var sb strings.Builder
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				sb.WriteRune('.')
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				return nil, fmt.Errorf("load TMX %s: tile %d at %d, %d: %w", tmxPath, tile.ID, x, y, err)
			}
			symbol := tilesetTile.Properties.GetString("symbol")
			if len([]rune(symbol)) != 1 {
				return nil, fmt.Errorf("load TMX %s: tile %d has symbol %q", tmxPath, tile.ID, symbol)
			}
			sb.WriteString(symbol)
		}
		rows[y] = sb.String()
	}

	m, err := ParseText(rows)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return m, nil
}

// LoadFile loads a .txt or .tmx map from fsys.
func LoadFile(fsys fs.FS, name string) (*Map, error) {
	switch path.Ext(name) {
	case ".tmx":
		return LoadTMX(fsys, name)
	case ".txt":
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open level %s: %w", name, err)
		}
		defer f.Close()
		m, err := ReadText(f)
		if err != nil {
			return nil, fmt.Errorf("load level %s: %w", name, err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("load level %s: unsupported extension", name)
}

// LoadAllLevels discovers all .txt and .tmx files in levelsDir within fsys and
// loads each one. It returns a map keyed by stem name plus a sorted name list.
// The first failure aborts the whole load.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Map, []string, error) {
	var matches []string
	for _, ext := range []string{"txt", "tmx"} {
		pattern := path.Join(levelsDir, "*."+ext)
		found, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	levels := make(map[string]*Map, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		m, err := LoadFile(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
		if _, dup := levels[stem]; dup {
			return nil, nil, fmt.Errorf("level %s defined twice in %s", stem, levelsDir)
		}
		levels[stem] = m
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
