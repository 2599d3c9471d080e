// Package assets embeds the level maps and loads them by index.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/automoto/nightfall/shared/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// LevelsDir is the directory holding level files, both in the embedded
// filesystem and in a directory passed with --levels.
const LevelsDir = "levels"

// levelExtensions lists the formats tried for each index, in order.
var levelExtensions = []string{".tmx", ".txt"}

// Embedded returns the filesystem holding the built-in levels.
func Embedded() fs.FS {
	return levelFS
}

// LevelSource loads level maps named by index ("levels/0.tmx" or
// "levels/0.txt") from a filesystem.
type LevelSource struct {
	fsys fs.FS
	dir  string
}

// NewLevelSource reads levels from dir within fsys.
func NewLevelSource(fsys fs.FS, dir string) *LevelSource {
	if dir == "" {
		dir = LevelsDir
	}
	return &LevelSource{fsys: fsys, dir: dir}
}

// Load returns the parsed map for index. A Tiled map wins over a text map
// with the same number.
func (s *LevelSource) Load(index int) (*leveldata.Map, error) {
	name, err := s.Path(index)
	if err != nil {
		return nil, err
	}
	return leveldata.LoadFile(s.fsys, name)
}

// Path returns the file that Load would read for index.
func (s *LevelSource) Path(index int) (string, error) {
	stem := strconv.Itoa(index)
	for _, ext := range levelExtensions {
		name := path.Join(s.dir, stem+ext)
		_, err := fs.Stat(s.fsys, name)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat level %s: %w", name, err)
		}
	}
	return "", fmt.Errorf("level %d: no %s/%s.tmx or %s.txt: %w", index, s.dir, stem, stem, fs.ErrNotExist)
}

// LoadAll parses every level file in the source, stopping at the first
// failure.
func (s *LevelSource) LoadAll() (map[string]*leveldata.Map, []string, error) {
	return leveldata.LoadAllLevels(s.fsys, s.dir)
}
