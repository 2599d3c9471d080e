package assets

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/leveldata"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	src := NewLevelSource(Embedded(), "")

	for i := 0; i < config.Session.LevelCount; i++ {
		m, err := src.Load(i)
		require.NoError(t, err, "level %d", i)
		assert.GreaterOrEqual(t, m.Width*leveldata.TileWidth, config.Window.Width, "level %d fills the window", i)
		assert.Equal(t, config.Window.Height, m.Height*leveldata.TileHeight, "level %d", i)
		assert.NotEmpty(t, m.Pickups, "level %d", i)
	}
}

func TestEmbeddedLevelsAllValid(t *testing.T) {
	levels, names, err := NewLevelSource(Embedded(), LevelsDir).LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, names)
	assert.Len(t, levels, 5)
}

func TestTiledMapPreferred(t *testing.T) {
	tmx, err := fs.ReadFile(Embedded(), "levels/4.tmx")
	require.NoError(t, err)

	fsys := fstest.MapFS{
		"maps/0.txt": {Data: []byte("1.X\n###\n")},
		"maps/0.tmx": {Data: tmx},
		"maps/1.txt": {Data: []byte("1.X\n###\n")},
	}
	src := NewLevelSource(fsys, "maps")

	p, err := src.Path(0)
	require.NoError(t, err)
	assert.Equal(t, "maps/0.tmx", p)

	m, err := src.Load(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.X", "###"}, m.Rows())
}

func TestMissingLevel(t *testing.T) {
	src := NewLevelSource(fstest.MapFS{}, "maps")
	_, err := src.Load(3)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMalformedLevelSurfaces(t *testing.T) {
	src := NewLevelSource(fstest.MapFS{"levels/0.txt": {Data: []byte("1.X\n##\n")}}, "")
	_, err := src.Load(0)
	assert.ErrorIs(t, err, leveldata.ErrMalformedLevel)
}
