package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(18, 40))
	for _, name := range []FontName{HUD, Title, Small} {
		assert.NotNil(t, name.Get(), string(name))
	}
	assert.Greater(t, Title.Get().Metrics().Height, HUD.Get().Metrics().Height)
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}

func TestLoadInvalidFont(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 12))
}
