package systems

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/session"
	"github.com/automoto/nightfall/shared/leveldata"
)

type memStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

type rows [][]string

func (r rows) Load(index int) (*leveldata.Map, error) {
	return leveldata.ParseText(r[index])
}

func TestSettingsRoundTrip(t *testing.T) {
	store := &memStore{}

	loaded, err := LoadSettings(store)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), loaded)

	want := SavedSettings{VolumeIndex: 1, Muted: true, Fullscreen: true}
	require.NoError(t, SaveSettings(store, want))
	loaded, err = LoadSettings(store)
	require.NoError(t, err)
	assert.Equal(t, want, loaded)
}

func TestLoadSettingsFallsBack(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		s, err := LoadSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("garbage", func(t *testing.T) {
		store := &memStore{items: map[string][]byte{cfg.SettingsMenu.SaveKey: []byte("{nope")}}
		s, err := LoadSettings(store)
		assert.Error(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("volume out of range", func(t *testing.T) {
		store := &memStore{items: map[string][]byte{cfg.SettingsMenu.SaveKey: []byte(`{"volumeIndex":99}`)}}
		s, err := LoadSettings(store)
		require.NoError(t, err)
		assert.Equal(t, cfg.SettingsMenu.DefaultVolumeIndex, s.VolumeIndex)
	})

	t.Run("store error", func(t *testing.T) {
		s, err := LoadSettings(&memStore{loadErr: errors.New("locked")})
		assert.Error(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})
}

func TestCycleVolume(t *testing.T) {
	steps := len(cfg.SettingsMenu.VolumeSteps)
	s := components.SettingsData{VolumeIndex: steps - 1, Muted: true}

	CycleVolume(&s)
	assert.Equal(t, 0, s.VolumeIndex)
	assert.False(t, s.Muted)
	assert.Equal(t, cfg.SettingsMenu.VolumeSteps[0], EffectiveVolume(ToSaved(&s)))

	s.Muted = true
	assert.Zero(t, EffectiveVolume(ToSaved(&s)))
	assert.Equal(t, s, FromSaved(ToSaved(&s)))
}

func TestLevelInput(t *testing.T) {
	tests := []struct {
		name    string
		pressed []cfg.ActionID
		want    level.Input
	}{
		{"idle", nil, level.Input{}},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, level.Input{Move: -1}},
		{"both cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, level.Input{}},
		{"jump right", []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionJump}, level.Input{Move: 1, Jump: true}},
		{"slide", []cfg.ActionID{cfg.ActionSlide}, level.Input{Slide: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in components.InputData
			for _, a := range tt.pressed {
				in.Current[a] = true
			}
			assert.Equal(t, tt.want, LevelInput(&in))
		})
	}
}

func TestTimeText(t *testing.T) {
	assert.Equal(t, "TIME: 01:05", TimeText(65*time.Second+900*time.Millisecond))
	assert.Equal(t, "TIME: 00:00", TimeText(-time.Second))
}

func TestTimeColorBlinks(t *testing.T) {
	assert.Equal(t, cfg.HUD.TimeColor, TimeColor(cfg.Level.WarningTime+time.Second, false))
	assert.Equal(t, cfg.HUD.WarningColor, TimeColor(11*time.Second, false))
	assert.Equal(t, cfg.HUD.TimeColor, TimeColor(10*time.Second, false))
	assert.Equal(t, cfg.HUD.TimeColor, TimeColor(11*time.Second, true), "no warning once the exit is reached")
}

func TestCameraTarget(t *testing.T) {
	assert.Equal(t, 0.0, CameraTarget(100, 2000, 800))
	assert.Equal(t, 600.0, CameraTarget(1000, 2000, 800))
	assert.Equal(t, 1200.0, CameraTarget(1990, 2000, 800))
	assert.Equal(t, 0.0, CameraTarget(300, 500, 800), "narrow levels stay put")
}

func TestUpdateOverlayFades(t *testing.T) {
	var o components.OverlayData

	UpdateOverlay(&o, components.OverlayNone, 0.1)
	assert.Nil(t, o.Fade)
	assert.Zero(t, o.Alpha)

	UpdateOverlay(&o, components.OverlayLose, 0)
	require.NotNil(t, o.Fade)
	UpdateOverlay(&o, components.OverlayLose, cfg.HUD.OverlayFadeSec/2)
	mid := o.Alpha
	assert.Greater(t, mid, float32(0))
	assert.Less(t, mid, float32(1))

	UpdateOverlay(&o, components.OverlayLose, cfg.HUD.OverlayFadeSec)
	assert.Equal(t, float32(1), o.Alpha)

	UpdateOverlay(&o, components.OverlayWin, 0)
	assert.Equal(t, components.OverlayWin, o.Status)
	assert.Zero(t, o.Alpha, "a new status fades in again")
}

func TestStatus(t *testing.T) {
	s := session.New(rows{{"1..X", "...#"}}, session.WithLevelCount(1))
	assert.Equal(t, components.OverlayNone, Status(s), "not started")

	require.NoError(t, s.Start())
	defer s.Close()
	assert.Equal(t, components.OverlayNone, Status(s))

	for i := 0; i < 120; i++ {
		require.NoError(t, s.Update(Tick(), level.Input{}))
	}
	assert.Equal(t, components.OverlayLose, Status(s), "fell off the map")

	require.NoError(t, s.Continue())
	assert.Equal(t, components.OverlayNone, Status(s))
}
