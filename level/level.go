// Package level simulates a single level: one player, patrolling enemies,
// bouncing pickups, an exit door and a countdown timer. It is headless and
// driven one tick at a time by Update.
package level

import (
	"math"
	"time"

	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/automoto/nightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Level holds the entity world and broadphase space of a loaded map.
type Level struct {
	world donburi.World
	space *resolv.Space
	grid  *leveldata.Map

	start gamemath.Vec
	exit  gamemath.Point

	player *donburi.Entry
	state  *donburi.Entry

	sounds SoundTrigger
}

// Option configures a Level.
type Option func(*Level)

// WithSounds routes sound events to s.
func WithSounds(s SoundTrigger) Option {
	return func(l *Level) {
		if s != nil {
			l.sounds = s
		}
	}
}

// WithIndex sets the level number reported by View.
func WithIndex(index int) Option {
	return func(l *Level) {
		components.LevelState.Get(l.state).Index = index
	}
}

// New builds a level from a parsed map. The player spawns alive at the start
// tile and the timer starts at the configured limit.
func New(m *leveldata.Map, opts ...Option) *Level {
	l := &Level{
		world:  donburi.NewWorld(),
		space:  resolv.NewSpace(m.PixelWidth(), m.PixelHeight(), leveldata.TileWidth, leveldata.TileHeight),
		grid:   m,
		start:  m.StartPosition(),
		exit:   m.ExitPoint(),
		sounds: noSounds{},
	}

	l.state = archetypes.LevelState.Spawn(l.world)
	components.LevelState.SetValue(l.state, components.LevelStateData{
		TimeRemaining: cfg.Level.TimeLimit,
	})

	l.player = archetypes.Player.Spawn(l.world)
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvPlayer)
	obj.Data = l.player
	l.space.Add(obj)
	components.Object.SetValue(l.player, components.ObjectData{Object: obj})
	l.StartNewLife()

	for _, s := range m.Enemies {
		l.spawnEnemy(s)
	}
	for _, s := range m.Pickups {
		l.spawnPickup(s)
	}

	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Update advances the level by dt. A dead player or an expired timer freezes
// the level apart from the player settling under physics. Once the exit is
// reached, remaining time drains into score. Otherwise the tick runs normal
// play: timer, player, pickups, fall check, enemies, exit.
func (l *Level) Update(dt time.Duration, in Input) {
	elapsed := dt.Seconds()
	st := components.LevelState.Get(l.state)
	p := components.Player.Get(l.player)
	st.Elapsed += elapsed

	switch {
	case !p.Alive || st.TimeRemaining <= 0:
		p.Movement = 0
		p.Jumping = false
		p.Sliding = false
		l.applyPhysics(elapsed)
	case st.ReachedExit:
		l.drainBonus(st, elapsed)
	default:
		st.TimeRemaining -= dt
		l.updatePlayer(elapsed, in)
		l.updatePickups(st)
		if l.PlayerBounds().Top() >= l.grid.PixelHeight() {
			l.killPlayer(cfg.SoundPlayerFell)
		}
		l.updateEnemies(elapsed)
		l.checkExit(st)
	}

	if st.TimeRemaining < 0 {
		st.TimeRemaining = 0
	}
	l.updateStates(elapsed)
}

// StartNewLife puts the player back at the start tile, alive and at rest.
// Score, timer and the rest of the level are untouched.
func (l *Level) StartNewLife() {
	components.Player.SetValue(l.player, components.PlayerData{
		Alive:  true,
		Facing: cfg.DirectionRight,
	})
	ph := components.Physics.Get(l.player)
	*ph = components.PhysicsData{Position: l.start}
	bounds := l.PlayerBounds()
	ph.PreviousBottom = float64(bounds.Bottom())
	components.Object.Get(l.player).Sync(bounds)
	components.State.SetValue(l.player, components.StateData{CurrentState: cfg.Idle})
}

// Score is the points earned in this level.
func (l *Level) Score() int {
	return components.LevelState.Get(l.state).Score
}

// TimeRemaining is the countdown timer; it never goes below zero.
func (l *Level) TimeRemaining() time.Duration {
	return components.LevelState.Get(l.state).TimeRemaining
}

// ReachedExit reports whether the player has touched the exit.
func (l *Level) ReachedExit() bool {
	return components.LevelState.Get(l.state).ReachedExit
}

// PlayerAlive reports whether the player is alive.
func (l *Level) PlayerAlive() bool {
	return components.Player.Get(l.player).Alive
}

// Index is the level number passed through WithIndex.
func (l *Level) Index() int {
	return components.LevelState.Get(l.state).Index
}

// Map returns the tile grid the level was built from.
func (l *Level) Map() *leveldata.Map {
	return l.grid
}

// Close releases the level's entities and broadphase objects.
func (l *Level) Close() {
	var entities []donburi.Entity
	components.Object.Each(l.world, func(e *donburi.Entry) {
		l.space.Remove(components.Object.Get(e).Object)
		entities = append(entities, e.Entity())
	})
	entities = append(entities, l.state.Entity())
	for _, e := range entities {
		l.world.Remove(e)
	}
}

// drainBonus converts remaining time into score at the bonus rate, never
// taking more whole seconds than are left.
func (l *Level) drainBonus(st *components.LevelStateData, elapsed float64) {
	seconds := int(math.Round(elapsed * cfg.Level.BonusTimeScale))
	if remaining := int(math.Ceil(st.TimeRemaining.Seconds())); seconds > remaining {
		seconds = remaining
	}
	st.TimeRemaining -= time.Duration(seconds) * time.Second
	st.Score += seconds * cfg.Level.PointsPerSecond
}

func (l *Level) checkExit(st *components.LevelStateData) {
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	if !p.Alive || !ph.OnGround || !l.PlayerBounds().Contains(l.exit) {
		return
	}
	st.ReachedExit = true
	l.sounds.Play(cfg.SoundExitReached)
}

func (l *Level) killPlayer(sound cfg.SoundID) {
	p := components.Player.Get(l.player)
	if !p.Alive {
		return
	}
	p.Alive = false
	l.sounds.Play(sound)
}
