package level

import (
	"math"
	"time"

	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/automoto/nightfall/tags"
	"github.com/yohamta/donburi"
)

// View is a read-only snapshot of a level for renderers.
type View struct {
	Index int
	Map   *leveldata.Map

	Player  PlayerView
	Enemies []EnemyView
	Pickups []PickupView

	ExitBounds gamemath.Rect

	Score         int
	TimeRemaining time.Duration
	ReachedExit   bool
	// Seconds simulated so far; animations key off it
	Elapsed float64
}

type PlayerView struct {
	Position    gamemath.Vec
	Velocity    gamemath.Vec
	Bounds      gamemath.Rect
	SlideBounds gamemath.Rect
	Facing      int
	Alive       bool
	OnGround    bool
	Sliding     bool
	Speedy      bool
	PoweredUp   bool
	State       cfg.StateID
	StateTime   float64
}

type EnemyView struct {
	Position  gamemath.Vec
	Bounds    gamemath.Rect
	SpriteSet string
	Facing    int
	Alive     bool
	State     cfg.StateID
	StateTime float64
}

type PickupView struct {
	Position   gamemath.Vec
	Radius     float64
	PointValue int
	PowerUp    bool
}

// View captures the current state of the level.
func (l *Level) View() View {
	st := components.LevelState.Get(l.state)
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	ps := components.State.Get(l.player)

	v := View{
		Index:         st.Index,
		Map:           l.grid,
		ExitBounds:    leveldata.DoorBounds(l.grid.Exit.X, l.grid.Exit.Y),
		Score:         st.Score,
		TimeRemaining: st.TimeRemaining,
		ReachedExit:   st.ReachedExit,
		Elapsed:       st.Elapsed,
		Player: PlayerView{
			Position:    ph.Position,
			Velocity:    ph.Velocity,
			Bounds:      l.PlayerBounds(),
			SlideBounds: l.SlideBounds(),
			Facing:      p.Facing,
			Alive:       p.Alive,
			OnGround:    ph.OnGround,
			Sliding:     p.Sliding,
			Speedy:      p.Speedy,
			PoweredUp:   p.PoweredUp(),
			State:       ps.CurrentState,
			StateTime:   ps.StateTimer,
		},
	}

	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		es := components.State.Get(e)
		v.Enemies = append(v.Enemies, EnemyView{
			Position:  components.Physics.Get(e).Position,
			Bounds:    enemyBounds(e),
			SpriteSet: en.SpriteSet,
			Facing:    en.Facing,
			Alive:     en.Alive,
			State:     es.CurrentState,
			StateTime: es.StateTimer,
		})
	})

	tags.Pickup.Each(l.world, func(e *donburi.Entry) {
		pk := components.Pickup.Get(e)
		v.Pickups = append(v.Pickups, PickupView{
			Position:   pk.Position(),
			Radius:     cfg.Pickup.Radius,
			PointValue: pk.PointValue,
			PowerUp:    pk.PowerUp,
		})
	})

	return v
}

// updateStates picks the animation state of every character for this tick.
func (l *Level) updateStates(elapsed float64) {
	st := components.LevelState.Get(l.state)
	p := components.Player.Get(l.player)
	ph := components.Physics.Get(l.player)
	ps := components.State.Get(l.player)

	moving := math.Abs(ph.Velocity.X) > 0.02
	switch {
	case !p.Alive:
		ps.Set(cfg.Die)
	case st.ReachedExit:
		ps.Set(cfg.Celebrate)
	case p.JumpTime > 0:
		ps.Set(cfg.Jump)
	case ph.OnGround && moving && p.Sliding:
		ps.Set(cfg.Slide)
	case ph.OnGround && moving:
		ps.Set(cfg.Running)
	case ph.OnGround:
		ps.Set(cfg.Idle)
	}
	ps.StateTimer += elapsed

	frozen := !p.Alive || st.TimeRemaining == 0 || st.ReachedExit
	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		es := components.State.Get(e)
		switch {
		case !en.Alive:
			es.Set(cfg.Die)
		case frozen || en.Waiting():
			es.Set(cfg.Idle)
		default:
			es.Set(cfg.Running)
		}
		es.StateTimer += elapsed
	})
}
