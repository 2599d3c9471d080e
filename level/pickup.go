package level

import (
	"math"

	"github.com/automoto/nightfall/archetypes"
	"github.com/automoto/nightfall/components"
	cfg "github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/shared/gamemath"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/automoto/nightfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func (l *Level) spawnPickup(s leveldata.Spawn) *donburi.Entry {
	e := archetypes.Pickup.Spawn(l.world)

	center := leveldata.BoundsOf(s.X, s.Y).Center()
	data := components.PickupData{
		BasePosition: gamemath.Vec{X: float64(center.X), Y: float64(center.Y)},
		PointValue:   cfg.Pickup.GemValue,
	}
	if s.Kind == leveldata.SpawnPowerUp {
		data.PointValue = cfg.Pickup.PowerUpValue
		data.PowerUp = true
	}
	components.Pickup.SetValue(e, data)

	box := pickupBox(pickupCircle(&data))
	obj := resolv.NewObject(float64(box.X), float64(box.Y), float64(box.W), float64(box.H), tags.ResolvPickup)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(box.W), float64(box.H)))
	obj.Data = e
	l.space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}

func pickupCircle(pk *components.PickupData) gamemath.Circle {
	return gamemath.Circle{Center: pk.Position(), Radius: cfg.Pickup.Radius}
}

// pickupBox is the square around a collection circle, used for the
// broadphase only.
func pickupBox(c gamemath.Circle) gamemath.Rect {
	x := int(math.Floor(c.Center.X - c.Radius))
	y := int(math.Floor(c.Center.Y - c.Radius))
	size := int(math.Ceil(2*c.Radius)) + 1
	return gamemath.Rect{X: x, Y: y, W: size, H: size}
}

// updatePickups bobs every pickup and collects the ones touching the player.
// Collected pickups are removed after the scan so the world is never
// mutated mid-iteration.
func (l *Level) updatePickups(st *components.LevelStateData) {
	height := cfg.Pickup.BounceHeight * cfg.Pickup.SpriteHeight
	components.Pickup.Each(l.world, func(e *donburi.Entry) {
		pk := components.Pickup.Get(e)
		pk.Bounce = gamemath.Bounce(st.Elapsed, pk.BasePosition.X,
			cfg.Pickup.BounceRate, cfg.Pickup.BounceSync, height)
		components.Object.Get(e).Sync(pickupBox(pickupCircle(pk)))
	})

	check := components.Object.Get(l.player).Check(0, 0, tags.ResolvPickup)
	if check == nil {
		return
	}

	playerBox := l.PlayerBounds()
	var collected []*donburi.Entry
	for _, obj := range check.ObjectsByTags(tags.ResolvPickup) {
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !l.world.Valid(e.Entity()) {
			continue
		}
		pk := components.Pickup.Get(e)
		if pk.Collected || !gamemath.CircleIntersectsRect(pickupCircle(pk), playerBox) {
			continue
		}
		pk.Collected = true
		collected = append(collected, e)
	}

	for _, e := range collected {
		l.collect(st, e)
	}
}

func (l *Level) collect(st *components.LevelStateData, e *donburi.Entry) {
	pk := components.Pickup.Get(e)
	st.Score += pk.PointValue

	if pk.PowerUp {
		components.Player.Get(l.player).PowerUpTime = cfg.Player.PowerUpDuration.Seconds()
		l.sounds.Play(cfg.SoundPowerUpCollected)
	} else {
		l.sounds.Play(cfg.SoundPickupCollected)
	}

	l.space.Remove(components.Object.Get(e).Object)
	l.world.Remove(e.Entity())
}
