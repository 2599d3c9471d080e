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

func (l *Level) spawnEnemy(s leveldata.Spawn) *donburi.Entry {
	e := archetypes.Enemy.Spawn(l.world)

	set := "A"
	if s.Kind == leveldata.SpawnEnemyB {
		set = "B"
	}
	components.Enemy.SetValue(e, components.EnemyData{
		SpriteSet: set,
		Facing:    cfg.DirectionLeft,
		Alive:     true,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Position: gamemath.BottomCenter(leveldata.BoundsOf(s.X, s.Y)),
	})
	components.State.SetValue(e, components.StateData{CurrentState: cfg.Running})

	bounds := enemyBounds(e)
	obj := resolv.NewObject(float64(bounds.X), float64(bounds.Y), float64(bounds.W), float64(bounds.H), tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(bounds.W), float64(bounds.H)))
	obj.Data = e
	l.space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e
}

func enemyBounds(e *donburi.Entry) gamemath.Rect {
	pos := components.Physics.Get(e).Position
	return frameBox(pos, cfg.Enemy.FrameWidth, cfg.Enemy.FrameHeight,
		cfg.Enemy.BoxWidthPct, cfg.Enemy.BoxHeightPct)
}

// updateEnemies resolves player contact and then moves each enemy. A
// powered-up player kills the enemy it touches; otherwise the enemy kills
// the player.
func (l *Level) updateEnemies(elapsed float64) {
	p := components.Player.Get(l.player)
	playerBox := l.PlayerBounds()

	touching := map[donburi.Entity]bool{}
	if check := components.Object.Get(l.player).Check(0, 0, tags.ResolvEnemy); check != nil {
		for _, obj := range check.ObjectsByTags(tags.ResolvEnemy) {
			if e, ok := obj.Data.(*donburi.Entry); ok {
				touching[e.Entity()] = true
			}
		}
	}

	tags.Enemy.Each(l.world, func(e *donburi.Entry) {
		en := components.Enemy.Get(e)
		if en.Alive && p.Alive && touching[e.Entity()] && enemyBounds(e).Intersects(playerBox) {
			if p.PoweredUp() {
				en.Alive = false
				l.sounds.Play(cfg.SoundEnemyKilled)
			} else {
				l.killPlayer(cfg.SoundPlayerKilled)
			}
		}
		l.updateEnemy(e, elapsed)
	})
}

// updateEnemy walks an enemy along its ledge. It stops for MaxWaitTime in
// front of a wall or a drop, then turns around. Dead enemies stay put.
func (l *Level) updateEnemy(e *donburi.Entry, elapsed float64) {
	en := components.Enemy.Get(e)
	if !en.Alive {
		return
	}
	ph := components.Physics.Get(e)

	// Tile under the leading edge of the box, on the row the enemy stands in.
	boxWidth := int(float64(cfg.Enemy.FrameWidth) * cfg.Enemy.BoxWidthPct)
	edgeX := ph.Position.X + float64(boxWidth/2*en.Facing)
	tileX := int(math.Floor(edgeX/float64(leveldata.TileWidth))) - en.Facing
	tileY := int(math.Floor(ph.Position.Y / float64(leveldata.TileHeight)))

	if en.WaitTime > 0 {
		en.WaitTime = math.Max(0, en.WaitTime-elapsed)
		if en.WaitTime <= 0 {
			en.Facing = -en.Facing
		}
	} else if l.grid.CollisionAt(tileX+en.Facing, tileY-1) == leveldata.Impassable ||
		l.grid.CollisionAt(tileX+en.Facing, tileY) == leveldata.Passable {
		en.WaitTime = cfg.Enemy.MaxWaitTime
	} else {
		ph.Position.X += float64(en.Facing) * cfg.Enemy.MoveSpeed * elapsed
		ph.Velocity.X = float64(en.Facing) * cfg.Enemy.MoveSpeed
	}

	if en.WaitTime > 0 {
		ph.Velocity.X = 0
	}
	components.Object.Get(e).Sync(enemyBounds(e))
}
