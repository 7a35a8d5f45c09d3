package systems

import (
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttack opens an attack window on a fresh press of attack. While the
// window is open, every enemy overlapping the swing loses health each frame.
// Enemies out of health are removed.
func UpdateAttack(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		attack := components.Attack.Get(playerEntry)

		if input.Action(cfg.ActionAttack).JustPressed && !attack.Active {
			attack.Active = true
			attack.Elapsed = 0
			attack.Hits = 0
		}
		if !attack.Active {
			return
		}

		attack.Box = cfg.Attack.Box(player.Position, player.Direction)
		if attack.Object != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Place(attack.Object, attack.Box)
			}
			attack.Hits += hitEnemies(ecs, attack)
		}

		attack.Elapsed += stepDuration()
		if attack.Elapsed > cfg.Attack.Duration {
			attack.Active = false
		}
	})

	removeDeadEnemies(ecs)
}

// hitEnemies damages every enemy the swing overlaps and returns how many it
// hit. The space only narrows the search; the box test decides.
func hitEnemies(ecs *ecs.ECS, attack *components.AttackData) int {
	collision := attack.Object.Check(0, 0, tags.ResolvEnemy)
	if collision == nil {
		return 0
	}

	hits := 0
	seen := make(map[*donburi.Entry]bool, len(collision.Objects))
	for _, obj := range collision.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || seen[entry] || !entry.Valid() || !entry.HasComponent(components.Enemy) {
			continue
		}
		seen[entry] = true

		enemy := components.Enemy.Get(entry)
		if _, hit := geom.Test(attack.Box, enemy.WorldBox()); !hit {
			continue
		}

		health := components.Health.Get(entry)
		health.Current -= cfg.Attack.Damage
		TriggerFlash(entry)
		TriggerScreenShake(ecs, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeDuration)
		hits++
	}
	return hits
}

func removeDeadEnemies(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Dead() {
			dead = append(dead, e)
		}
	})
	for _, e := range dead {
		removeObject(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}
