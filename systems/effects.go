package systems

import (
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the hit flash on every enemy.
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(stepSeconds())

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		amount, done := flash.Tween.Update(dt)
		flash.Amount = amount
		if done {
			flash.Tween = nil
			flash.Amount = 0
		}
	})
}

// TriggerFlash restarts the hit flash on an entity.
func TriggerFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	flash := components.Flash.Get(entry)
	flash.Tween = gween.New(1, 0, float32(cfg.Effects.FlashDuration), ease.OutQuad)
	flash.Amount = 1
}
