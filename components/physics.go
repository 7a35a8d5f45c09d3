package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/physics"
)

// BodyOf returns the physics body of a player or enemy entry, or nil.
func BodyOf(entry *donburi.Entry) *physics.Body {
	switch {
	case entry.HasComponent(Player):
		return &Player.Get(entry).Body
	case entry.HasComponent(Enemy):
		return &Enemy.Get(entry).Body
	default:
		return nil
	}
}
