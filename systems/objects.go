package systems

import (
	"github.com/automoto/robots/components"
	"github.com/automoto/robots/shared/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// syncObject moves the entry's broadphase object onto its world box.
func syncObject(ecs *ecs.ECS, entry *donburi.Entry, box geom.AABB) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Place(obj.Object, box)
}

// removeObject takes the entry's broadphase object out of the space.
func removeObject(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj.Object)
	}
}
