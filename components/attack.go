package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/geom"
)

// AttackData tracks the player's attack window
type AttackData struct {
	Active  bool
	Elapsed time.Duration
	Box     geom.AABB // world box of the current swing
	Hits    int       // enemy hits landed during the current swing
	// Object is the swing's broadphase query object.
	Object *resolv.Object
}

var Attack = donburi.NewComponentType[AttackData]()
