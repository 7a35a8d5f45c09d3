package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Dead reports whether the entity has run out of health.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
