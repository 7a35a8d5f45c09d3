// Package physics moves entities against static level geometry.
//
// Every step integrates gravity, queries the spatial index around the
// entity's tentative box, and resolves overlaps one candidate at a time along
// the axis of least penetration. Resolution is sequential: each candidate is
// tested against the box as already corrected by the ones before it, so the
// outcome can depend on the order the index returns candidates in.
package physics

import "github.com/automoto/robots/shared/geom"

// Body is the kinematic state of one entity. A Body belongs to exactly one
// entity and is never shared between them.
type Body struct {
	Position  geom.Vector
	VelocityY float64
	Grounded  bool
	// Direction is the horizontal facing, -1 or +1.
	Direction float64
	// Box is the local footprint; the world box is Box translated by
	// Position.
	Box geom.AABB

	candidates []*geom.AABB
}

// NewBody places a body of the given footprint at pos facing dir.
func NewBody(pos geom.Vector, box geom.AABB, dir float64) *Body {
	if dir == 0 {
		dir = 1
	}
	return &Body{Position: pos, Box: box.Normalize(), Direction: dir}
}

// WorldBox returns the body's box at its current position.
func (b *Body) WorldBox() geom.AABB {
	return b.BoxAt(b.Position)
}

// BoxAt returns the body's box as if it stood at p.
func (b *Body) BoxAt(p geom.Vector) geom.AABB {
	return b.Box.Translate(p)
}

// Candidates returns the boxes the last step queried. The slice is reused
// by the next step.
func (b *Body) Candidates() []*geom.AABB {
	return b.candidates
}
