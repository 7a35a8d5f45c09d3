// Package geom holds the axis-aligned box primitives shared by the spatial
// index, the physics step and the renderer. It has no dependencies on
// ebitengine, donburi or resolv.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 2D vector in world units. Arithmetic goes through mgl64 so the
// renderer's matrices and the physics share one vector math.
type Vector struct {
	X, Y float64
}

// FromVec2 converts an mgl64 vector.
func FromVec2(v mgl64.Vec2) Vector {
	return Vector{X: v[0], Y: v[1]}
}

func (v Vector) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return FromVec2(v.Vec2().Add(o.Vec2()))
}

// Scale returns v * s.
func (v Vector) Scale(s float64) Vector {
	return FromVec2(v.Vec2().Mul(s))
}

// AABB is an axis-aligned bounding box. World space is y-up, so (X1, Y1) is
// the bottom-left corner and (X2, Y2) the top-right one.
type AABB struct {
	X1, Y1, X2, Y2 float64
}

// NewAABB builds a box from two opposite corners in any order.
func NewAABB(x1, y1, x2, y2 float64) AABB {
	return AABB{X1: x1, Y1: y1, X2: x2, Y2: y2}.Normalize()
}

// Normalize returns a copy with X1 <= X2 and Y1 <= Y2.
func (b AABB) Normalize() AABB {
	if b.X1 > b.X2 {
		b.X1, b.X2 = b.X2, b.X1
	}
	if b.Y1 > b.Y2 {
		b.Y1, b.Y2 = b.Y2, b.Y1
	}
	return b
}

func (b AABB) Width() float64  { return b.X2 - b.X1 }
func (b AABB) Height() float64 { return b.Y2 - b.Y1 }

// HalfExtents returns half the width and half the height.
func (b AABB) HalfExtents() Vector {
	return Vector{X: (b.X2 - b.X1) / 2, Y: (b.Y2 - b.Y1) / 2}
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vector {
	h := b.HalfExtents()
	return Vector{X: b.X1 + h.X, Y: b.Y1 + h.Y}
}

// Expand grows the box by mx on both horizontal sides and my on both
// vertical sides.
func (b AABB) Expand(mx, my float64) AABB {
	return AABB{X1: b.X1 - mx, Y1: b.Y1 - my, X2: b.X2 + mx, Y2: b.Y2 + my}
}

// Translate returns the box shifted by v. The receiver is a value, so the
// original box is never touched.
func (b AABB) Translate(v Vector) AABB {
	return AABB{X1: b.X1 + v.X, Y1: b.Y1 + v.Y, X2: b.X2 + v.X, Y2: b.Y2 + v.Y}
}

// Translate is the free-function form of AABB.Translate.
func Translate(b AABB, v Vector) AABB {
	return b.Translate(v)
}

// Union returns the smallest box containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		X1: math.Min(a.X1, b.X1),
		Y1: math.Min(a.Y1, b.Y1),
		X2: math.Max(a.X2, b.X2),
		Y2: math.Max(a.Y2, b.Y2),
	}
}

// ContainsPointTop reports whether p lies strictly inside the box's
// horizontal span and at or below its top edge. Patrol ground sensors use it
// to ask "is there a surface under this foot".
func (b AABB) ContainsPointTop(p Vector) bool {
	return p.X > b.X1 && p.X < b.X2 && p.Y <= b.Y2
}
