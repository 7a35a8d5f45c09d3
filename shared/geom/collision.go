package geom

import "math"

// Collision describes how to separate two overlapping boxes along a single
// axis. Exactly one component of Normal is non-zero and it is ±1.
type Collision struct {
	Normal   Vector
	Distance float64
}

// Push returns the translation that separates the first box from the second.
func (c Collision) Push() Vector {
	return c.Normal.Scale(c.Distance)
}

// Test reports whether a and b overlap and, if so, the minimum translation
// that pushes a out of b. Touching boxes (zero-width or zero-height
// intersection) do not overlap.
func Test(a, b AABB) (Collision, bool) {
	// Separation and touching are decided on the raw edges, where no
	// rounding is involved.
	if a.X2 <= b.X1 || b.X2 <= a.X1 || a.Y2 <= b.Y1 || b.Y2 <= a.Y1 {
		return Collision{}, false
	}

	ha := a.HalfExtents()
	hb := b.HalfExtents()
	d := Vector{
		X: (a.X1 + ha.X) - (b.X1 + hb.X),
		Y: (a.Y1 + ha.Y) - (b.Y1 + hb.Y),
	}

	xOverlap := ha.X + hb.X - math.Abs(d.X)
	yOverlap := ha.Y + hb.Y - math.Abs(d.Y)
	if xOverlap <= 0 || yOverlap <= 0 {
		return Collision{}, false
	}

	if xOverlap < yOverlap {
		return Collision{Normal: Vector{X: sign(d.X)}, Distance: xOverlap}, true
	}
	return Collision{Normal: Vector{Y: sign(d.Y)}, Distance: yOverlap}, true
}

// Overlaps is Test without the separation result.
func Overlaps(a, b AABB) bool {
	_, ok := Test(a, b)
	return ok
}

// sign maps zero to +1 so that coincident centers still get a direction.
func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
