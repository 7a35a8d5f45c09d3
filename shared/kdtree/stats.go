package kdtree

import "github.com/automoto/robots/shared/geom"

// Stats summarizes the shape of a built tree.
type Stats struct {
	Inputs    int // boxes passed to Build
	Stored    int // boxes across all leaves, duplicates included
	Leaves    int
	Splits    int
	Depth     int // 1 for a single leaf
	MaxBucket int
}

// Stats walks the whole tree. It is meant for logging and metrics, not for
// the frame loop.
func (t *Tree) Stats() Stats {
	if t == nil {
		return Stats{}
	}
	s := Stats{Inputs: t.inputs}
	if t.root != nil {
		collect(t.root, 1, &s)
	}
	return s
}

func collect(n node, depth int, s *Stats) {
	if depth > s.Depth {
		s.Depth = depth
	}
	switch n := n.(type) {
	case *leaf:
		s.Leaves++
		s.Stored += len(n.bucket)
		if len(n.bucket) > s.MaxBucket {
			s.MaxBucket = len(n.bucket)
		}
	case *split:
		s.Splits++
		if n.left != nil {
			collect(n.left, depth+1, s)
		}
		if n.right != nil {
			collect(n.right, depth+1, s)
		}
	}
}

// Bounds returns the union of every stored box, or the zero box for an empty
// or nil tree.
func (t *Tree) Bounds() geom.AABB {
	if t == nil {
		return geom.AABB{}
	}
	var (
		out   geom.AABB
		first = true
	)
	t.eachLeaf(t.root, func(l *leaf) {
		for _, b := range l.bucket {
			if first {
				out, first = b, false
				continue
			}
			out = geom.Union(out, b)
		}
	})
	return out
}

func (t *Tree) eachLeaf(n node, fn func(*leaf)) {
	switch n := n.(type) {
	case *leaf:
		fn(n)
	case *split:
		t.eachLeaf(n.left, fn)
		t.eachLeaf(n.right, fn)
	}
}

// Walk visits every split plane, pre-order, together with the region of
// bounds it cuts. The debug overlay draws these as lines.
func (t *Tree) Walk(bounds geom.AABB, fn func(axis Axis, boundary float64, region geom.AABB)) {
	if t == nil {
		return
	}
	walk(t.root, bounds.Normalize(), fn)
}

func walk(n node, region geom.AABB, fn func(Axis, float64, geom.AABB)) {
	s, ok := n.(*split)
	if !ok {
		return
	}
	fn(s.axis, s.boundary, region)

	left, right := region, region
	switch s.axis {
	case AxisX:
		left.X2 = min(left.X2, s.boundary)
		right.X1 = max(right.X1, s.boundary)
	case AxisY:
		left.Y2 = min(left.Y2, s.boundary)
		right.Y1 = max(right.Y1, s.boundary)
	}
	walk(s.left, left, fn)
	walk(s.right, right, fn)
}
