package kdtree

import (
	"fmt"
	"sort"

	"github.com/automoto/robots/shared/geom"
)

// Build indexes boxes. Each box is normalized and copied; the tree owns the
// copies and hands out pointers into them from RangeSearch.
//
// Nodes with fewer than leafSize boxes become leaves. Larger nodes split on
// the axis whose box centers have the greater sample variance (Y on an exact
// tie) at the median of those centers.
func Build(boxes []geom.AABB, leafSize int) (*Tree, error) {
	if leafSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLeafSize, leafSize)
	}
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}

	owned := make([]geom.AABB, len(boxes))
	for i, b := range boxes {
		owned[i] = b.Normalize()
	}

	root, err := build(owned, leafSize)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, inputs: len(boxes)}, nil
}

func build(boxes []geom.AABB, leafSize int) (node, error) {
	if len(boxes) < leafSize {
		return &leaf{bucket: boxes}, nil
	}

	centersX := make([]float64, len(boxes))
	centersY := make([]float64, len(boxes))
	for i, b := range boxes {
		c := b.Center()
		centersX[i] = c.X
		centersY[i] = c.Y
	}

	axis, centers := AxisY, centersY
	if variance(centersX) > variance(centersY) {
		axis, centers = AxisX, centersX
	}
	sort.Float64s(centers)
	boundary := median(centers)

	left, right, err := partition(boxes, axis, boundary)
	if err != nil {
		return nil, fmt.Errorf("split %d boxes: %w", len(boxes), err)
	}

	s := &split{axis: axis, boundary: boundary}
	if s.left, err = child(left, len(boxes), leafSize); err != nil {
		return nil, err
	}
	if s.right, err = child(right, len(boxes), leafSize); err != nil {
		return nil, err
	}
	return s, nil
}

// child builds one side of a split. An empty side has no node at all. A side
// that received every box of its parent (all of them straddle the plane)
// cannot be split any further and is kept as an oversized leaf.
func child(boxes []geom.AABB, parentCount, leafSize int) (node, error) {
	switch len(boxes) {
	case 0:
		return nil, nil
	case parentCount:
		return &leaf{bucket: boxes}, nil
	default:
		return build(boxes, leafSize)
	}
}

// partition sends boxes ending at or before the boundary left, boxes starting
// after it right, and boxes straddling it to both sides.
func partition(boxes []geom.AABB, axis Axis, boundary float64) (left, right []geom.AABB, err error) {
	left = make([]geom.AABB, 0, len(boxes)/2+1)
	right = make([]geom.AABB, 0, len(boxes)/2+1)
	for _, b := range boxes {
		start, end, ok := interval(b, axis)
		if !ok {
			return nil, nil, fmt.Errorf("%w: axis %d", ErrNoSplitAxis, axis)
		}
		if end <= boundary || (start < boundary && end > boundary) {
			left = append(left, b)
		}
		if start > boundary || (start <= boundary && end > boundary) {
			right = append(right, b)
		}
	}
	return left, right, nil
}

// interval returns the box extent along axis.
func interval(b geom.AABB, axis Axis) (start, end float64, ok bool) {
	switch axis {
	case AxisX:
		return b.X1, b.X2, true
	case AxisY:
		return b.Y1, b.Y2, true
	default:
		return 0, 0, false
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// variance is the sample variance (n-1 denominator). Callers guarantee at
// least two values.
func variance(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return sum / float64(len(values)-1)
}

// median returns sorted[n/2]. For even counts that is the second of the two
// central values; the two are never averaged.
func median(sorted []float64) float64 {
	return sorted[len(sorted)/2]
}
