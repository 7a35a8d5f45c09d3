// Package kdtree implements a static k-d tree over axis-aligned boxes.
//
// The tree is bulk-built once from the level geometry and is read-only
// afterwards: there is no insertion or removal. Boxes that straddle a split
// plane are stored on both sides, so a range query never misses a box, but
// the same box may be reported more than once.
package kdtree

import (
	"errors"

	"github.com/automoto/robots/shared/geom"
)

// DefaultLeafSize is the bucket size below which a node stops splitting.
const DefaultLeafSize = 128

var (
	// ErrNoBoxes is returned when Build is given nothing to index.
	ErrNoBoxes = errors.New("kdtree: no boxes to index")
	// ErrInvalidLeafSize is returned for leaf sizes that cannot produce a
	// sample variance (fewer than two boxes per split).
	ErrInvalidLeafSize = errors.New("kdtree: leaf size must be at least 2")
	// ErrNoSplitAxis means a split node was reached without a usable axis.
	ErrNoSplitAxis = errors.New("kdtree: no split axis selectable")
)

// Axis is the coordinate a split node partitions on.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "invalid"
	}
}

// node is either a *leaf or a *split.
type node interface {
	isNode()
}

// leaf owns a bucket of boxes.
type leaf struct {
	bucket []geom.AABB
}

// split owns its two children exclusively. A nil child means every box fell
// on the other side.
type split struct {
	axis     Axis
	boundary float64
	left     node
	right    node
}

func (*leaf) isNode()  {}
func (*split) isNode() {}

// Tree is a built index. The zero value is an empty tree.
type Tree struct {
	root   node
	inputs int
}

// Len returns the number of boxes the tree was built from, not counting
// duplicates created by straddling.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.inputs
}

// Release drops every node, bucket and child link. After Release the tree is
// empty: RangeSearch returns nothing and the boxes previously handed out
// must no longer be used.
func (t *Tree) Release() {
	if t == nil {
		return
	}
	release(t.root)
	t.root = nil
	t.inputs = 0
}

func release(n node) {
	switch n := n.(type) {
	case *leaf:
		clear(n.bucket)
		n.bucket = nil
	case *split:
		release(n.left)
		release(n.right)
		n.left, n.right = nil, nil
	}
}
