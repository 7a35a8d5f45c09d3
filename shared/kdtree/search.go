package kdtree

import "github.com/automoto/robots/shared/geom"

// RangeSearch returns every stored box that overlaps query. The slice belongs
// to the caller; the boxes it points at belong to the tree. A box stored on
// both sides of a split can appear twice. No overlap yields an empty slice.
func (t *Tree) RangeSearch(query geom.AABB) []*geom.AABB {
	return t.AppendRange(nil, query)
}

// AppendRange is RangeSearch appending into dst, so a caller can reuse one
// buffer across frames. Results are ordered left subtree first.
func (t *Tree) AppendRange(dst []*geom.AABB, query geom.AABB) []*geom.AABB {
	if t == nil || t.root == nil {
		return dst
	}
	return search(t.root, query.Normalize(), dst)
}

func search(n node, q geom.AABB, dst []*geom.AABB) []*geom.AABB {
	switch n := n.(type) {
	case *leaf:
		for i := range n.bucket {
			if geom.Overlaps(q, n.bucket[i]) {
				dst = append(dst, &n.bucket[i])
			}
		}
	case *split:
		lo, hi, ok := interval(q, n.axis)
		if !ok {
			return dst
		}
		// Left holds boxes starting before the boundary, right holds boxes
		// ending after it.
		if n.left != nil && (lo < n.boundary || hi <= n.boundary) {
			dst = search(n.left, q, dst)
		}
		if n.right != nil && hi > n.boundary {
			dst = search(n.right, q, dst)
		}
	}
	return dst
}
