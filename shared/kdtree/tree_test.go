package kdtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/robots/shared/geom"
)

// tileRow returns n half-unit boxes along X, one at each integer.
func tileRow(n int) []geom.AABB {
	boxes := make([]geom.AABB, n)
	for i := range boxes {
		x := float64(i)
		boxes[i] = geom.AABB{X1: x, Y1: 0, X2: x + 0.5, Y2: 0.5}
	}
	return boxes
}

func unique(found []*geom.AABB) map[geom.AABB]bool {
	set := make(map[geom.AABB]bool, len(found))
	for _, b := range found {
		set[*b] = true
	}
	return set
}

func bruteForce(boxes []geom.AABB, q geom.AABB) map[geom.AABB]bool {
	set := map[geom.AABB]bool{}
	for _, b := range boxes {
		if geom.Overlaps(q, b) {
			set[b] = true
		}
	}
	return set
}

func TestBuildRejectsBadInput(t *testing.T) {
	_, err := Build(nil, DefaultLeafSize)
	assert.ErrorIs(t, err, ErrNoBoxes)

	_, err = Build(tileRow(4), 1)
	assert.ErrorIs(t, err, ErrInvalidLeafSize)
}

func TestSmallInputIsSingleLeaf(t *testing.T) {
	tree, err := Build(tileRow(10), DefaultLeafSize)
	require.NoError(t, err)

	_, isLeaf := tree.root.(*leaf)
	assert.True(t, isLeaf)

	s := tree.Stats()
	assert.Equal(t, Stats{Inputs: 10, Stored: 10, Leaves: 1, Depth: 1, MaxBucket: 10}, s)

	found := tree.RangeSearch(geom.AABB{X1: 2.25, Y1: 0.25, X2: 4.25, Y2: 0.75})
	assert.Len(t, found, 3)
}

func counts(found []*geom.AABB) map[geom.AABB]int {
	m := make(map[geom.AABB]int, len(found))
	for _, b := range found {
		m[*b]++
	}
	return m
}

func TestLeafOnlyTreeMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	boxes := make([]geom.AABB, 100)
	for i := range boxes {
		x, y := rng.Float64()*20, rng.Float64()*20
		boxes[i] = geom.AABB{X1: x, Y1: y, X2: x + 0.1 + rng.Float64()*2, Y2: y + 0.1 + rng.Float64()}
	}
	tree, err := Build(boxes, DefaultLeafSize)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Stats().Leaves)

	for i := 0; i < 300; i++ {
		x, y := rng.Float64()*24-2, rng.Float64()*24-2
		q := geom.AABB{X1: x, Y1: y, X2: x + rng.Float64()*6, Y2: y + rng.Float64()*6}

		want := map[geom.AABB]int{}
		for _, b := range boxes {
			if geom.Overlaps(q, b) {
				want[b]++
			}
		}
		found := tree.RangeSearch(q)
		// A single leaf never duplicates, so the results match as multisets
		assert.Equal(t, want, counts(found), "query %+v", q)
	}
}

func TestBuildCopiesAndNormalizes(t *testing.T) {
	input := []geom.AABB{{X1: 1, Y1: 1, X2: 0, Y2: 0}}
	tree, err := Build(input, DefaultLeafSize)
	require.NoError(t, err)

	input[0] = geom.AABB{X1: 50, Y1: 50, X2: 51, Y2: 51}

	found := tree.RangeSearch(geom.AABB{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75})
	require.Len(t, found, 1)
	assert.Equal(t, geom.AABB{X1: 0, Y1: 0, X2: 1, Y2: 1}, *found[0])
}

func TestEvenCountMedianIndex(t *testing.T) {
	tree, err := Build(tileRow(128), DefaultLeafSize)
	require.NoError(t, err)

	s, ok := tree.root.(*split)
	require.True(t, ok, "128 boxes with leaf size 128 must split")
	assert.Equal(t, AxisX, s.axis)
	// Centers are i+0.25; sorted[64] is the center of box 64.
	assert.Equal(t, 64.25, s.boundary)

	// Box 64 straddles the plane and lands on both sides.
	left, right := s.left.(*leaf), s.right.(*leaf)
	assert.Len(t, left.bucket, 65)
	assert.Len(t, right.bucket, 64)
	assert.Contains(t, left.bucket, geom.AABB{X1: 64, Y1: 0, X2: 64.5, Y2: 0.5})
	assert.Contains(t, right.bucket, geom.AABB{X1: 64, Y1: 0, X2: 64.5, Y2: 0.5})
}

func TestVarianceTiePicksY(t *testing.T) {
	boxes := make([]geom.AABB, 128)
	for i := range boxes {
		v := float64(i)
		boxes[i] = geom.AABB{X1: v, Y1: v, X2: v + 0.5, Y2: v + 0.5}
	}
	tree, err := Build(boxes, DefaultLeafSize)
	require.NoError(t, err)

	s, ok := tree.root.(*split)
	require.True(t, ok)
	assert.Equal(t, AxisY, s.axis)
}

func TestGreaterVarianceAxisWins(t *testing.T) {
	boxes := make([]geom.AABB, 40)
	for i := range boxes {
		// Tall column: centers spread far more along Y.
		y := float64(i) * 2
		boxes[i] = geom.AABB{X1: float64(i % 2), Y1: y, X2: float64(i%2) + 1, Y2: y + 1}
	}
	tree, err := Build(boxes, 4)
	require.NoError(t, err)

	s, ok := tree.root.(*split)
	require.True(t, ok)
	assert.Equal(t, AxisY, s.axis)
}

func TestStraddlingBoxFoundFromEitherSide(t *testing.T) {
	boxes := tileRow(200)
	wide := geom.AABB{X1: 10, Y1: 1, X2: 190, Y2: 2}
	boxes = append(boxes, wide)

	tree, err := Build(boxes, 16)
	require.NoError(t, err)

	for _, x := range []float64{12, 60, 100, 150, 188} {
		q := geom.AABB{X1: x, Y1: 1.25, X2: x + 0.5, Y2: 1.75}
		found := unique(tree.RangeSearch(q))
		assert.True(t, found[wide], "query at x=%v", x)
	}
	assert.Greater(t, tree.Stats().Stored, tree.Len())
}

func TestIdenticalBoxesTerminate(t *testing.T) {
	boxes := make([]geom.AABB, 300)
	for i := range boxes {
		boxes[i] = geom.AABB{X1: 0, Y1: 0, X2: 1, Y2: 1}
	}
	tree, err := Build(boxes, 8)
	require.NoError(t, err)

	s := tree.Stats()
	assert.Equal(t, 1, s.Splits)
	assert.Equal(t, 2, s.Leaves)
	assert.Equal(t, 300, s.MaxBucket)

	found := tree.RangeSearch(geom.AABB{X1: 0.25, Y1: 0.25, X2: 0.75, Y2: 0.75})
	assert.Len(t, found, 600, "each straddling box is stored and reported twice")
}

func TestEveryBoxReachable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	boxes := make([]geom.AABB, 500)
	for i := range boxes {
		x, y := rng.Float64()*100, rng.Float64()*20
		boxes[i] = geom.AABB{X1: x, Y1: y, X2: x + 0.1 + rng.Float64()*3, Y2: y + 0.1 + rng.Float64()}
	}
	tree, err := Build(boxes, 8)
	require.NoError(t, err)

	for _, b := range boxes {
		assert.True(t, unique(tree.RangeSearch(b))[b], "box %+v", b)
	}
}

func TestRangeSearchMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	// A tile floor on integer coordinates puts box edges exactly on split
	// planes; scattered platforms add irregular geometry on top.
	var boxes []geom.AABB
	for x := -20; x < 20; x++ {
		for y := -3; y < 0; y++ {
			boxes = append(boxes, geom.AABB{X1: float64(x), Y1: float64(y), X2: float64(x + 1), Y2: float64(y + 1)})
		}
	}
	for i := 0; i < 150; i++ {
		x, y := rng.Float64()*40-20, rng.Float64()*10
		boxes = append(boxes, geom.AABB{X1: x, Y1: y, X2: x + 0.25 + rng.Float64()*2, Y2: y + 0.25})
	}

	tree, err := Build(boxes, 8)
	require.NoError(t, err)

	check := func(q geom.AABB) {
		found := tree.RangeSearch(q)
		for _, b := range found {
			require.True(t, geom.Overlaps(q, *b), "unsound result %+v for %+v", *b, q)
		}
		assert.Equal(t, bruteForce(boxes, q), unique(found), "query %+v", q)
	}

	for i := 0; i < 500; i++ {
		x, y := rng.Float64()*44-22, rng.Float64()*16-4
		check(geom.NewAABB(x, y, x+rng.Float64()*3, y+rng.Float64()*3))
	}
	// Queries whose minimum sits exactly on a tile edge.
	for x := -20; x < 20; x++ {
		check(geom.AABB{X1: float64(x), Y1: -0.5, X2: float64(x) + 0.5, Y2: 0.5})
		check(geom.AABB{X1: float64(x), Y1: -1, X2: float64(x) + 0.1, Y2: 0})
	}
}

func TestNoOverlapReturnsEmpty(t *testing.T) {
	tree, err := Build(tileRow(300), 16)
	require.NoError(t, err)

	assert.Empty(t, tree.RangeSearch(geom.AABB{X1: -10, Y1: -10, X2: -5, Y2: -5}))
	// Touching the top edge is not an overlap.
	assert.Empty(t, tree.RangeSearch(geom.AABB{X1: 0, Y1: 0.5, X2: 300, Y2: 1}))
}

func TestAppendRangeReusesBuffer(t *testing.T) {
	tree, err := Build(tileRow(300), 16)
	require.NoError(t, err)

	buf := make([]*geom.AABB, 0, 64)
	buf = tree.AppendRange(buf[:0], geom.AABB{X1: 10.25, Y1: 0, X2: 12.25, Y2: 1})
	assert.Len(t, unique(buf), 3)

	buf = tree.AppendRange(buf[:0], geom.AABB{X1: 100.25, Y1: 0, X2: 100.75, Y2: 1})
	require.Len(t, buf, 1)
	assert.Equal(t, geom.AABB{X1: 100, Y1: 0, X2: 100.5, Y2: 0.5}, *buf[0])
}

func TestWalkVisitsEverySplit(t *testing.T) {
	tree, err := Build(tileRow(300), 16)
	require.NoError(t, err)

	bounds := tree.Bounds()
	assert.Equal(t, geom.AABB{X1: 0, Y1: 0, X2: 299.5, Y2: 0.5}, bounds)

	var splits int
	tree.Walk(bounds, func(axis Axis, boundary float64, region geom.AABB) {
		splits++
		assert.Equal(t, AxisX, axis)
		assert.GreaterOrEqual(t, boundary, region.X1)
		assert.LessOrEqual(t, boundary, region.X2)
	})
	assert.Equal(t, tree.Stats().Splits, splits)
	assert.Positive(t, splits)
}

func TestRelease(t *testing.T) {
	tree, err := Build(tileRow(300), 16)
	require.NoError(t, err)

	tree.Release()
	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.RangeSearch(geom.AABB{X1: 0, Y1: 0, X2: 300, Y2: 1}))
	assert.Equal(t, Stats{}, tree.Stats())

	var zero Tree
	assert.Empty(t, zero.RangeSearch(geom.AABB{X1: 0, Y1: 0, X2: 1, Y2: 1}))
}

func TestNilTreeIsEmpty(t *testing.T) {
	var tree *Tree

	assert.Empty(t, tree.RangeSearch(geom.AABB{X2: 1, Y2: 1}))
	assert.Equal(t, Stats{}, tree.Stats())
	assert.Equal(t, geom.AABB{}, tree.Bounds())
	assert.Zero(t, tree.Len())

	calls := 0
	tree.Walk(geom.AABB{X2: 1, Y2: 1}, func(Axis, float64, geom.AABB) { calls++ })
	assert.Zero(t, calls)
	assert.NotPanics(t, tree.Release)
}
