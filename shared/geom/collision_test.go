package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAABBNormalizes(t *testing.T) {
	b := NewAABB(2, 3, -1, 0)
	assert.Equal(t, AABB{X1: -1, Y1: 0, X2: 2, Y2: 3}, b)
	assert.Equal(t, b, b.Normalize())
}

func TestOverlapTable(t *testing.T) {
	unit := AABB{0, 0, 1, 1}

	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"identical", unit, true},
		{"contained", AABB{0.25, 0.25, 0.75, 0.75}, true},
		{"partial right", AABB{0.5, 0, 1.5, 1}, true},
		{"separated on X", AABB{2, 0, 3, 1}, false},
		{"separated on Y", AABB{0, -3, 1, -2}, false},
		{"shared right edge", AABB{1, 0, 2, 1}, false},
		{"shared top edge", AABB{0, 1, 1, 2}, false},
		{"shared corner", AABB{1, 1, 2, 2}, false},
		{"zero width inside", AABB{0.5, 0.2, 0.5, 0.8}, true},
		{"zero width on edge", AABB{1, 0.2, 1, 0.8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(unit, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, unit), "symmetry")
		})
	}
}

func TestMinimumPenetrationAxis(t *testing.T) {
	tests := []struct {
		name     string
		a, b     AABB
		normal   Vector
		distance float64
	}{
		{
			name:     "resting slightly inside ground",
			a:        AABB{0, 0.875, 1, 1.875},
			b:        AABB{-5, -1, 5, 1},
			normal:   Vector{Y: 1},
			distance: 0.125,
		},
		{
			name:     "ceiling above",
			a:        AABB{0, 0, 1, 1},
			b:        AABB{-5, 0.75, 5, 2},
			normal:   Vector{Y: -1},
			distance: 0.25,
		},
		{
			name:     "wall on the left",
			a:        AABB{0.875, 0, 1.875, 1},
			b:        AABB{0, -5, 1, 5},
			normal:   Vector{X: 1},
			distance: 0.125,
		},
		{
			name:     "wall on the right",
			a:        AABB{0, 0, 1, 1},
			b:        AABB{0.75, -5, 3, 5},
			normal:   Vector{X: -1},
			distance: 0.25,
		},
		{
			name:     "equal overlap resolves along Y",
			a:        AABB{0, 0, 1, 1},
			b:        AABB{0.5, 0.5, 1.5, 1.5},
			normal:   Vector{Y: -1},
			distance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Test(tt.a, tt.b)
			require.True(t, ok)
			assert.Equal(t, tt.normal, c.Normal)
			assert.InDelta(t, tt.distance, c.Distance, 1e-9)

			separated := tt.a.Translate(c.Push())
			assert.False(t, Overlaps(separated, tt.b), "push must separate")
		})
	}
}

func TestCoincidentCentersPushPositive(t *testing.T) {
	c, ok := Test(AABB{0, 0, 1, 2}, AABB{0, 0, 1, 2})
	require.True(t, ok)
	assert.Equal(t, Vector{X: 1}, c.Normal)
	assert.InDelta(t, 1.0, c.Distance, 1e-9)
}

func TestOverlapSymmetryRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomBox := func() AABB {
		x, y := rng.Float64()*4, rng.Float64()*4
		return NewAABB(x, y, x+rng.Float64()*2, y+rng.Float64()*2)
	}

	for i := 0; i < 2000; i++ {
		a, b := randomBox(), randomBox()
		ab, okAB := Test(a, b)
		ba, okBA := Test(b, a)
		require.Equal(t, okAB, okBA)
		if !okAB {
			continue
		}
		// Normals are antiparallel unless the centers coincide on the chosen axis.
		ca, cb := a.Center(), b.Center()
		if (ab.Normal.X != 0 && ca.X == cb.X) || (ab.Normal.Y != 0 && ca.Y == cb.Y) {
			continue
		}
		assert.Equal(t, ab.Normal.Scale(-1), ba.Normal)
		assert.InDelta(t, ab.Distance, ba.Distance, 1e-12)
	}
}

func TestTranslateIsPure(t *testing.T) {
	b := AABB{0, 0, 1, 1}
	moved := Translate(b, Vector{X: 2, Y: -1})
	assert.Equal(t, AABB{2, -1, 3, 0}, moved)
	assert.Equal(t, AABB{0, 0, 1, 1}, b)
}

func TestContainsPointTop(t *testing.T) {
	ground := AABB{0, -1, 2, 0}
	assert.True(t, ground.ContainsPointTop(Vector{X: 1, Y: -0.1}))
	assert.False(t, ground.ContainsPointTop(Vector{X: 2, Y: -0.1}), "edge is not support")
	assert.False(t, ground.ContainsPointTop(Vector{X: 1, Y: 0.1}), "point above the top")
}

func TestVectorMath(t *testing.T) {
	v := Vector{X: 1, Y: -2}
	assert.Equal(t, Vector{X: 1.5, Y: -1.5}, v.Add(Vector{X: 0.5, Y: 0.5}))
	assert.Equal(t, Vector{X: 2, Y: -4}, v.Scale(2))
	assert.Equal(t, v, FromVec2(v.Vec2()))
}
