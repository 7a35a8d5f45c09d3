package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/kdtree"
)

const dt = 1.0 / 60

var (
	ground     = geom.AABB{X1: -5, Y1: -1, X2: 5, Y2: 0}
	playerBox  = geom.AABB{X1: 0, Y1: 0, X2: 0.1, Y2: 0.1}
	enemyBox   = geom.AABB{X1: 0, Y1: 0, X2: 0.15, Y2: 0.1}
	fallLimits = Limits{TerminalVelocity: 0.7, MaxFallSpeed: 3}
)

func playerParams() PlayerParams {
	return PlayerParams{
		RunSpeed:          1,
		JumpHeightMax:     0.45,
		JumpHeightMin:     0.1,
		JumpDistance:      0.4,
		SmallJumpDistance: 0.1,
		Limits:            fallLimits,
		Margin:            geom.Vector{X: 0.01, Y: 0.01},
		ApexSpeed:         0.3,
	}
}

func patrolParams() PatrolParams {
	return PatrolParams{
		Speed:       0.35,
		Gravity:     playerParams().Gravity(),
		Limits:      fallLimits,
		Margin:      geom.Vector{X: 0.01, Y: 0.05},
		SensorDepth: 0.1,
	}
}

func TestIntegrate(t *testing.T) {
	t.Run("velocity change is clamped", func(t *testing.T) {
		y, vy := Integrate(0, 0, -100, 0.1, Limits{TerminalVelocity: 0.7})
		assert.InDelta(t, -0.7, vy, 1e-12)
		assert.InDelta(t, -0.5, y, 1e-12)
	})
	t.Run("upward change is capped per step", func(t *testing.T) {
		_, vy := Integrate(0, 0, 5000, 0.1, Limits{TerminalVelocity: 1})
		assert.Equal(t, float64(maxVelocityStep), vy)
	})
	t.Run("zero max fall speed disables the floor", func(t *testing.T) {
		_, vy := Integrate(0, -50, -600, 0.1, Limits{TerminalVelocity: 100})
		assert.InDelta(t, -110, vy, 1e-9)
	})
	t.Run("fall speed is floored", func(t *testing.T) {
		_, vy := Integrate(0, -2.99, -5.625, dt, fallLimits)
		assert.Equal(t, -3.0, vy)
	})
	t.Run("position uses the pre-step velocity", func(t *testing.T) {
		y, vy := Integrate(1, 2, -4, 0.5, Limits{TerminalVelocity: 10})
		assert.InDelta(t, 1+2*0.5-4.0/2*0.25, y, 1e-12)
		assert.InDelta(t, 0, vy, 1e-12)
	})
}

func TestFlatGroundRest(t *testing.T) {
	p := NewPlayer(geom.Vector{}, playerBox)
	params := playerParams()

	for i := 0; i < 120; i++ {
		res := StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})
		require.True(t, res.Landed, "frame %d", i)
	}
	assert.InDelta(t, 0, p.Position.Y, 1e-9)
	assert.Equal(t, 0.0, p.VelocityY)
	assert.True(t, p.Grounded)
	assert.Equal(t, StateIdle, p.State)
}

func TestFallingBodyComesToRest(t *testing.T) {
	p := NewPlayer(geom.Vector{Y: 1}, playerBox)
	params := playerParams()

	for i := 0; i < 300; i++ {
		StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})
		require.False(t, geom.Overlaps(p.WorldBox(), ground), "frame %d", i)
	}
	assert.InDelta(t, 0, p.Position.Y, 1e-9)
	assert.True(t, p.Grounded)
}

func TestFallingOntoTreeGeometry(t *testing.T) {
	var tiles []geom.AABB
	for x := -10; x < 10; x++ {
		tiles = append(tiles, geom.AABB{X1: float64(x) * 0.25, Y1: -0.25, X2: float64(x+1) * 0.25, Y2: 0})
	}
	tree, err := kdtree.Build(tiles, 4)
	require.NoError(t, err)

	p := NewPlayer(geom.Vector{X: -0.05, Y: 0.5}, playerBox)
	for i := 0; i < 200; i++ {
		StepPlayer(p, PlayerInput{}, dt, playerParams(), tree)
	}
	assert.InDelta(t, 0, p.Position.Y, 1e-9)
	assert.InDelta(t, -0.05, p.Position.X, 1e-12)
	assert.True(t, p.Grounded)
}

func TestWallStopsPlayer(t *testing.T) {
	wall := geom.AABB{X1: 0.5, Y1: 0, X2: 1, Y2: 2}
	p := NewPlayer(geom.Vector{}, playerBox)

	var hit bool
	for i := 0; i < 90; i++ {
		res := StepPlayer(p, PlayerInput{MoveX: 1}, dt, playerParams(), Scan{ground, wall})
		hit = hit || res.HitWall
		require.LessOrEqual(t, p.WorldBox().X2, 0.5+1e-9, "frame %d", i)
	}
	assert.True(t, hit)
	assert.InDelta(t, 0.4, p.Position.X, 1e-9)
	assert.Equal(t, 1.0, p.Direction)
	assert.Equal(t, StateRunning, p.State)
}

func TestCeilingEndsJump(t *testing.T) {
	ceiling := geom.AABB{X1: -1, Y1: 0.3, X2: 1, Y2: 0.5}
	level := Scan{ground, ceiling}
	p := NewPlayer(geom.Vector{}, playerBox)
	params := playerParams()

	StepPlayer(p, PlayerInput{}, dt, params, level)
	require.True(t, p.Grounded)

	var bumped bool
	for i := 0; i < 120; i++ {
		res := StepPlayer(p, PlayerInput{Jump: true}, dt, params, level)
		require.LessOrEqual(t, p.WorldBox().Y2, 0.3+1e-9, "frame %d", i)
		if res.HitCeiling {
			bumped = true
			assert.LessOrEqual(t, p.VelocityY, -CeilingRelease)
		}
	}
	assert.True(t, bumped)
	assert.True(t, p.Grounded, "lands again")
}

func TestJumpArc(t *testing.T) {
	p := NewPlayer(geom.Vector{}, playerBox)
	params := playerParams()
	StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})

	var peak float64
	var states []PlayerState
	for i := 0; i < 90; i++ {
		StepPlayer(p, PlayerInput{Jump: true}, dt, params, Scan{ground})
		peak = max(peak, p.Position.Y)
		states = append(states, p.State)
	}

	assert.InDelta(t, params.JumpHeightMax, peak, 1e-3)
	assert.Equal(t, StateJumpingUp, states[0])
	assert.Contains(t, states, StateJumpingTop)
	assert.Contains(t, states, StateJumpingDown)
	assert.Equal(t, StateIdle, p.State, "holding jump after landing does not relaunch")
	assert.True(t, p.Grounded)
}

func TestShortHop(t *testing.T) {
	p := NewPlayer(geom.Vector{}, playerBox)
	params := playerParams()
	StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})

	StepPlayer(p, PlayerInput{Jump: true}, dt, params, Scan{ground})
	var peak float64
	for i := 0; i < 60; i++ {
		StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})
		peak = max(peak, p.Position.Y)
	}

	assert.Greater(t, peak, params.JumpHeightMin)
	assert.Less(t, peak, 0.2)
}

func TestJumpNeedsGround(t *testing.T) {
	p := NewPlayer(geom.Vector{Y: 1}, playerBox)
	params := playerParams()

	StepPlayer(p, PlayerInput{Jump: true}, dt, params, Scan{ground})
	assert.Less(t, p.VelocityY, 0.0, "no jump in mid-air")

	for i := 0; i < 200; i++ {
		StepPlayer(p, PlayerInput{Jump: true}, dt, params, Scan{ground})
	}
	require.True(t, p.Grounded, "held jump does not fire on landing")

	StepPlayer(p, PlayerInput{}, dt, params, Scan{ground})
	StepPlayer(p, PlayerInput{Jump: true}, dt, params, Scan{ground})
	assert.Greater(t, p.VelocityY, 0.0, "fresh press launches")
}

func TestAnalogInputScalesRunAndSetsFacing(t *testing.T) {
	p := NewPlayer(geom.Vector{}, playerBox)
	StepPlayer(p, PlayerInput{MoveX: -0.5}, dt, playerParams(), Scan{ground})
	assert.InDelta(t, -0.5*dt, p.Position.X, 1e-12)
	assert.Equal(t, -1.0, p.Direction)
}

func TestResolveTestsAgainstCorrectedBox(t *testing.T) {
	// A box reported twice, as a tree does for boxes stored on both sides
	// of a split, must only push once.
	body := NewBody(geom.Vector{Y: -0.0625}, geom.AABB{X2: 0.125, Y2: 0.125}, 1)
	res := Resolve(body, body.Position, -1, geom.Vector{}, Scan{ground, ground})

	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, 1, res.Contacts)
	assert.Equal(t, 0.0, body.Position.Y)
	assert.Equal(t, 0.0, body.VelocityY)
	assert.True(t, body.Grounded)
}

func TestResolveIsOrderDependent(t *testing.T) {
	floor := geom.AABB{X1: -1, Y1: -1, X2: 1, Y2: 0}
	step := geom.AABB{X1: 0.5, Y1: -1, X2: 1.5, Y2: 0.0625}
	box := geom.AABB{X1: 0, Y1: 0, X2: 0.125, Y2: 0.125}
	start := geom.Vector{X: 0.4375, Y: -0.03125}

	floorFirst := NewBody(start, box, 1)
	res := Resolve(floorFirst, start, 0, geom.Vector{}, Scan{floor, step})
	assert.Equal(t, geom.Vector{X: 0.4375, Y: 0.0625}, floorFirst.Position, "climbs onto the step")
	assert.False(t, res.HitWall)
	assert.True(t, res.Landed)

	stepFirst := NewBody(start, box, 1)
	res = Resolve(stepFirst, start, 0, geom.Vector{}, Scan{step, floor})
	assert.Equal(t, geom.Vector{X: 0.375, Y: 0}, stepFirst.Position, "stopped by the step")
	assert.True(t, res.HitWall)
	assert.Equal(t, -1.0, res.WallNormal)
	assert.True(t, res.Landed)
}

func TestResolveWithNothingNearby(t *testing.T) {
	body := NewBody(geom.Vector{X: 3, Y: 3}, playerBox, 1)
	res := Resolve(body, geom.Vector{X: 3, Y: 2.9}, -1, geom.Vector{X: 0.01, Y: 0.01}, Scan{ground})
	assert.Equal(t, Result{}, res)
	assert.Equal(t, geom.Vector{X: 3, Y: 2.9}, body.Position)
	assert.False(t, body.Grounded)
}

func TestEnemyBouncesOffWall(t *testing.T) {
	wall := geom.AABB{X1: 1, Y1: 0, X2: 1.2, Y2: 1}
	e := NewBody(geom.Vector{X: 0.5}, enemyBox, 1)

	var turned bool
	for i := 0; i < 150; i++ {
		res := StepEnemy(e, dt, patrolParams(), Scan{ground, wall})
		require.LessOrEqual(t, e.WorldBox().X2, 1+1e-9, "frame %d", i)
		if res.HitWall {
			turned = true
			assert.Equal(t, -1.0, e.Direction)
		}
	}
	assert.True(t, turned)
	assert.Equal(t, -1.0, e.Direction)
	assert.Less(t, e.Position.X, 0.75)
	assert.InDelta(t, 0, e.Position.Y, 1e-9)
}

func TestEnemyBouncesOffLeftWall(t *testing.T) {
	wall := geom.AABB{X1: -1.2, Y1: 0, X2: -1, Y2: 1}
	e := NewBody(geom.Vector{X: -0.5}, enemyBox, -1)

	hitFrame := -1
	for i := 0; i < 200; i++ {
		before := e.Direction
		res := StepEnemy(e, dt, patrolParams(), Scan{ground, wall})
		require.False(t, geom.Overlaps(e.WorldBox(), wall), "frame %d", i)
		if hitFrame < 0 {
			if !res.HitWall {
				require.Equal(t, -1.0, e.Direction, "frame %d", i)
				continue
			}
			hitFrame = i
			assert.Equal(t, -1.0, before)
			assert.Equal(t, 1.0, e.Direction, "flips on the contact frame")
			assert.Equal(t, 1.0, res.WallNormal)
		}
	}
	require.GreaterOrEqual(t, hitFrame, 0)
	assert.Equal(t, 1.0, e.Direction)
	assert.Greater(t, e.Position.X, -0.75)
}

func TestResolveLeavesNoOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	obstacle := geom.AABB{X1: -0.5, Y1: -0.5, X2: 0.5, Y2: 0}
	// Coordinates on a 1/1024 grid keep the pushes exact
	grid := func(lo, hi float64) float64 {
		return math.Round((lo+rng.Float64()*(hi-lo))*1024) / 1024
	}

	for i := 0; i < 2000; i++ {
		start := geom.Vector{X: grid(-0.6, 0.5), Y: grid(-0.6, 0.05)}
		body := NewBody(start, playerBox, 1)
		Resolve(body, start, 0, geom.Vector{}, Scan{obstacle})
		require.False(t, geom.Overlaps(body.WorldBox(), obstacle), "start %+v", start)
	}
}

func TestEnemyTurnsAtLedges(t *testing.T) {
	platform := geom.AABB{X1: 0, Y1: -1, X2: 1, Y2: 0}
	e := NewBody(geom.Vector{X: 0.5}, enemyBox, 1)

	seen := map[float64]int{}
	prev := e.Direction
	for i := 0; i < 600; i++ {
		res := StepEnemy(e, dt, patrolParams(), Scan{platform})
		box := e.WorldBox()
		require.Greater(t, box.X2, 0.0, "frame %d", i)
		require.Less(t, box.X1, 1.0, "frame %d", i)
		require.InDelta(t, 0, e.Position.Y, 1e-9, "frame %d", i)
		require.True(t, res.LeftSupported || res.RightSupported, "frame %d", i)
		if e.Direction != prev {
			seen[e.Direction]++
			prev = e.Direction
		}
	}
	assert.Positive(t, seen[-1], "turned at the right ledge")
	assert.Positive(t, seen[1], "turned at the left ledge")
}

func TestAirborneEnemyFacesRight(t *testing.T) {
	e := NewBody(geom.Vector{Y: 5}, enemyBox, -1)
	res := StepEnemy(e, dt, patrolParams(), Scan{})
	assert.Equal(t, 0, res.Candidates)
	assert.False(t, res.LeftSupported)
	assert.Equal(t, 1.0, e.Direction)
	assert.False(t, e.Grounded)
}

func TestPlayerStateString(t *testing.T) {
	assert.Equal(t, "jumping_top", StateJumpingTop.String())
	assert.True(t, StateJumpingDown.Airborne())
	assert.False(t, StateRunning.Airborne())
}
