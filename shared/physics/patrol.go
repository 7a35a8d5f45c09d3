package physics

import "github.com/automoto/robots/shared/geom"

// PatrolParams configure a walker that turns at walls and ledges.
type PatrolParams struct {
	Speed   float64
	Gravity float64
	Limits  Limits
	// Margin grows the collision query on each side.
	Margin geom.Vector
	// SensorDepth is how far below the feet the ledge sensors probe.
	SensorDepth float64
}

// StepEnemy advances a patrolling body by dt.
//
// A wall contact turns the body away from the wall. After the move, a sensor
// under each bottom corner looks for a surface among the step's candidates:
// with no support on the left the body turns right, otherwise with no support
// on the right it turns left. Airborne bodies therefore always face right.
func StepEnemy(body *Body, dt float64, p PatrolParams, index Index) Result {
	nextY, nextVY := Integrate(body.Position.Y, body.VelocityY, p.Gravity, dt, p.Limits)
	next := geom.Vector{X: body.Position.X + body.Direction*p.Speed*dt, Y: nextY}

	res := Resolve(body, next, nextVY, p.Margin, index)
	if res.HitWall {
		body.Direction = res.WallNormal
	}

	res.LeftSupported, res.RightSupported = sense(body, p.SensorDepth)
	switch {
	case !res.LeftSupported:
		body.Direction = 1
	case !res.RightSupported:
		body.Direction = -1
	}
	return res
}

func sense(body *Body, depth float64) (left, right bool) {
	box := body.WorldBox()
	l := geom.Vector{X: box.X1, Y: box.Y1 - depth}
	r := geom.Vector{X: box.X2, Y: box.Y1 - depth}
	for _, c := range body.candidates {
		left = left || c.ContainsPointTop(l)
		right = right || c.ContainsPointTop(r)
	}
	return left, right
}
