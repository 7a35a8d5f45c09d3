package physics

import "github.com/automoto/robots/shared/geom"

// CeilingRelease is the downward speed a body is given, at minimum, after
// bumping its head.
const CeilingRelease = 0.01

// Index finds the static boxes overlapping a query. *kdtree.Tree satisfies
// it.
type Index interface {
	AppendRange(dst []*geom.AABB, query geom.AABB) []*geom.AABB
}

// Scan is an Index that tests every box. It returns candidates in slice
// order.
type Scan []geom.AABB

func (s Scan) AppendRange(dst []*geom.AABB, query geom.AABB) []*geom.AABB {
	query = query.Normalize()
	for i := range s {
		if geom.Overlaps(query, s[i]) {
			dst = append(dst, &s[i])
		}
	}
	return dst
}

// Result describes what one step ran into.
type Result struct {
	Candidates int // boxes returned by the index
	Contacts   int // candidates that still overlapped when tested
	HitWall    bool
	WallNormal float64 // X normal of the last wall contact
	HitCeiling bool
	Landed     bool

	// Ground sensors, filled in by StepEnemy only.
	LeftSupported  bool
	RightSupported bool
}

// Resolve moves body to next, correcting for level geometry, and commits the
// corrected position and velocity.
//
// The query is the tentative box at next grown by margin on each side. Each
// candidate, in the order the index returns them, is tested against the
// tentative box as corrected so far; an overlap pushes the box out along the
// collision normal by the penetration depth. An X normal moves X only. A Y
// normal moves Y only: from below it grounds the body and stops its fall,
// from above it forces the body downward.
//
// Grounded is recomputed on every call.
func Resolve(body *Body, next geom.Vector, nextVY float64, margin geom.Vector, index Index) Result {
	query := body.BoxAt(next).Expand(margin.X, margin.Y)
	body.candidates = index.AppendRange(body.candidates[:0], query)

	res := Result{Candidates: len(body.candidates)}
	for _, c := range body.candidates {
		hit, ok := geom.Test(body.BoxAt(next), *c)
		if !ok {
			continue
		}
		res.Contacts++
		next = next.Add(hit.Push())

		switch {
		case hit.Normal.X != 0:
			res.HitWall = true
			res.WallNormal = hit.Normal.X
		case hit.Normal.Y > 0:
			res.Landed = true
			nextVY = 0
		default:
			res.HitCeiling = true
			nextVY = min(body.VelocityY, -CeilingRelease)
		}
	}

	body.Position = next
	body.VelocityY = nextVY
	body.Grounded = res.Landed
	return res
}
