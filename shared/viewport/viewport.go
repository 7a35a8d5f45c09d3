// Package viewport maps y-up world coordinates onto the screen through a
// perspective camera looking down the -Z axis at the z=0 plane.
package viewport

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/robots/shared/geom"
)

const (
	DefaultFOV      = 45.0 // degrees, vertical
	DefaultDistance = 3.0
	nearPlane       = 0.1
	farPlane        = 100.0
)

// Viewport is a camera centered on a world point.
type Viewport struct {
	Center   geom.Vector
	Distance float64 // eye height above the z=0 plane
	FOV      float64 // vertical field of view in degrees
	Width    int     // screen pixels
	Height   int
}

// New returns a viewport with the default lens centered on the origin.
func New(width, height int) *Viewport {
	return &Viewport{Distance: DefaultDistance, FOV: DefaultFOV, Width: width, Height: height}
}

func (v *Viewport) aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Matrices returns the view and projection matrices.
func (v *Viewport) Matrices() (view, projection mgl64.Mat4) {
	eye := v.Center.Vec2().Vec3(v.Distance)
	target := v.Center.Vec2().Vec3(0)
	view = mgl64.LookAtV(eye, target, mgl64.Vec3{0, 1, 0})
	projection = mgl64.Perspective(mgl64.DegToRad(v.FOV), v.aspect(), nearPlane, farPlane)
	return view, projection
}

// Project returns the screen position of p, with y growing downward.
func (v *Viewport) Project(p geom.Vector) (x, y float64) {
	view, projection := v.Matrices()
	return v.project(p, view, projection)
}

func (v *Viewport) project(p geom.Vector, view, projection mgl64.Mat4) (x, y float64) {
	win := mgl64.Project(p.Vec2().Vec3(0), view, projection, 0, 0, v.Width, v.Height)
	return win.X(), float64(v.Height) - win.Y()
}

// ProjectBox returns the screen rectangle of b: top-left corner and size.
func (v *Viewport) ProjectBox(b geom.AABB) (x, y, w, h float64) {
	view, projection := v.Matrices()
	b = b.Normalize()
	x1, y1 := v.project(geom.Vector{X: b.X1, Y: b.Y2}, view, projection)
	x2, y2 := v.project(geom.Vector{X: b.X2, Y: b.Y1}, view, projection)
	return x1, y1, x2 - x1, y2 - y1
}

// PixelsPerUnit is the on-screen size of one world unit on the z=0 plane.
func (v *Viewport) PixelsPerUnit() float64 {
	return float64(v.Height) / (2 * v.halfHeight())
}

func (v *Viewport) halfHeight() float64 {
	return v.Distance * math.Tan(mgl64.DegToRad(v.FOV)/2)
}

// VisibleRect returns the world rectangle on screen, grown by margin on
// every side.
func (v *Viewport) VisibleRect(margin float64) geom.AABB {
	hh := v.halfHeight()
	hw := hh * v.aspect()
	return geom.AABB{
		X1: v.Center.X - hw - margin,
		Y1: v.Center.Y - hh - margin,
		X2: v.Center.X + hw + margin,
		Y2: v.Center.Y + hh + margin,
	}
}

// Unproject maps a screen position back onto the z=0 plane.
func (v *Viewport) Unproject(x, y float64) geom.Vector {
	ppu := v.PixelsPerUnit()
	return geom.Vector{
		X: v.Center.X + (x-float64(v.Width)/2)/ppu,
		Y: v.Center.Y - (y-float64(v.Height)/2)/ppu,
	}
}
