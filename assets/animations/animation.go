package animations

import "time"

// Animation walks a sprite sheet of Rows rows with Frames frames each. Every
// FrameDuration it moves one frame to the right, wrapping to the next row
// after the last frame and back to the first row after the last row. Each
// entity owns its own Animation.
type Animation struct {
	FrameDuration time.Duration
	Frames        int
	Rows          int

	elapsed time.Duration
	frame   int
	row     int
}

// Update advances the animation by dt.
func (a *Animation) Update(dt time.Duration) {
	if a.FrameDuration <= 0 || a.Frames <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame = (a.frame + 1) % a.Frames
		if a.frame == 0 && a.Rows > 0 {
			a.row = (a.row + 1) % a.Rows
		}
	}
}

// Frame returns the current column.
func (a *Animation) Frame() int {
	return a.frame
}

// Row returns the current row.
func (a *Animation) Row() int {
	return a.row
}

// Restart goes back to the first frame of the first row.
func (a *Animation) Restart() {
	a.elapsed = 0
	a.frame = 0
	a.row = 0
}

func NewAnimation(frameDuration time.Duration, frames, rows int) *Animation {
	return &Animation{
		FrameDuration: frameDuration,
		Frames:        frames,
		Rows:          rows,
	}
}
