package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Lerp moves from a toward b by t. t is not clamped; callers pass a
// per-frame factor such as speed*dt.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ApplyDeadzone zeroes stick values inside the deadzone and remaps the rest
// so the output still spans [-1, 1].
func ApplyDeadzone(v, deadzone float64) float64 {
	a := math.Abs(v)
	if a <= deadzone || deadzone >= 1 {
		return 0
	}
	return Sign(v) * math.Min((a-deadzone)/(1-deadzone), 1)
}

// JumpGravity is the constant acceleration that makes a jump launched at
// runSpeed peak at height after covering distance horizontally.
// The result is negative (world space is y-up).
func JumpGravity(height, runSpeed, distance float64) float64 {
	return -2 * height * runSpeed * runSpeed / (distance * distance)
}

// JumpVelocity is the launch speed matching JumpGravity for the same
// height, runSpeed and distance.
func JumpVelocity(height, runSpeed, distance float64) float64 {
	return 2 * height * runSpeed / distance
}
