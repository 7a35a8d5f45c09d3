package physics

import "github.com/automoto/robots/shared/gamemath"

// maxVelocityStep bounds the upward velocity change of one step. Gravity is
// negative, so in practice only the lower bound ever applies.
const maxVelocityStep = 100

// Limits bound vertical motion.
type Limits struct {
	// TerminalVelocity caps how much velocity one step may add.
	TerminalVelocity float64
	// MaxFallSpeed floors the velocity itself; zero disables the floor.
	MaxFallSpeed float64
}

// Integrate advances one vertical step of length dt under gravity g.
//
// The velocity change is clamp(g*dt, -TerminalVelocity, maxVelocityStep) and
// the position uses the pre-step velocity: y + vy*dt + g/2*dt².
func Integrate(y, vy, g, dt float64, lim Limits) (nextY, nextVY float64) {
	nextVY = vy + gamemath.Clamp(g*dt, -lim.TerminalVelocity, maxVelocityStep)
	if lim.MaxFallSpeed > 0 && nextVY < -lim.MaxFallSpeed {
		nextVY = -lim.MaxFallSpeed
	}
	nextY = y + vy*dt + g/2*dt*dt
	return nextY, nextVY
}
