package physics

import (
	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/geom"
)

// PlayerState is the movement state derived after every player step.
type PlayerState uint8

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumpingUp
	StateJumpingTop
	StateJumpingDown
)

func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumpingUp:
		return "jumping_up"
	case StateJumpingTop:
		return "jumping_top"
	case StateJumpingDown:
		return "jumping_down"
	default:
		return "unknown"
	}
}

// Airborne reports whether the state is one of the jump states.
func (s PlayerState) Airborne() bool {
	return s >= StateJumpingUp
}

// PlayerParams shape the jump arc. A full jump launched at RunSpeed peaks at
// JumpHeightMax after JumpDistance; letting go of jump while rising switches
// to the arc that peaks at JumpHeightMin after SmallJumpDistance.
type PlayerParams struct {
	RunSpeed          float64
	JumpHeightMax     float64
	JumpHeightMin     float64
	JumpDistance      float64
	SmallJumpDistance float64
	Limits            Limits
	Margin            geom.Vector
	// ApexSpeed is the |VelocityY| under which an airborne player counts as
	// being at the top of the jump.
	ApexSpeed float64
}

// Gravity is the full-jump gravity.
func (p PlayerParams) Gravity() float64 {
	return gamemath.JumpGravity(p.JumpHeightMax, p.RunSpeed, p.JumpDistance)
}

// ShortHopGravity is the gravity applied while rising without jump held.
func (p PlayerParams) ShortHopGravity() float64 {
	return gamemath.JumpGravity(p.JumpHeightMin, p.RunSpeed, p.SmallJumpDistance)
}

// JumpVelocity is the launch speed of a jump.
func (p PlayerParams) JumpVelocity() float64 {
	return gamemath.JumpVelocity(p.JumpHeightMax, p.RunSpeed, p.JumpDistance)
}

// PlayerInput is one frame of player intent.
type PlayerInput struct {
	// MoveX is the analog horizontal axis in [-1, 1].
	MoveX float64
	Jump  bool
}

// Player is a Body driven by input.
type Player struct {
	Body
	State PlayerState

	jumpHeld bool
}

// NewPlayer places a player of the given footprint at pos, facing right.
func NewPlayer(pos geom.Vector, box geom.AABB) *Player {
	return &Player{Body: *NewBody(pos, box, 1)}
}

// StepPlayer advances the player by dt. Jump is edge-triggered and only
// launches from the ground.
func StepPlayer(p *Player, in PlayerInput, dt float64, params PlayerParams, index Index) Result {
	if in.Jump && !p.jumpHeld && p.Grounded {
		p.VelocityY = params.JumpVelocity()
		p.Grounded = false
	}
	p.jumpHeld = in.Jump

	g := params.Gravity()
	if p.VelocityY > 0 && !in.Jump {
		g = params.ShortHopGravity()
	}

	next := p.Position
	moveX := gamemath.Clamp(in.MoveX, -1, 1)
	if moveX != 0 {
		p.Direction = gamemath.Sign(moveX)
		next.X += moveX * params.RunSpeed * dt
	}

	var nextVY float64
	next.Y, nextVY = Integrate(p.Position.Y, p.VelocityY, g, dt, params.Limits)

	res := Resolve(&p.Body, next, nextVY, params.Margin, index)
	p.State = playerState(p, moveX, params.ApexSpeed)
	return res
}

func playerState(p *Player, moveX, apex float64) PlayerState {
	switch {
	case p.Grounded && moveX != 0:
		return StateRunning
	case p.Grounded:
		return StateIdle
	case p.VelocityY > apex:
		return StateJumpingUp
	case p.VelocityY < -apex:
		return StateJumpingDown
	default:
		return StateJumpingTop
	}
}
