package config

import (
	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/physics"
)

// Limits returns the vertical motion limits shared by every body.
func (p PhysicsConfig) Limits() physics.Limits {
	return physics.Limits{TerminalVelocity: p.TerminalVelocity, MaxFallSpeed: p.MaxFallSpeed}
}

// Box returns the player's local footprint with its origin at the bottom-left.
func (p PlayerConfig) Box() geom.AABB {
	return geom.AABB{X2: p.Width, Y2: p.Height}
}

// Params returns the jump and movement parameters of the player controller.
func (p PlayerConfig) Params() physics.PlayerParams {
	return physics.PlayerParams{
		RunSpeed:          p.RunSpeed,
		JumpHeightMax:     p.JumpHeightMax,
		JumpHeightMin:     p.JumpHeightMin,
		JumpDistance:      p.JumpDistance,
		SmallJumpDistance: p.SmallJumpDistance,
		Limits:            Physics.Limits(),
		Margin:            geom.Vector{X: p.Margin, Y: p.Margin},
		ApexSpeed:         p.ApexSpeed,
	}
}

// Box returns an enemy's local footprint.
func (e EnemyConfig) Box() geom.AABB {
	return geom.AABB{X2: e.Width, Y2: e.Height}
}

// Params returns the patrol parameters. Enemies fall with the player's
// full-jump gravity.
func (e EnemyConfig) Params() physics.PatrolParams {
	return physics.PatrolParams{
		Speed:       e.Speed,
		Gravity:     gamemath.JumpGravity(Player.JumpHeightMax, Player.RunSpeed, Player.JumpDistance),
		Limits:      Physics.Limits(),
		Margin:      geom.Vector{X: e.MarginX, Y: e.MarginY},
		SensorDepth: e.SensorDepth,
	}
}

// Box returns the attack box for a player standing at pos with the given
// facing.
func (a AttackConfig) Box(pos geom.Vector, facing float64) geom.AABB {
	return geom.AABB{X2: a.Width, Y2: a.Height}.Translate(geom.Vector{X: pos.X + facing*a.Reach, Y: pos.Y})
}
