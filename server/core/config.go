package core

import (
	"github.com/automoto/robots/shared/gamemath"
	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/physics"
)

// ServerConfig holds the headless server's settings.
type ServerConfig struct {
	Addr          string
	SyncPort      uint // necs replication transport; 0 disables it
	TickRate      int // ticks per second; each tick runs several fixed steps
	LevelPath     string
	LeafSize      int
	PixelsPerUnit float64
	MaxClients    int
	RateLimit     RateLimitConfig
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          ":7373",
		SyncPort:      7374,
		TickRate:      20,
		LevelPath:     "../assets/levels/01.tmx",
		LeafSize:      128,
		PixelsPerUnit: 160,
		MaxClients:    32,
		RateLimit:     DefaultRateLimitConfig,
	}
}

// Physics constants, matching config/config.go values used by the client.
const (
	stepRate = 60

	runSpeed          = 1.0
	jumpHeightMax     = 0.45
	jumpHeightMin     = 0.1
	jumpDistance      = 0.4
	smallJumpDistance = 0.1
	apexSpeed         = 0.1
	terminalVelocity  = 0.7
	playerSize        = 0.1
	playerMargin      = 0.01
	killDepth         = 2.0

	enemySpeed   = 0.35
	enemyWidth   = 0.15
	enemyHeight  = 0.1
	enemyMarginX = 0.01
	enemyMarginY = 0.05
	sensorDepth  = 0.1
	enemyFacing  = -1.0
)

// Spawns used for levels that carry none, as on the client.
var (
	defaultPlayerSpawn = geom.Vector{}
	defaultEnemySpawns = []geom.Vector{{X: 1, Y: 0.01}, {X: -0.5, Y: 1.01}}
)

// stepsPerTick is how many fixed steps one server tick runs: 3 at 20 Hz.
func stepsPerTick(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	steps := stepRate / tickRate
	if steps < 1 {
		steps = 1
	}
	return steps
}

var (
	playerBox = geom.AABB{X2: playerSize, Y2: playerSize}
	enemyBox  = geom.AABB{X2: enemyWidth, Y2: enemyHeight}
	limits    = physics.Limits{TerminalVelocity: terminalVelocity}
)

func playerParams() physics.PlayerParams {
	return physics.PlayerParams{
		RunSpeed:          runSpeed,
		JumpHeightMax:     jumpHeightMax,
		JumpHeightMin:     jumpHeightMin,
		JumpDistance:      jumpDistance,
		SmallJumpDistance: smallJumpDistance,
		Limits:            limits,
		Margin:            geom.Vector{X: playerMargin, Y: playerMargin},
		ApexSpeed:         apexSpeed,
	}
}

func patrolParams() physics.PatrolParams {
	return physics.PatrolParams{
		Speed:       enemySpeed,
		Gravity:     gamemath.JumpGravity(jumpHeightMax, runSpeed, jumpDistance),
		Limits:      limits,
		Margin:      geom.Vector{X: enemyMarginX, Y: enemyMarginY},
		SensorDepth: sensorDepth,
	}
}
