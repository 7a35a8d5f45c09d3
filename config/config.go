package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/kdtree"
)

// Default is the single ECS layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PhysicsConfig contains values shared by every simulated body
type PhysicsConfig struct {
	// TerminalVelocity caps the velocity change of a single step.
	TerminalVelocity float64
	// MaxFallSpeed floors the fall speed itself. Zero disables it.
	MaxFallSpeed float64
	// StepRate is the fixed simulation rate in steps per second.
	StepRate int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	RunSpeed          float64
	JumpHeightMax     float64
	JumpHeightMin     float64
	JumpDistance      float64
	SmallJumpDistance float64
	ApexSpeed         float64 // |vy| below which the jump counts as at its top

	// Dimensions in world units
	Width  float64
	Height float64
	Margin float64 // query margin on every side

	// KillDepth is how far below the level a player may fall before respawning.
	KillDepth float64

	// Sprite sheet frame size in pixels
	FrameWidth  int
	FrameHeight int
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Speed       float64
	Health      int
	Width       float64
	Height      float64
	MarginX     float64
	MarginY     float64
	SensorDepth float64
	Tint        color.RGBA
}

// AttackConfig contains the player attack values
type AttackConfig struct {
	Duration time.Duration
	Width    float64
	Height   float64
	// Reach is the offset of the attack box from the player, along facing.
	Reach  float64
	Damage int
}

// AnimationConfig contains the running animation values
type AnimationConfig struct {
	FrameDuration time.Duration
	Frames        int
	Rows          int
}

// LevelConfig contains level loading configuration values
type LevelConfig struct {
	Dir           string  // level directory inside the asset filesystem
	Name          string  // level stem to load; empty picks the first
	PixelsPerUnit float64 // Tiled pixels per world unit
	LeafSize      int

	// Spawns used when a level format carries none.
	PlayerSpawn geom.Vector
	EnemySpawns []geom.Vector
	EnemyFacing float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FOV             float64 // vertical field of view in degrees
	Distance        float64 // eye height above the level plane
	FollowRate      float64 // lerp factor per second
	LookAhead       float64 // offset along the player's facing
	MaxOffsetY      float64 // how far the camera may trail the player vertically
	CullMargin      float64 // world units drawn beyond the screen edges
	ShakeIntensity  float64 // world units
	ShakeDuration   float32 // seconds
	ShakeFrequencyX float64
	ShakeFrequencyY float64
}

// EffectsConfig contains hit feedback configuration
type EffectsConfig struct {
	FlashDuration float32 // seconds
	FlashColor    color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // draw tree splits, query boxes and sensors
}

// UIConfig contains HUD values
type UIConfig struct {
	Background  color.RGBA
	LevelColor  color.RGBA
	AttackColor color.RGBA
	TextColor   color.RGBA
	HUDMargin   float64
	HUDFontSize float64
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Attack AttackConfig
var Animation AnimationConfig
var Level LevelConfig
var Camera CameraConfig
var Effects EffectsConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1920,
		Height: 1080,
		Title:  "robots",
	}

	Physics = PhysicsConfig{
		TerminalVelocity: 0.7,
		MaxFallSpeed:     0,
		StepRate:         60,
	}

	Player = PlayerConfig{
		RunSpeed:          1,
		JumpHeightMax:     0.45,
		JumpHeightMin:     0.1,
		JumpDistance:      0.4,
		SmallJumpDistance: 0.1,
		ApexSpeed:         0.1,

		Width:  0.1,
		Height: 0.1,
		Margin: 0.01,

		KillDepth: 2,

		FrameWidth:  32,
		FrameHeight: 32,
	}

	Enemy = EnemyConfig{
		Speed:       0.35,
		Health:      10,
		Width:       0.15,
		Height:      0.1,
		MarginX:     0.01,
		MarginY:     0.05,
		SensorDepth: 0.1,
		Tint:        color.RGBA{R: 204, G: 102, B: 102, A: 255},
	}

	Attack = AttackConfig{
		Duration: 200 * time.Millisecond,
		Width:    0.1,
		Height:   0.1,
		Reach:    0.1,
		Damage:   5,
	}

	Animation = AnimationConfig{
		FrameDuration: 64 * time.Millisecond,
		Frames:        3,
		Rows:          2,
	}

	Level = LevelConfig{
		Dir:           "levels",
		PixelsPerUnit: 160,
		LeafSize:      kdtree.DefaultLeafSize,
		PlayerSpawn:   geom.Vector{X: 0, Y: 0},
		EnemySpawns: []geom.Vector{
			{X: 1.0, Y: 0.01},
			{X: -0.5, Y: 1.01},
		},
		EnemyFacing: DirectionLeft,
	}

	Camera = CameraConfig{
		FOV:             45,
		Distance:        3,
		FollowRate:      10,
		LookAhead:       0.05,
		MaxOffsetY:      1,
		CullMargin:      0.22,
		ShakeIntensity:  0.015,
		ShakeDuration:   0.15,
		ShakeFrequencyX: 70,
		ShakeFrequencyY: 90,
	}

	Effects = EffectsConfig{
		FlashDuration: 0.2,
		FlashColor:    White,
	}

	Debug = DebugConfig{
		Enabled: false,
	}

	UI = UIConfig{
		Background:  color.RGBA{R: 26, G: 31, B: 33, A: 255},
		LevelColor:  color.RGBA{R: 77, G: 77, B: 77, A: 255},
		AttackColor: color.RGBA{R: 204, G: 51, B: 51, A: 255},
		TextColor:   White,
		HUDMargin:   10,
		HUDFontSize: 20,
	}
}
