package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/robots/assets"
	"github.com/automoto/robots/components"
	cfg "github.com/automoto/robots/config"
	"github.com/automoto/robots/shared/leveldata"
	"github.com/automoto/robots/systems"
	"github.com/automoto/robots/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level: the player, the patrolling robots and the
// camera that follows them.
type PlatformerScene struct {
	ecs   *ecs.ECS
	name  string
	level *leveldata.Level
	once  sync.Once
	err   error
}

func NewPlatformerScene(name string, level *leveldata.Level) *PlatformerScene {
	return &PlatformerScene{name: name, level: level}
}

func (ps *PlatformerScene) Update() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	if ps.err != nil {
		return ps.err
	}
	ps.ecs.Update()
	return nil
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() error {
	assets.PreloadAllAnimations()

	e := ecs.NewECS(donburi.NewWorld())

	// Input must run before anything that reads it
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateEnemies)
	e.AddSystem(systems.UpdateAttack)
	e.AddSystem(systems.UpdateAnimation)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateSettings)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	if err := Populate(e, ps.name, ps.level); err != nil {
		return fmt.Errorf("configure scene: %w", err)
	}
	ps.ecs = e
	return nil
}

// Populate creates the level, the actor space, the player, every robot and
// the camera in e. The space must exist before any actor is created.
func Populate(e *ecs.ECS, name string, level *leveldata.Level) error {
	levelEntry, err := factory.CreateLevel(e, name, level)
	if err != nil {
		return err
	}
	factory.CreateSpace(e, components.Level.Get(levelEntry).Bounds)

	spawn := factory.PlayerSpawn(level)
	factory.CreatePlayer(e, spawn.Position, spawn.Direction)

	for _, s := range factory.EnemySpawns(level) {
		factory.CreateEnemy(e, s)
	}

	factory.CreateCamera(e, spawn.Position)
	return nil
}
