package core

import (
	"fmt"
	"sort"

	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/geom"
	"github.com/automoto/robots/shared/kdtree"
	"github.com/automoto/robots/shared/leveldata"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/shared/protocol"
)

type simPlayerData struct {
	physics.Player
	ID    int
	Input physics.PlayerInput
	Spawn geom.Vector
}

type simEnemyData struct {
	physics.Body
	Index int
}

var (
	simPlayer = donburi.NewComponentType[simPlayerData]()
	simEnemy  = donburi.NewComponentType[simEnemyData]()
)

// EntityState is one entity as seen by clients.
type EntityState struct {
	ID        int     `json:"id"`
	Kind      string  `json:"kind"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	Direction float64 `json:"direction"`
	State     string  `json:"state,omitempty"`
}

// Snapshot is the world after one tick.
type Snapshot struct {
	Tick     uint64        `json:"tick"`
	Entities []EntityState `json:"entities"`
}

// LevelInfo describes the loaded level and the shape of its tree.
type LevelInfo struct {
	Name         string       `json:"name"`
	Boxes        int          `json:"boxes"`
	Bounds       geom.AABB    `json:"bounds"`
	Tree         kdtree.Stats `json:"tree"`
	PlayerSpawns int          `json:"playerSpawns"`
	EnemySpawns  int          `json:"enemySpawns"`
}

// Simulation steps the level's players and enemies against its tree. It is
// not safe for concurrent use.
type Simulation struct {
	world  donburi.World
	tree   *kdtree.Tree
	info   LevelInfo
	spawn  leveldata.Spawn
	tick   uint64
	nextID int

	// OnQuery, when set, receives the candidate count of every range query.
	OnQuery func(candidates int)
}

// NewSimulation builds the tree for level and spawns its enemies.
func NewSimulation(name string, level *leveldata.Level, leafSize int) (*Simulation, error) {
	tree, err := kdtree.Build(level.Boxes, leafSize)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", name, err)
	}

	s := &Simulation{
		world: donburi.NewWorld(),
		tree:  tree,
		spawn: playerSpawn(level),
		info: LevelInfo{
			Name:         name,
			Boxes:        len(level.Boxes),
			Bounds:       tree.Bounds(),
			Tree:         tree.Stats(),
			PlayerSpawns: len(level.PlayerSpawns),
			EnemySpawns:  len(level.EnemySpawns),
		},
	}

	for _, sp := range enemySpawns(level) {
		entry := s.world.Entry(s.world.Create(simEnemy, protocol.NetBody, protocol.NetActor))
		simEnemy.SetValue(entry, simEnemyData{
			Body:  *physics.NewBody(sp.Position, enemyBox, sp.Direction),
			Index: sp.Index,
		})
	}
	s.syncNet()
	return s, nil
}

// AddPlayer spawns a player at the level's player spawn.
func (s *Simulation) AddPlayer() donburi.Entity {
	entity := s.world.Create(simPlayer, protocol.NetBody, protocol.NetActor)
	p := physics.NewPlayer(s.spawn.Position, playerBox)
	if s.spawn.Direction != 0 {
		p.Direction = s.spawn.Direction
	}
	s.nextID++
	simPlayer.SetValue(s.world.Entry(entity), simPlayerData{
		Player: *p,
		ID:     s.nextID,
		Spawn:  s.spawn.Position,
	})
	s.syncNet()
	return entity
}

func (s *Simulation) RemovePlayer(entity donburi.Entity) {
	if s.world.Valid(entity) {
		s.world.Remove(entity)
	}
}

// SetInput replaces the input a player is driven by until the next call.
func (s *Simulation) SetInput(entity donburi.Entity, in physics.PlayerInput) bool {
	if !s.world.Valid(entity) {
		return false
	}
	entry := s.world.Entry(entity)
	if !entry.HasComponent(simPlayer) {
		return false
	}
	simPlayer.Get(entry).Input = in
	return true
}

// Step advances every entity by one fixed step of dt seconds.
func (s *Simulation) Step(dt float64) {
	params := playerParams()
	simPlayer.Each(s.world, func(e *donburi.Entry) {
		p := simPlayer.Get(e)
		res := physics.StepPlayer(&p.Player, p.Input, dt, params, s.tree)
		s.observe(res)
		if p.WorldBox().Y2 < s.info.Bounds.Y1-killDepth {
			p.Position = p.Spawn
			p.VelocityY = 0
			p.Grounded = false
			p.State = physics.StateIdle
		}
	})

	patrol := patrolParams()
	simEnemy.Each(s.world, func(e *donburi.Entry) {
		enemy := simEnemy.Get(e)
		s.observe(physics.StepEnemy(&enemy.Body, dt, patrol, s.tree))
	})
	s.tick++
	s.syncNet()
}

// syncNet copies every body into its replicated components.
func (s *Simulation) syncNet() {
	simPlayer.Each(s.world, func(e *donburi.Entry) {
		p := simPlayer.Get(e)
		writeNet(e, &p.Body, protocol.NetActorData{
			Kind:  protocol.KindPlayer,
			ID:    p.ID,
			State: p.State.String(),
		})
	})
	simEnemy.Each(s.world, func(e *donburi.Entry) {
		enemy := simEnemy.Get(e)
		writeNet(e, &enemy.Body, protocol.NetActorData{
			Kind: protocol.KindEnemy,
			ID:   enemy.Index,
		})
	})
}

func writeNet(e *donburi.Entry, b *physics.Body, actor protocol.NetActorData) {
	box := b.WorldBox()
	protocol.NetBody.SetValue(e, protocol.NetBodyData{X: box.X1, Y: box.Y1, W: box.Width(), H: box.Height()})
	actor.Direction = b.Direction
	protocol.NetActor.SetValue(e, actor)
}

func (s *Simulation) observe(res physics.Result) {
	if s.OnQuery != nil {
		s.OnQuery(res.Candidates)
	}
}

// Snapshot returns every entity, players first, each kind ordered by ID.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.tick}

	s.EachActor(func(e *donburi.Entry) {
		body := protocol.NetBody.Get(e)
		actor := protocol.NetActor.Get(e)
		snap.Entities = append(snap.Entities, EntityState{
			ID:        actor.ID,
			Kind:      actor.Kind,
			X:         body.X,
			Y:         body.Y,
			W:         body.W,
			H:         body.H,
			Direction: actor.Direction,
			State:     actor.State,
		})
	})

	sort.SliceStable(snap.Entities, func(i, j int) bool {
		a, b := snap.Entities[i], snap.Entities[j]
		if a.Kind != b.Kind {
			return a.Kind == protocol.KindPlayer
		}
		return a.ID < b.ID
	})
	return snap
}

// EachActor visits every player and enemy entry.
func (s *Simulation) EachActor(fn func(e *donburi.Entry)) {
	simPlayer.Each(s.world, fn)
	simEnemy.Each(s.world, fn)
}

// World is the ECS world the actors live in.
func (s *Simulation) World() donburi.World {
	return s.world
}

// Counts returns the number of players and enemies.
func (s *Simulation) Counts() (players, enemies int) {
	simPlayer.Each(s.world, func(*donburi.Entry) { players++ })
	simEnemy.Each(s.world, func(*donburi.Entry) { enemies++ })
	return players, enemies
}

func (s *Simulation) Level() LevelInfo {
	return s.info
}

// Release drops the tree. The simulation must not be stepped afterwards.
func (s *Simulation) Release() {
	s.tree.Release()
}
