package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"

	"github.com/automoto/robots/shared/leveldata"
	"github.com/automoto/robots/shared/physics"
	"github.com/automoto/robots/shared/protocol"
)

// Server runs the simulation on a ticker. Players join over the necs
// replication transport; HTTP serves metrics, level info and a spectator
// snapshot stream.
type Server struct {
	cfg       ServerConfig
	loop      *GameLoop
	hub       *Hub
	net       *netClients
	limiter   *IPRateLimiter
	http      *http.Server
	transport *transports.WsServerTransport

	stop     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex // guards sim, pending and syncing
	sim     *Simulation
	pending map[donburi.Entity]physics.PlayerInput
	syncing bool

	snapMu   sync.RWMutex
	snapshot Snapshot
}

// NewServer builds the simulation for level and marks its actors for network
// sync. Nothing runs until Start.
func NewServer(cfg ServerConfig, name string, level *leveldata.Level) (*Server, error) {
	if err := protocol.RegisterComponents(); err != nil {
		return nil, fmt.Errorf("register components: %w", err)
	}

	sim, err := NewSimulation(name, level, cfg.LeafSize)
	if err != nil {
		return nil, err
	}
	sim.OnQuery = func(n int) { rangeCandidates.Observe(float64(n)) }

	info := sim.Level()
	RecordTreeStats(info.Tree)
	log.Printf("Loaded level %s: %d boxes, %d leaves, depth %d, %d stored",
		info.Name, info.Boxes, info.Tree.Leaves, info.Tree.Depth, info.Tree.Stored)

	s := &Server{
		cfg:     cfg,
		sim:     sim,
		pending: make(map[donburi.Entity]physics.PlayerInput),
		stop:    make(chan struct{}),
	}

	// Set up the world for esync
	srvsync.UseEsync(sim.World())
	// NetworkSync adds components, so collect before changing archetypes
	var actors []donburi.Entity
	sim.EachActor(func(e *donburi.Entry) { actors = append(actors, e.Entity()) })
	for _, entity := range actors {
		if err := s.replicate(entity); err != nil {
			return nil, err
		}
	}

	s.loop = NewGameLoop(s, cfg.TickRate)
	s.hub = NewHub(cfg.MaxClients)
	s.net = newNetClients(s)
	s.limiter = NewIPRateLimiter(cfg.RateLimit)
	s.snapshot = sim.Snapshot()
	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// replicate marks entity for network sync with interpolation for its body.
func (s *Server) replicate(entity donburi.Entity) error {
	err := srvsync.NetworkSync(s.sim.World(), &entity,
		srvsync.WithInterp(protocol.NetBody),
		protocol.NetActor,
	)
	if err != nil {
		return fmt.Errorf("network sync: %w", err)
	}
	return nil
}

// Handler returns the HTTP routes without starting anything.
func (s *Server) Handler() http.Handler {
	return NewRouter(RouterConfig{
		State:       s,
		Hub:         s.hub,
		RateLimiter: s.limiter,
	})
}

// Start runs the game loop, the hub and the replication transport, then
// serves HTTP until Stop.
func (s *Server) Start() error {
	go s.loop.Run()
	go s.hub.Run(s.stop)

	if s.cfg.SyncPort != 0 {
		s.net.register()
		s.transport = transports.NewWsServerTransport(s.cfg.SyncPort, "", nil)
		s.mu.Lock()
		s.syncing = true
		s.mu.Unlock()

		go func() {
			log.Printf("Replication transport on port %d", s.cfg.SyncPort)
			if err := s.transport.Start(); err != nil {
				log.Printf("Replication transport error: %v", err)
			}
		}()
	}

	log.Printf("Listening on %s", s.cfg.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop halts the loop and the hub and shuts the HTTP server down.
func (s *Server) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		s.loop.Stop()
		close(s.stop)
		s.limiter.Stop()
	})
	return s.http.Shutdown(ctx)
}

// Join spawns a player for a new client and marks it for network sync.
func (s *Server) Join() donburi.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	entity := s.sim.AddPlayer()
	if err := s.replicate(entity); err != nil {
		log.Printf("Failed to setup network sync for player: %v", err)
	}
	return entity
}

// QueueInput records the latest input for entity; the next tick applies it.
func (s *Server) QueueInput(entity donburi.Entity, in physics.PlayerInput) {
	s.mu.Lock()
	s.pending[entity] = in
	s.mu.Unlock()
}

func (s *Server) Leave(entity donburi.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, entity)
	s.sim.RemovePlayer(entity)
}

// ProcessCommands applies queued input. The caller holds s.mu.
func (s *Server) ProcessCommands() {
	for entity, in := range s.pending {
		s.sim.SetInput(entity, in)
		delete(s.pending, entity)
	}
}

func (s *Server) tick() {
	start := time.Now()

	s.mu.Lock()
	s.ProcessCommands()
	dt := 1.0 / stepRate
	for i := 0; i < stepsPerTick(s.cfg.TickRate); i++ {
		s.sim.Step(dt)
	}
	if s.syncing {
		if err := srvsync.DoSync(); err != nil {
			log.Printf("Sync error: %v", err)
		}
	}
	snap := s.sim.Snapshot()
	players, enemies := s.sim.Counts()
	s.mu.Unlock()

	RecordEntities(players, enemies)
	s.publish(snap)
	tickDuration.Observe(time.Since(start).Seconds())
}

func (s *Server) publish(snap Snapshot) {
	s.snapMu.Lock()
	s.snapshot = snap
	s.snapMu.Unlock()

	if s.hub.ClientCount() == 0 {
		return
	}
	msg, err := encodeSnapshot(snap)
	if err != nil {
		log.Printf("Snapshot encode error: %v", err)
		return
	}
	s.hub.Broadcast(msg)
}

// Snapshot returns the last published snapshot.
func (s *Server) Snapshot() Snapshot {
	s.snapMu.RLock()
	defer s.snapMu.RUnlock()
	return s.snapshot
}

func (s *Server) Level() LevelInfo {
	return s.sim.Level()
}

// PlayerCount returns the number of connected players
func (s *Server) PlayerCount() int {
	return s.net.Count()
}
