package core

import (
	"log"
	"sync"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second (%d steps per tick)", g.tickRate, stepsPerTick(g.tickRate))

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.server.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}
