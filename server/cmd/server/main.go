package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/robots/server/core"
)

func main() {
	cfg := core.DefaultServerConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	flag.UintVar(&cfg.SyncPort, "syncport", cfg.SyncPort, "Replication transport port (0 disables players)")
	flag.IntVar(&cfg.TickRate, "tickrate", cfg.TickRate, "Server tick rate (updates per second)")
	flag.StringVar(&cfg.LevelPath, "level", cfg.LevelPath, "Path to a .tmx or .map level")
	flag.IntVar(&cfg.LeafSize, "leafsize", cfg.LeafSize, "k-d tree bucket size")
	flag.Float64Var(&cfg.PixelsPerUnit, "ppu", cfg.PixelsPerUnit, "TMX pixels per world unit")
	flag.IntVar(&cfg.MaxClients, "maxclients", cfg.MaxClients, "Maximum spectator WebSocket clients")
	flag.Parse()

	name, level, err := core.LoadLevel(cfg.LevelPath, cfg.PixelsPerUnit)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	server, err := core.NewServer(cfg, name, level)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Stop(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting robots server on %s, players on port %d (tick rate: %d/s, level: %s)",
		cfg.Addr, cfg.SyncPort, cfg.TickRate, name)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
