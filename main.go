package main

import (
	"fmt"
	"log"

	"github.com/lazharichir/pokerreview/config"
	"github.com/lazharichir/pokerreview/domain"
	"github.com/lazharichir/pokerreview/server"
)

func main() {
	fmt.Println("Starting Poker Review Backend...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatalf("Failed to open %s event store: %v", cfg.Store, err)
	}
	defer store.Close()

	s := server.NewServer(domain.NewReviewer(store))
	if err := s.Start(cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
