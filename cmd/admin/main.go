package main

import (
	"log"

	"hrbot/internal/admin"
	"hrbot/internal/apiclient"
	"hrbot/internal/config"
)

func main() {
	config.Load()
	cfg := config.LoadAdmin()

	client := apiclient.New(cfg.APIBaseURL)
	server := admin.NewServer(client)

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Admin panel listening on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("admin panel stopped: %v", err)
	}
}
