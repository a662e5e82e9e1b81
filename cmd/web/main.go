package main

import (
	"context"
	"flag"
	"log"

	"f0oster/typowatch/config"
	"f0oster/typowatch/database"
	"f0oster/typowatch/web"
)

func main() {
	configPath := flag.String("config", "settings.env", "Path to the settings file")
	addr := flag.String("addr", "", "Listen address for web server (defaults to WEB_ADDR)")
	flag.Parse()

	cfg, err := config.LoadEnvConfig(*configPath)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *addr != "" {
		cfg.WebAddr = *addr
	}

	ctx := context.Background()
	store, closeStore, err := database.OpenSnapshotStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open snapshot store: %v", err)
	}
	defer closeStore()

	webServer := web.NewServer(store, cfg.SummaryFile, cfg.WebAddr)
	log.Printf("Starting web interface at http://localhost%s", cfg.WebAddr)
	if err := webServer.Start(); err != nil {
		log.Fatalf("Web server error: %v", err)
	}
}
