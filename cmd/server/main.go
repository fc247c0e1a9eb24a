// Package main - Entry point for the intake review server
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"bitterroot-intake/api"
	"bitterroot-intake/internal/config"
	"bitterroot-intake/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "Server address (overrides config)")
	cfgPath := flag.String("config", "intake.hcl", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	config.Set(cfg)
	if err := logging.Initialize(cfg.Logging); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	apiServer := api.NewServer(version)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("🌲 Bitterroot Intake Review Server v%s\n", version)
	fmt.Printf("   API: http://localhost%s/api\n", listen)
	fmt.Println()

	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Fatal(err)
	}
}
