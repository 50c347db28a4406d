package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/fam-OS/truenorth-sub002/internal/app"
	"github.com/fam-OS/truenorth-sub002/internal/config"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
