package main

import (
	"log"

	"github.com/IMxMaYur/health-copilot/config"
	"github.com/IMxMaYur/health-copilot/routes"
	"github.com/IMxMaYur/health-copilot/services"
)

func main() {
	config.LoadEnv()
	if err := config.InitLogger(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	config.InitDB()
	if err := config.InitRedis(); err != nil {
		config.Logger.Fatalf("redis init failed: %v", err)
	}

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(hub)

	addr := ":" + config.Getenv("PORT", "8080")
	config.Logger.Infow("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		config.Logger.Fatalf("server exited: %v", err)
	}
}
