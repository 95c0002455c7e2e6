package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"buddha-num-conv/internal/api"
	"buddha-num-conv/internal/config"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	gin.SetMode(cfg.Mode)
	router := api.NewRouter(cfg)

	log.Printf("Listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
