package main

import (
	"log"

	"condoapp/internal/config"
	"condoapp/internal/database"
	"condoapp/internal/devbackend"
	"condoapp/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := config.LoadBackendConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	if err := devbackend.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := devbackend.NewRouter(db, jwt.New(cfg.JWTSecret, cfg.JWTTTL))

	log.Printf("dev backend listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
