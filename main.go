package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/storefront-api/auth"
	"github.com/junaidrashid-git/storefront-api/config"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/services"
	"github.com/junaidrashid-git/storefront-api/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db := initStore(cfg)

	if cfg.SeedAdmin.Email != "" {
		created, err := services.ProvisionAdmin(context.Background(), db,
			cfg.SeedAdmin.Email, cfg.SeedAdmin.Password, cfg.SeedAdmin.Name)
		if err != nil {
			log.Fatalf("❌ Failed to provision admin: %v", err)
		}
		if created {
			log.Printf("✅ Admin account %s created", cfg.SeedAdmin.Email)
		}
	}

	feed := orderControllers.NewFeed()
	defer feed.Close()

	svc := services.New(db, auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL), feed)
	r := routes.NewRouter(svc, feed)

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the in-memory store in dev mode and Postgres otherwise.
func initStore(cfg config.Config) store.Store {
	if cfg.DevMode {
		log.Println("⚠️ DEV_MODE on: data lives in memory and is lost on restart")
		return store.NewMemoryStore()
	}

	db, err := store.OpenPostgres(cfg.DSN())
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	gs := store.NewGormStore(db)

	// Auto-migrate all tables
	if err := gs.Migrate(); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return gs
}
