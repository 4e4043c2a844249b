package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/FitClubSystems/gym-manager/internal/config"
	dbpkg "github.com/FitClubSystems/gym-manager/internal/db"
	"github.com/FitClubSystems/gym-manager/internal/middleware"
	"github.com/FitClubSystems/gym-manager/internal/routes"
	"github.com/FitClubSystems/gym-manager/internal/seed"
	"github.com/FitClubSystems/gym-manager/internal/timezone"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()

	if !timezone.IsValid(cfg.Timezone) {
		log.Fatalf("invalid FACILITY_TIMEZONE: %s", cfg.Timezone)
	}

	db := dbpkg.NewDB(cfg)

	if cfg.SeedDemo {
		if err := seed.Demo(db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
