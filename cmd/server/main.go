package main

import (
	"log"

	"github.com/auntiehomie/castkeepr/internal/config"
	"github.com/auntiehomie/castkeepr/internal/db"
	"github.com/auntiehomie/castkeepr/internal/neynar"
	"github.com/auntiehomie/castkeepr/internal/router"
	"github.com/auntiehomie/castkeepr/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Database
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// Neynar client + services
	client := neynar.NewClient(cfg.NeynarBaseURL, cfg.NeynarAPIKey, cfg.SignerUUID)
	store := services.NewSavedCastService(database)
	ingest := services.NewIngestService(store, client, cfg.BotMention, cfg.TriggerPhrase)

	// Initialize Gin
	r := gin.Default()

	// The mini-app front end is served from another origin
	r.Use(cors.Default())

	// Frame document templates
	r.HTMLRender = router.LoadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	router.RegisterRoutes(r, cfg, store, ingest)

	log.Printf("CastKeepr server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
