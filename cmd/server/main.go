package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pulse/internal/ai"
	"pulse/internal/api"
	"pulse/internal/config"
	"pulse/internal/dashboard"
	"pulse/internal/logbook"
	"pulse/internal/storage"
	"pulse/internal/stt"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Construct the pipeline collaborators explicitly and inject them into
	// the orchestrator, so tests can swap in fakes.
	store, err := storage.New(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize audio store: %v", err)
	}

	sttProvider, err := stt.CreateProvider()
	if err != nil {
		log.Fatalf("Failed to create STT provider: %v", err)
	}
	log.Printf("STT provider initialized: %s", sttProvider.Name())

	aiClient := ai.NewClient(cfg.OpenAIKey)
	conversations := logbook.New(cfg.ConversationLog)
	dashboards := dashboard.NewStaticProvider()

	handler := api.NewHandler(store, sttProvider, aiClient, aiClient, conversations, dashboards)

	r := gin.Default()

	// Add CORS middleware for the browser UI
	r.Use(corsMiddleware())

	// Register routes
	handler.RegisterRoutes(r)

	log.Printf("Pulse backend running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for the browser UI
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
