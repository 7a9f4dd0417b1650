// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"inference-back/internal/adapters/auth"
	"inference-back/internal/adapters/database"
	"inference-back/internal/adapters/messaging"
	"inference-back/internal/adapters/storage"
	"inference-back/internal/config"
	"inference-back/internal/core/ports"
	"inference-back/internal/core/services"
	"inference-back/internal/handlers"
	"inference-back/internal/middleware"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	ctx := context.Background()

	// Initialize database
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	minioStorage, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
	if err != nil {
		log.Fatal("Failed to initialize MinIO storage:", err)
	}

	messageService, err := messaging.NewPostgresMessageService(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to initialize message service:", err)
	}

	authenticator := auth.NewAuthenticator(cfg.TokenSecret, cfg.TokenExpiry)

	// Single composition root: build all ports, pass them down explicitly.
	p := ports.Ports{
		Database:       database.NewGormAdapter(db),
		Authentication: authenticator,
		MessageService: messageService,
		SimpleStorage:  minioStorage,
	}

	inferenceService := services.NewInferenceService(p, logger)
	modelService := services.NewModelService(p)
	resultService := services.NewResultService(p)
	userService := services.NewUserService(p)
	listenerService := services.NewMessageListenerService(p, logger)

	// The listener runs for the lifetime of the process, independent of the
	// request path. Run only returns on cancellation or a failed initial
	// subscribe; transient transport errors are swallowed inside the loop.
	go func() {
		if err := listenerService.Run(ctx, cfg.CentralChannel); err != nil {
			log.Println("Result listener stopped:", err)
		}
	}()

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Public routes
	public := r.Group("/v1")
	{
		public.POST("/users", handlers.Register(p.Database, authenticator))
		public.POST("/token", handlers.Login(p.Database, authenticator))
	}
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes
	protected := r.Group("/v1")
	protected.Use(middleware.AuthMiddleware(p.Authentication))
	{
		protected.GET("/users/:user_id", handlers.GetUser(userService))
		protected.GET("/users/:user_id/inferences", handlers.ListInferences(inferenceService))
		protected.POST("/users/:user_id/inferences", handlers.CreateInference(inferenceService))
		protected.GET("/users/:user_id/inferences/:inference_id", handlers.GetInference(inferenceService))
		protected.GET("/users/:user_id/inferences/:inference_id/result", handlers.GetInferenceResult(resultService))
		protected.GET("/models", handlers.ListModels(modelService))
		protected.GET("/models/:model_id", handlers.GetModel(modelService))
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
