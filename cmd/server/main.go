package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pixelpaw/backend/internal/chat"
	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/store"
	"pixelpaw/backend/pkg/config"
	"pixelpaw/backend/pkg/di"
	"pixelpaw/backend/pkg/health"
	"pixelpaw/backend/pkg/logger"
	"pixelpaw/backend/pkg/router"
	"pixelpaw/backend/pkg/secrets"
	"pixelpaw/backend/shared/observability"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found")
	}

	cfg := config.New()

	// Initialize structured logger
	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = cfg.Logging.Format != "text"

	log := logger.New(logConfig)
	logger.SetGlobal(log)

	log.Info("Starting application", "version", os.Getenv("APP_VERSION"))

	// Tracing and metrics
	shutdownTracing := observability.SetupTracing("pixelpaw-backend")
	defer shutdownTracing()
	observability.SetupPrometheusMetrics()

	// Initialize database
	db, err := config.NewDB()
	if err != nil {
		log.LogError(err, "Failed to initialize database")
		os.Exit(1)
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(
		&models.PetRecord{},
		&models.MessageRecord{},
		&models.JournalEntry{},
		&models.MeditationSession{},
		&models.User{},
	); err != nil {
		log.LogError(err, "Failed to migrate database")
		os.Exit(1)
	}

	// Index the message archive for per-pet history reads
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_message_records_pet ON message_records(pet_name, created_at)").Error; err != nil {
		log.LogError(err, "Failed to create message index", "index", "idx_message_records_pet")
	}

	// Resolve the chat API key, preferring Vault when configured
	chatAPIKey := cfg.Chat.APIKey
	if err := secrets.Init(log); err != nil {
		log.Warn("Secrets manager unavailable, using environment only", "error", err.Error())
	} else {
		chatAPIKey = secrets.GetSecretWithDefault(context.Background(), "chat_api_key", chatAPIKey)
	}

	// Session state store: Redis when reachable, in-memory otherwise
	var kv store.KV
	redisKV := store.NewRedisKV(cfg.Redis.Addr)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := redisKV.Ping(pingCtx); err != nil {
		log.Warn("Redis unreachable, using in-memory session store", "addr", cfg.Redis.Addr, "error", err.Error())
		kv = store.NewMemoryKV()
	} else {
		kv = redisKV
	}
	pingCancel()

	// Initialize dependency injection container
	diConfig := di.DefaultConfig()
	diConfig.LoggerConfig = logConfig
	diConfig.JWTSecret = cfg.JWT.Secret
	diConfig.JWTExpiry = cfg.JWT.ExpiryHours
	diConfig.KV = kv
	diConfig.ChatConfig = chat.Config{
		BaseURL: cfg.Chat.BaseURL,
		Model:   cfg.Chat.Model,
		APIKey:  chatAPIKey,
		Timeout: cfg.Chat.Timeout,
	}

	container, err := di.New(db, diConfig)
	if err != nil {
		log.LogError(err, "Failed to initialize dependency container")
		os.Exit(1)
	}

	// Initialize and setup router
	r := router.New(container)
	r.SetupRoutes()

	// Add OpenAPI validation if schema file is available
	schemaPath := os.Getenv("OPENAPI_SCHEMA_PATH")
	if schemaPath != "" {
		r.AddOpenAPIValidation(schemaPath)
	}

	// Periodic component health checks
	checker := health.NewChecker(log, 30*time.Second)
	checker.RegisterDatabaseCheck(func() error {
		return config.TestConnection(db)
	})
	if rkv, ok := kv.(*store.RedisKV); ok {
		checker.RegisterRedisCheck(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return rkv.Ping(ctx)
		})
	}
	checker.Start()
	r.Engine.GET("/health/components", gin.WrapF(checker.HTTPHandler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r.Engine,
	}

	// Start the server in a goroutine
	go func() {
		log.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		log.LogError(err, "Server forced to shutdown")
	}

	log.Info("Server exited gracefully")
}
