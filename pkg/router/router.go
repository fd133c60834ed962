package router

import (
	"time"

	"pixelpaw/backend/internal/api"
	"pixelpaw/backend/internal/ws"
	"pixelpaw/backend/pkg/config"
	"pixelpaw/backend/pkg/di"
	"pixelpaw/backend/pkg/errors"
	"pixelpaw/backend/pkg/logger"
	"pixelpaw/backend/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// Track server start time for uptime calculations
var startTime = time.Now()

// Router is the main router for the application
type Router struct {
	Engine    *gin.Engine
	Container *di.Container
	Logger    *logger.Logger
	Hub       *ws.Hub
	Config    *config.Config
}

// New creates a new router with the given container
func New(container *di.Container) *Router {
	// Use the container's logger
	logger.SetGlobal(container.Logger)

	// Load configuration
	cfg := config.New()

	// Configure Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	engine := gin.New()

	// Assign request ids before anything logs
	engine.Use(middleware.RequestIDMiddleware())

	// Use the logger middleware to capture all requests
	engine.Use(logger.Middleware(container.Logger))

	// Add custom error handler middleware
	engine.Use(errors.ErrorHandler())

	// Add custom recovery middleware with structured logging instead of default
	engine.Use(errors.RecoveryWithLogger())

	// Create rate limiter with default options
	rateLimiter := middleware.NewRateLimiter(container.Logger)

	// Apply rate limiting to all routes
	engine.Use(rateLimiter.Middleware())

	// Initialize WebSocket hub
	hub := ws.NewHub(container.SessionService)

	// Start the hub
	go hub.Run()

	return &Router{
		Engine:    engine,
		Container: container,
		Logger:    container.Logger,
		Hub:       hub,
		Config:    cfg,
	}
}

// SetupRoutes registers all application routes
func (r *Router) SetupRoutes() {
	// Add CORS middleware
	r.Engine.Use(corsMiddleware())

	// Create JWT auth middleware
	jwtAuth := middleware.JWTAuthMiddleware(r.Container.JWTService, r.Logger)

	// Initialize controllers
	authHandler := api.NewAuthHandler(r.Container.UserService, r.Container.JWTService, r.Logger)
	sessionHandler := api.NewSessionHandler(r.Container.SessionService, r.Logger)
	petHandler := api.NewPetHandler(r.Container.PetService, r.Logger)
	journalHandler := api.NewJournalHandler(r.Container.JournalService, r.Container.SessionService, r.Logger)
	meditationHandler := api.NewMeditationHandler(r.Container.MeditationService, r.Logger)

	// Health endpoints
	r.setupHealthRoutes()

	// Companion endpoints mirror the upstream API surface at the root
	sessionHandler.RegisterRoutes(r.Engine)
	petHandler.RegisterRoutes(r.Engine)
	journalHandler.RegisterRoutes(r.Engine)
	meditationHandler.RegisterRoutes(r.Engine)

	// Auth routes
	authRoutes := r.Engine.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", jwtAuth, authHandler.Me)
	}

	// WebSocket route
	r.Engine.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(r.Hub, c)
	})
}

// Enhance CORS middleware to explicitly allow WebSocket-specific headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		if origin != "*" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept, Accept-Encoding, X-CSRF-Token, Authorization, Origin, Upgrade, Connection, Cache-Control")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Upgrade, Connection")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
