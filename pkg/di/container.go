package di

import (
	"math/rand"
	"time"

	"gorm.io/gorm"

	"pixelpaw/backend/internal/chat"
	"pixelpaw/backend/internal/repository"
	"pixelpaw/backend/internal/responses"
	"pixelpaw/backend/internal/service"
	"pixelpaw/backend/internal/store"
	"pixelpaw/backend/pkg/cache"
	"pixelpaw/backend/pkg/jwt"
	"pixelpaw/backend/pkg/logger"
)

// Container holds all the dependencies for the application
type Container struct {
	DB                *gorm.DB
	KV                store.KV
	Cache             *cache.Cache
	Logger            *logger.Logger
	JWTService        *jwt.Service
	ChatClient        *chat.Client
	Gateway           *store.Gateway
	UserService       *service.UserService
	PetService        *service.PetService
	JournalService    *service.JournalService
	MessageService    *service.MessageService
	MeditationService *service.MeditationService
	SessionService    *service.SessionService
}

// Config holds the configuration for the container
type Config struct {
	LoggerConfig logger.Config
	JWTSecret    string
	JWTExpiry    time.Duration
	ChatConfig   chat.Config
	KV           store.KV
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LoggerConfig: logger.DefaultConfig(),
		JWTSecret:    "",
		JWTExpiry:    0, // Use default
		ChatConfig: chat.Config{
			BaseURL: "http://localhost:11434",
			Model:   "llama3",
			Timeout: 30 * time.Second,
		},
	}
}

// New creates a new dependency injection container
func New(db *gorm.DB, config *Config) (*Container, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// Initialize the logger
	log := logger.New(config.LoggerConfig)

	// Initialize JWT service
	jwtService := jwt.NewService(config.JWTSecret, config.JWTExpiry)

	// Key-value store for session state; in-memory when no Redis is
	// configured
	kv := config.KV
	if kv == nil {
		kv = store.NewMemoryKV()
	}
	gateway := store.NewGateway(kv, log)

	// Repositories
	petRepo := repository.NewGormPetRepository(db)
	journalRepo := repository.NewGormJournalRepository(db)
	messageRepo := repository.NewGormMessageRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	meditationRepo := repository.NewGormMeditationRepository(db)

	// Core services
	c := cache.NewCache()
	petService := service.NewPetService(petRepo, c, log)
	journalService := service.NewJournalService(journalRepo)
	messageService := service.NewMessageService(messageRepo)
	userService := service.NewUserService(userRepo, jwtService)
	meditationService := service.NewMeditationService(meditationRepo)

	// Remote chat collaborator
	chatClient := chat.NewClient(config.ChatConfig, log)

	// Responder and session each get their own source; they pick
	// concurrently under separate locks.
	sessionService := service.NewSessionService(service.SessionConfig{
		Stats:      petService,
		Gateway:    gateway,
		Chat:       chatClient,
		Responder:  responses.NewResponder(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Journal:    journalService,
		Meditation: meditationService,
		Archive:    messageService,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}, log)

	return &Container{
		DB:                db,
		KV:                kv,
		Cache:             c,
		Logger:            log,
		JWTService:        jwtService,
		ChatClient:        chatClient,
		Gateway:           gateway,
		UserService:       userService,
		PetService:        petService,
		JournalService:    journalService,
		MessageService:    messageService,
		MeditationService: meditationService,
		SessionService:    sessionService,
	}, nil
}
