package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"book-catalog/internal/config"
	bookHandler "book-catalog/internal/domains/book/handler"
	bookRepo "book-catalog/internal/domains/book/repository"
	bookService "book-catalog/internal/domains/book/service"
	infraCache "book-catalog/internal/infrastructure/cache"
	"book-catalog/internal/infrastructure/database"
	"book-catalog/pkg/cache"
)

// Container holds every dependency of the application.
// Initialization order matters: config, then infrastructure, then
// repositories, services and handlers. All fields are singletons.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	AsynqClient *asynq.Client

	// Repositories
	BookRepo bookRepo.RepositoryInterface

	// Services
	BookService bookService.ServiceInterface

	// Handlers
	BookHandler *bookHandler.BookHandler
}

// NewContainer builds the whole dependency graph. Any failure aborts
// startup - a half-wired application must not serve traffic.
func NewContainer() (*Container, error) {
	c := &Container{}

	// 1. Configuration
	log.Println("[Container] Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// 2. Database
	log.Println("[Container] Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// 3. Cache
	log.Println("[Container] Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		// Cache failure is non-critical: reads fall through to Postgres.
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("[Container] Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	// 4. Queue client
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 5. Repositories
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool, c.Cache)

	// 6. Services
	c.BookService = bookService.NewBookService(
		c.BookRepo,
		c.AsynqClient,
		cfg.Queue.MaxRetry,
		cfg.Queue.Retention,
	)

	// 7. Handlers
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("[Container] Initialized")
	return c, nil
}

// Cleanup releases all held resources. Safe to call once on shutdown.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("[Container] Failed to close asynq client: %v", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("[Container] Failed to close redis: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
