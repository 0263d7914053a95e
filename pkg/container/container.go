package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	infracache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"

	bookrepo "library-backend/internal/domains/book/repository"
	customerrepo "library-backend/internal/domains/customer/repository"
	lendinghandler "library-backend/internal/domains/lending/handler"
	lendingrepo "library-backend/internal/domains/lending/repository"
	lendingservice "library-backend/internal/domains/lending/service"

	"github.com/rs/zerolog/log"
)

// Container is the root of the dependency graph. Initialization order:
// config -> infrastructure -> repositories -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookRepo     bookrepo.Repository
	CustomerRepo customerrepo.Repository
	LendingRepo  lendingrepo.Repository

	LendingService lendingservice.Service

	LendingHandler *lendinghandler.Handler

	redis *infracache.RedisClient
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := c.DB.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The cache is an optimization, not a dependency: if redis is down the
	// repositories fall through to postgres.
	redisClient := infracache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(connectCtx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		c.Cache = redisClient
		c.redis = redisClient
	}

	c.BookRepo = bookrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CustomerRepo = customerrepo.NewPostgresRepository(c.DB.Pool)
	c.LendingRepo = lendingrepo.NewPostgresRepository(c.DB.Pool)

	c.LendingService = lendingservice.NewService(c.BookRepo, c.CustomerRepo, c.LendingRepo)

	c.LendingHandler = lendinghandler.NewHandler(c.LendingService)

	return c, nil
}

// Cleanup releases infrastructure resources; call it on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close redis client")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
