package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-seed-service/cmd/api/infrastructure"
	"user-seed-service/internal/adapter/cache"
	"user-seed-service/internal/adapter/db"
	ginhandler "user-seed-service/internal/adapter/gin/handler"
	"user-seed-service/internal/adapter/repository/cached"
	"user-seed-service/internal/bootstrap"
	"user-seed-service/internal/config"
	"user-seed-service/internal/schema"
	"user-seed-service/internal/usecase/fruit"
	"user-seed-service/internal/usecase/user"
	redisclient "user-seed-service/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DB           *gorm.DB
	Registry     *schema.Registry
	Bootstrap    *bootstrap.Runner
	RedisClient  *redisclient.Client
	UserUC       user.Usecase
	FruitUC      fruit.Usecase
	UserHandler  *ginhandler.UserHandler
	FruitHandler *ginhandler.FruitHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	database, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Declare schemas. Declaration only registers descriptors; storage is
	// untouched until the bootstrap sequence runs.
	registry, err := schema.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build schema registry: %w", err)
	}

	runner := bootstrap.NewRunner(database, registry, l)

	// Initialize repository
	userRepo := user.Repository(db.NewUserRepo(database, l))
	fruitRepo := db.NewFruitRepo(database, l)

	// Optional Redis cache over the user repository
	var rdb *redisclient.Client
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		userCache := cache.NewRedisUserCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		userRepo = cached.NewUserRepository(userRepo, userCache, l)
	}

	// Initialize use cases
	userUC := user.New(userRepo, l)
	fruitUC := fruit.New(fruitRepo, l)

	// Initialize Gin handlers
	userHandler := ginhandler.NewUserHandler(userUC, l)
	fruitHandler := ginhandler.NewFruitHandler(fruitUC, l)

	return &Container{
		Config:       cfg,
		Logger:       l,
		DB:           database,
		Registry:     registry,
		Bootstrap:    runner,
		RedisClient:  rdb,
		UserUC:       userUC,
		FruitUC:      fruitUC,
		UserHandler:  userHandler,
		FruitHandler: fruitHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
