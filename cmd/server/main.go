package main

import (
	"context" // context package is needed for Redis operations

	"posyandu_system/internal/api"     // Custom package for API handlers
	"posyandu_system/internal/config"  // Custom package for configuration
	"posyandu_system/internal/db"      // Database connection and migration
	"posyandu_system/internal/service" // Auth and records services
	"posyandu_system/internal/utils"   // Redis cache wrapper

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)

	// Connect to the database and synchronize the schema
	gdb, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to sync schema: %v", err)
	}

	// Redis is optional; without it every read goes to the database
	var cache *utils.Cache
	if cfg.CacheEnabled() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewCache(redisClient, cfg.CacheTTL)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.RequireAuth {
		logrus.Warn("Record routes are not protected by token authentication (REQUIRE_AUTH=false)")
	}

	r := api.NewRouter(api.Deps{
		Config:  cfg,
		DB:      gdb,
		Auth:    service.NewAuthService(gdb, cfg),
		Records: service.NewHasilPemeriksaanService(gdb, cache),
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{"port": cfg.AppPort, "driver": cfg.DBDriver, "cache": cfg.CacheEnabled()}).Info("Server running")
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger configures the global logrus logger
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
