package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"mapmate/internal/config"
	"mapmate/internal/middleware"
	"mapmate/internal/proxy"
	"mapmate/pkg/cache"
	"mapmate/pkg/logger"
	"mapmate/routes"
)

func main() {
	// Missing .env is fine; the environment may be set externally.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	var directionsCache *cache.RedisCache
	if cfg.Redis.Enabled {
		directionsCache, err = cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
			CacheTTL:     cfg.Redis.CacheTTL,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, directions caching disabled")
			directionsCache = nil
		} else {
			defer directionsCache.Close()
		}
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	if len(cfg.Security.TrustedProxies) > 0 {
		if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
			log.Fatalf("Failed to set trusted proxies: %v", err)
		}
	}

	gateway := proxy.NewGateway(appLogger, directionsCache)
	routes.SetupGatewayRoutes(router, gateway, cfg.Services)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting gateway on %s", addr)
	if err := router.Run(addr); err != nil {
		appLogger.WithError(err).Fatal("Gateway exited")
	}
}
