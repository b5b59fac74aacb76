package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elegance/storefront/config"
	httpDelivery "github.com/elegance/storefront/internal/delivery/http"
	"github.com/elegance/storefront/internal/infrastructure/cache"
	"github.com/elegance/storefront/internal/infrastructure/catalog"
	"github.com/elegance/storefront/internal/infrastructure/logging"
	"github.com/elegance/storefront/internal/infrastructure/session"
	"github.com/elegance/storefront/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting storefront",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	// Initialize infrastructure dependencies
	products, err := catalog.NewStaticCatalog()
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("products", products.Len()))

	memoryCache := cache.NewMemoryCache(cfg.Cache.CleanupInterval)
	defer func() { _ = memoryCache.Close() }()

	threshold, fee := cfg.Cart.Pricing()
	pricing := usecase.CartPricing{FreeShippingThreshold: threshold, ShippingFee: fee}
	registry := session.NewRegistry(memoryCache, cfg.Cache.SessionTTL, func() session.State {
		return usecase.NewShopperState(pricing)
	}, logger)

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		products,
		memoryCache,
		usecase.CatalogServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			MaxPrice: cfg.Listing.MaxPriceDecimal(),
		},
		logger,
	)
	cartService := usecase.NewCartService(products, cfg.Auth.PromoDelay, logger)
	wishlistService := usecase.NewWishlistService(products, logger)
	authService := usecase.NewAuthService(cfg.Auth.LoginDelay, logger)

	handler := httpDelivery.NewHandler(catalogService, cartService, wishlistService, authService, logger)
	router := httpDelivery.SetupRouter(cfg, handler, registry, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
