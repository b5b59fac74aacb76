package http

import (
	"github.com/elegance/storefront/config"
	"github.com/elegance/storefront/internal/infrastructure/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, registry *session.Registry, logger *zap.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(NewIPRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/filters", handler.GetFilterMetadata)
		v1.GET("/products", handler.ListProducts)
		v1.GET("/products/:id", handler.GetProduct)
		v1.GET("/categories/:name/products", handler.GetCategoryProducts)
		v1.GET("/search", handler.SearchProducts)
		v1.GET("/sale/tabs", handler.GetSaleTabs)
		v1.GET("/payment-methods", handler.GetPaymentMethods)

		secure := cfg.Server.Environment == "production"
		shopper := v1.Group("", SessionMiddleware(registry, cfg.Cache.SessionTTL, secure))
		{
			auth := shopper.Group("/auth")
			{
				auth.POST("/login", handler.Login)
				auth.POST("/logout", handler.Logout)
			}

			cart := shopper.Group("/cart")
			{
				cart.GET("", handler.GetCart)
				cart.DELETE("", handler.ClearCart)
				cart.POST("/items", handler.AddCartItem)
				cart.PATCH("/items", handler.UpdateCartItem)
				cart.DELETE("/items", handler.RemoveCartItem)
				cart.POST("/promo", handler.ApplyPromoCode)
				cart.POST("/checkout", handler.Checkout)
			}

			wishlist := shopper.Group("/wishlist")
			{
				wishlist.GET("", handler.GetWishlist)
				wishlist.POST("", handler.AddWishlistItem)
				wishlist.DELETE("", handler.RemoveWishlistItem)
			}
		}
	}

	return router
}
