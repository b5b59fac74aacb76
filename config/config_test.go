package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 24*time.Hour, cfg.Cache.SessionTTL)
		assert.Equal(t, 10*time.Minute, cfg.Cache.CleanupInterval)
		assert.Equal(t, 50.0, cfg.Cart.FreeShippingThreshold)
		assert.Equal(t, 5.99, cfg.Cart.ShippingFee)
		assert.Equal(t, time.Second, cfg.Auth.LoginDelay)
		assert.Equal(t, time.Second, cfg.Auth.PromoDelay)
		assert.Equal(t, 200.0, cfg.Listing.MaxPrice)
		assert.Equal(t, 100, cfg.RateLimit.PerIP)
		assert.Equal(t, 20, cfg.RateLimit.Burst)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		t.Setenv("STOREFRONT_SERVER_PORT", "9090")
		t.Setenv("STOREFRONT_SERVER_ENVIRONMENT", "production")
		t.Setenv("STOREFRONT_CACHE_TTL", "1m")
		t.Setenv("STOREFRONT_CACHE_SESSION_TTL", "2h")
		t.Setenv("STOREFRONT_CART_SHIPPING_FEE", "7.5")
		t.Setenv("STOREFRONT_AUTH_LOGIN_DELAY", "0s")
		t.Setenv("STOREFRONT_LISTING_MAX_PRICE", "500")
		t.Setenv("STOREFRONT_RATELIMIT_PER_IP", "200")
		t.Setenv("STOREFRONT_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Environment)
		assert.Equal(t, time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 2*time.Hour, cfg.Cache.SessionTTL)
		assert.Equal(t, 7.5, cfg.Cart.ShippingFee)
		assert.Equal(t, time.Duration(0), cfg.Auth.LoginDelay)
		assert.Equal(t, 500.0, cfg.Listing.MaxPrice)
		assert.Equal(t, 200, cfg.RateLimit.PerIP)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		t.Setenv("STOREFRONT_RATELIMIT_PER_IP", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit per IP must be positive")
	})

	t.Run("fails validation for negative shipping fee", func(t *testing.T) {
		t.Setenv("STOREFRONT_CART_SHIPPING_FEE", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be negative")
	})

	t.Run("fails validation for zero max price", func(t *testing.T) {
		t.Setenv("STOREFRONT_LISTING_MAX_PRICE", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing max price must be positive")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Cache:     CacheConfig{TTL: time.Minute, SessionTTL: time.Hour},
			Cart:      CartConfig{FreeShippingThreshold: 50, ShippingFee: 5.99},
			Auth:      AuthConfig{LoginDelay: time.Second, PromoDelay: time.Second},
			Listing:   ListingConfig{MaxPrice: 200},
			RateLimit: RateLimitConfig{PerIP: 100, Burst: 20},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, wantErr: true},
		{name: "zero session ttl", mutate: func(c *Config) { c.Cache.SessionTTL = 0 }, wantErr: true},
		{name: "negative threshold", mutate: func(c *Config) { c.Cart.FreeShippingThreshold = -1 }, wantErr: true},
		{name: "negative login delay", mutate: func(c *Config) { c.Auth.LoginDelay = -time.Second }, wantErr: true},
		{name: "zero delays allowed", mutate: func(c *Config) { c.Auth = AuthConfig{} }, wantErr: false},
		{name: "zero burst", mutate: func(c *Config) { c.RateLimit.Burst = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecimalConversions(t *testing.T) {
	threshold, fee := CartConfig{FreeShippingThreshold: 50, ShippingFee: 5.99}.Pricing()
	assert.True(t, threshold.Equal(decimal.NewFromInt(50)))
	assert.True(t, fee.Equal(decimal.RequireFromString("5.99")))

	assert.True(t, ListingConfig{MaxPrice: 200}.MaxPriceDecimal().Equal(decimal.NewFromInt(200)))
}
