package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Cart      CartConfig
	Auth      AuthConfig
	Listing   ListingConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`         // memoized listings
	SessionTTL      time.Duration `mapstructure:"session_ttl"` // idle sessions
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CartConfig holds the shipping rules
type CartConfig struct {
	FreeShippingThreshold float64 `mapstructure:"free_shipping_threshold"`
	ShippingFee           float64 `mapstructure:"shipping_fee"`
}

// AuthConfig holds the simulated latencies of login and promo checks
type AuthConfig struct {
	LoginDelay time.Duration `mapstructure:"login_delay"`
	PromoDelay time.Duration `mapstructure:"promo_delay"`
}

// ListingConfig holds listing page defaults
type ListingConfig struct {
	MaxPrice float64 `mapstructure:"max_price"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute
	Burst int `mapstructure:"burst"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront/")

	// Environment variable settings
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.session_ttl", "24h")
	v.SetDefault("cache.cleanup_interval", "10m")

	// Cart defaults
	v.SetDefault("cart.free_shipping_threshold", 50)
	v.SetDefault("cart.shipping_fee", 5.99)

	// Simulated latency defaults
	v.SetDefault("auth.login_delay", "1s")
	v.SetDefault("auth.promo_delay", "1s")

	// Listing defaults
	v.SetDefault("listing.max_price", 200)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("log.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got: %s", config.Cache.TTL)
	}

	if config.Cache.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got: %s", config.Cache.SessionTTL)
	}

	if config.Cart.FreeShippingThreshold < 0 || config.Cart.ShippingFee < 0 {
		return fmt.Errorf("cart shipping values must not be negative")
	}

	if config.Auth.LoginDelay < 0 || config.Auth.PromoDelay < 0 {
		return fmt.Errorf("simulated delays must not be negative")
	}

	if config.Listing.MaxPrice <= 0 {
		return fmt.Errorf("listing max price must be positive, got: %v", config.Listing.MaxPrice)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("rate limit per IP must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit burst must be positive, got: %d", config.RateLimit.Burst)
	}

	return nil
}

// Pricing converts the float config values to exact decimals
func (c CartConfig) Pricing() (threshold, fee decimal.Decimal) {
	return decimal.NewFromFloat(c.FreeShippingThreshold), decimal.NewFromFloat(c.ShippingFee)
}

// MaxPriceDecimal converts the listing price ceiling to a decimal
func (c ListingConfig) MaxPriceDecimal() decimal.Decimal {
	return decimal.NewFromFloat(c.MaxPrice)
}
