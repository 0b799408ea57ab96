package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Global admin allow-list. Resolved once at startup and injected into the
	// org resolver; independent of per-org membership roles.
	GlobalAdminIDs []string `mapstructure:"GLOBAL_ADMIN_IDS"`

	// Billing configuration. An empty STRIPE_API_KEY means the deployment
	// operates without billing and every job rides the customer free tier.
	StripeAPIKey     string  `mapstructure:"STRIPE_API_KEY"`
	StripeAPIBaseURL string  `mapstructure:"STRIPE_API_BASE_URL"`
	JobFlatRateUsd   float64 `mapstructure:"JOB_FLAT_RATE_USD"`
	FreeJobLimit     int     `mapstructure:"FREE_JOB_LIMIT"`
	BillingCurrency  string  `mapstructure:"BILLING_CURRENCY"`
	ChargeTimeoutSec int     `mapstructure:"CHARGE_TIMEOUT_SEC"`

	// Platform managed-cluster endpoint. When MANAGED_CLUSTER_URL is empty no
	// default cluster is provisioned on tenant bootstrap.
	ManagedClusterURL      string `mapstructure:"MANAGED_CLUSTER_URL"`
	ManagedClusterToken    string `mapstructure:"MANAGED_CLUSTER_TOKEN"`
	ManagedClusterProvider string `mapstructure:"MANAGED_CLUSTER_PROVIDER"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7011")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "train_console")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	viper.SetDefault("GLOBAL_ADMIN_IDS", []string{})

	// Billing defaults
	viper.SetDefault("STRIPE_API_KEY", "")
	viper.SetDefault("STRIPE_API_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("JOB_FLAT_RATE_USD", 10.0)
	viper.SetDefault("FREE_JOB_LIMIT", 3)
	viper.SetDefault("BILLING_CURRENCY", "usd")
	viper.SetDefault("CHARGE_TIMEOUT_SEC", 20)

	// Managed cluster defaults
	viper.SetDefault("MANAGED_CLUSTER_URL", "")
	viper.SetDefault("MANAGED_CLUSTER_TOKEN", "")
	viper.SetDefault("MANAGED_CLUSTER_PROVIDER", "kubernetes")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.JobFlatRateUsd < 0 {
		return fmt.Errorf("JOB_FLAT_RATE_USD must not be negative")
	}

	if config.FreeJobLimit < 0 {
		return fmt.Errorf("FREE_JOB_LIMIT must not be negative")
	}

	return nil
}

// BillingEnabled reports whether a payment provider is configured for this
// deployment
func (c *Config) BillingEnabled() bool {
	return c.StripeAPIKey != ""
}

// ManagedClusterConfigured reports whether the platform default-cluster
// endpoint is configured
func (c *Config) ManagedClusterConfigured() bool {
	return c.ManagedClusterURL != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
