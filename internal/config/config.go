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

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Screenshot upload configuration
	UploadDir      string `mapstructure:"UPLOAD_DIR"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`

	// Pre-authored sticker fragment directory; the composer falls back to
	// programmatic generation when it is missing or incomplete.
	StickerAssetsDir string `mapstructure:"STICKER_ASSETS_DIR"`

	// Optional Redis read cache for project listings. Empty disables caching.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Seed demo projects into an empty garden on startup.
	SeedDemoData bool `mapstructure:"SEED_DEMO_DATA"`
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
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "garden")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Upload defaults: 5MB cap
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", int64(5*1024*1024))

	viper.SetDefault("STICKER_ASSETS_DIR", "sticker-assets")

	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("SEED_DEMO_DATA", true)
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
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.UploadDir == "" {
		return fmt.Errorf("upload directory is required")
	}
	if config.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
