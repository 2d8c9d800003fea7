package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("SWIPECUT")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	// Auto-correct invalid chunk duration
	if viper.GetInt("segmenting.default_chunk_seconds") <= 0 {
		viper.Set("segmenting.default_chunk_seconds", 60)
	}

	// Provider credentials are optional; warn so the photos endpoints
	// don't fail silently at runtime
	if viper.GetString("photos.client_id") == "" || viper.GetString("photos.client_secret") == "" {
		fmt.Println("Warning: photos provider credentials not configured; external import disabled")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Segmenting.DefaultChunkSeconds <= 0 {
		c.Segmenting.DefaultChunkSeconds = 60
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_bytes", 2147483648)

	// Database defaults
	viper.SetDefault("database.path", "./data/swipecut.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.upload_dir", "./data/original")
	viper.SetDefault("storage.segments_dir", "./data/segments")
	viper.SetDefault("storage.export_dir", "./data/export")
	viper.SetDefault("storage.temp_dir", "./tmp")

	// Segmenting defaults
	viper.SetDefault("segmenting.ffmpeg_path", "ffmpeg")
	viper.SetDefault("segmenting.ffprobe_path", "ffprobe")
	viper.SetDefault("segmenting.ffmpeg_timeout", 5*time.Minute)
	viper.SetDefault("segmenting.default_chunk_seconds", 60)

	// Photos provider defaults
	viper.SetDefault("photos.redirect_url", "http://localhost:8080/api/v1/photos/auth/callback")
	viper.SetDefault("photos.token_path", "./data/photos_token.json")
	viper.SetDefault("photos.fetch_timeout", 5*time.Minute)
	viper.SetDefault("photos.page_size", 25)
	viper.SetDefault("photos.max_fetch_bytes", 4294967296)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
}
