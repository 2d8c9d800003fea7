package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Storage     StorageConfig    `mapstructure:"storage"`
	Segmenting  SegmentingConfig `mapstructure:"segmenting"`
	Photos      PhotosConfig     `mapstructure:"photos"`
	Security    SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains on-disk storage locations
type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	SegmentsDir string `mapstructure:"segments_dir"`
	ExportDir   string `mapstructure:"export_dir"`
	TempDir     string `mapstructure:"temp_dir"`
}

// SegmentingConfig contains video splitting settings
type SegmentingConfig struct {
	FFmpegPath          string        `mapstructure:"ffmpeg_path"`
	FFprobePath         string        `mapstructure:"ffprobe_path"`
	FFmpegTimeout       time.Duration `mapstructure:"ffmpeg_timeout"`
	DefaultChunkSeconds int           `mapstructure:"default_chunk_seconds"`
}

// PhotosConfig contains external photo library provider settings
type PhotosConfig struct {
	ClientID      string        `mapstructure:"client_id"`
	ClientSecret  string        `mapstructure:"client_secret"`
	RedirectURL   string        `mapstructure:"redirect_url"`
	TokenPath     string        `mapstructure:"token_path"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	PageSize      int           `mapstructure:"page_size"`
	MaxFetchBytes int64         `mapstructure:"max_fetch_bytes"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}
