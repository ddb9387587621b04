package main

import (
	"errors"
	"time"

	"github.com/AnechkaShv/vote-record-plot/internal/config"
)

const (
	defaultBackgroundURL = "https://i.ibb.co/xKVrkLfB/higher-res-base-plot.png"
	defaultUploadURL     = "https://api.imgbb.com/1/upload"
	assetName            = "vote_record_plot"
)

// Config holds plot-service settings. Wedge geometry is not part of it.
type Config struct {
	Port            int
	LogLevel        string
	LogPretty       bool
	BackgroundURL   string
	ImgBBAPIKey     string
	ImgBBUploadURL  string
	OutboundTimeout time.Duration // 0 means no client timeout
	AllowedOrigins  []string
}

// LoadConfig reads configuration from the environment and an optional .env file.
func LoadConfig() (*Config, error) {
	config.LoadDotEnv()

	port, err := config.Int("PORT", 8084)
	if err != nil {
		return nil, err
	}
	pretty, err := config.Bool("LOG_PRETTY", false)
	if err != nil {
		return nil, err
	}
	timeout, err := config.Duration("OUTBOUND_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            port,
		LogLevel:        config.String("LOG_LEVEL", "info"),
		LogPretty:       pretty,
		BackgroundURL:   config.String("BACKGROUND_IMAGE_URL", defaultBackgroundURL),
		ImgBBAPIKey:     config.String("IMGBB_API_KEY", ""),
		ImgBBUploadURL:  config.String("IMGBB_UPLOAD_URL", defaultUploadURL),
		OutboundTimeout: timeout,
		AllowedOrigins:  config.List("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ImgBBAPIKey == "" {
		return errors.New("IMGBB_API_KEY is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("PORT must be between 1 and 65535")
	}
	if c.OutboundTimeout < 0 {
		return errors.New("OUTBOUND_TIMEOUT must not be negative")
	}
	return nil
}
