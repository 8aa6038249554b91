package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
	Storage StorageConfig `mapstructure:"storage"`
	Redmine RedmineConfig `mapstructure:"redmine"`
	Slack   SlackConfig   `mapstructure:"slack"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Storage.DataDir == "" {
		return errors.New("storage.data_dir is required")
	}
	if c.Redmine.BaseURL != "" {
		if _, err := url.Parse(c.Redmine.BaseURL); err != nil {
			return fmt.Errorf("redmine.base_url is invalid: %w", err)
		}
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig describes file locations for the JSON-file store and UI assets.
type StorageConfig struct {
	DataDir   string `mapstructure:"data_dir"`
	StaticDir string `mapstructure:"static_dir"`
	IndexFile string `mapstructure:"index_file"`
}

// RedmineConfig describes the optional remote project source. An empty
// BaseURL disables the remote fetch entirely.
type RedmineConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SlackConfig describes the optional webhook notification target. An empty
// WebhookURL disables notifications.
type SlackConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}
