// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.static_dir", "web/static")
	v.SetDefault("storage.index_file", "web/templates/index.html")

	v.SetDefault("redmine.base_url", "")
	v.SetDefault("redmine.api_key", "")
	v.SetDefault("redmine.timeout", 10*time.Second)

	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("slack.timeout", 10*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"storage.data_dir",
		"storage.static_dir",
		"storage.index_file",
		"redmine.base_url",
		"redmine.api_key",
		"redmine.timeout",
		"slack.webhook_url",
		"slack.timeout",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
