// Package config loads gateway configuration.
//
// Configuration is environment-first (TODOIST_TOKEN, PORT, ...) with an
// optional taskbridge.yaml for local development. The loaded Config is
// an explicit struct constructed once at startup and passed by
// reference into the components that need it — never a hidden
// singleton — so tests can substitute values without touching process
// state.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all gateway configuration.
type Config struct {
	Todoist TodoistConfig
	Server  ServerConfig
	Search  SearchConfig
	Logger  LoggerConfig
}

// TodoistConfig configures the upstream client.
type TodoistConfig struct {
	Token   string
	BaseURL string
	Timeout time.Duration
}

// ServerConfig configures the SSE listener.
type ServerConfig struct {
	Port int
}

// SearchConfig configures the matcher.
type SearchConfig struct {
	MaxResults int
}

// LoggerConfig configures the process logger.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from the environment and, when present, a
// taskbridge.yaml in the working directory or /etc/taskbridge/.
// TODOIST_TOKEN is the one required value.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("taskbridge")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskbridge/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 8000)
	v.SetDefault("todoist.base_url", "https://api.todoist.com/rest/v2")
	v.SetDefault("todoist.timeout", "10s")
	v.SetDefault("search.max_results", 10)
	v.SetDefault("logger.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Todoist.Token = v.GetString("todoist.token")
	if token := v.GetString("todoist_token"); token != "" {
		cfg.Todoist.Token = token
	}
	cfg.Todoist.BaseURL = v.GetString("todoist.base_url")
	cfg.Todoist.Timeout = v.GetDuration("todoist.timeout")

	cfg.Server.Port = v.GetInt("server.port")
	// The hosting layer hands the listen port down as plain PORT.
	if port := v.GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	cfg.Search.MaxResults = v.GetInt("search.max_results")
	cfg.Logger.Level = v.GetString("logger.level")

	if cfg.Todoist.Token == "" {
		return nil, fmt.Errorf("TODOIST_TOKEN is required")
	}

	return cfg, nil
}
