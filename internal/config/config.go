// Package config loads runtime settings from an optional YAML file and
// the environment. A file given to Load takes precedence over env vars.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the settings shared by every Sojourn entry point.
type Config struct {
	HTTPAddr     string `yaml:"http_addr" env:"SOJOURN_HTTP_ADDR" env-default:":8080"`
	MCPTransport string `yaml:"mcp_transport" env:"SOJOURN_MCP_TRANSPORT" env-default:"stdio"`
	MCPPort      int    `yaml:"mcp_port" env:"SOJOURN_MCP_PORT" env-default:"8090"`
	RedisURL     string `yaml:"redis_url" env:"SOJOURN_REDIS_URL"`
	CatalogPath  string `yaml:"catalog_path" env:"SOJOURN_CATALOG_PATH"`
	LogLevel     string `yaml:"log_level" env:"SOJOURN_LOG_LEVEL" env-default:"info"`

	// PIIPatterns are regexes masked out of claim reasons before storage.
	PIIPatterns []string `yaml:"pii_patterns" env:"SOJOURN_PII_PATTERNS" env-separator:","`
	// EncryptionKey encrypts claim reasons at rest when set. Must be 32
	// bytes for AES-256.
	EncryptionKey string `yaml:"encryption_key" env:"SOJOURN_ENCRYPTION_KEY"`
}

// Load reads settings from path if given, otherwise from the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}
