// Package app assembles configuration, infrastructure and services into a
// runnable Telegram application.
package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/rabotyaga1336/doc-helper/core/config"
	coredatabase "github.com/rabotyaga1336/doc-helper/core/database"
)

// ContentConfig holds settings for the administered content.
type ContentConfig struct {
	// ImageDir is where uploaded news images are stored.
	ImageDir string `yaml:"image_dir" envconfig:"CONTENT_IMAGE_DIR"`
	// NewsLimit bounds the news list view; 0 -> default.
	NewsLimit int `yaml:"news_limit" envconfig:"CONTENT_NEWS_LIMIT"`
}

// Config is the full application configuration: the reusable core settings
// plus database and content sections.
type Config struct {
	Core     coreconfig.Config   `yaml:",inline"`
	Database coredatabase.Config `yaml:"database"`
	Content  ContentConfig       `yaml:"content"`
}

// CoreConfig exposes the embedded core configuration for the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Core
}

// Load reads the YAML config file, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	if cfg.Core.Telegram.AdminID == 0 {
		return nil, fmt.Errorf("telegram.admin_id is required")
	}
	if cfg.Content.ImageDir == "" {
		cfg.Content.ImageDir = "data/images"
	}
	if cfg.Content.NewsLimit <= 0 {
		cfg.Content.NewsLimit = 5
	}
	return &cfg, nil
}
