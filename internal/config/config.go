package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "PRICE_SCANNER_CONFIG"
	storagePathEnv = "PRICE_SCANNER_DB"
	logLevelEnv    = "PRICE_SCANNER_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Storage StorageConfig `yaml:"storage"`
	Sites   []SiteConfig  `yaml:"sites"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// StorageConfig locates the local settings database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// SiteConfig binds an origin keyword to a site-family adapter, together
// with the wildcard patterns of the pages that family targets.
type SiteConfig struct {
	Name     string   `yaml:"name"`
	Adapter  string   `yaml:"adapter"`
	Patterns []string `yaml:"patterns"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Sites) == 0 {
		cfg.Sites = defaultConfig().Sites
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(storagePathEnv); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Storage.Path != "" {
		base.Storage.Path = override.Storage.Path
	}
	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}
	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Storage: StorageConfig{Path: "pricescanner.db"},
		Sites: []SiteConfig{
			{
				Name:    "amazon",
				Adapter: "marketplace",
				Patterns: []string{
					"*://*.amazon.com/*",
					"*://*.amazon.co.uk/*",
					"*://*.amazon.de/*",
					"*://*.amazon.fr/*",
					"*://*.amazon.it/*",
					"*://*.amazon.es/*",
					"*://*.amazon.ca/*",
					"*://*.amazon.com.au/*",
					"*://*.amazon.co.jp/*",
				},
			},
			{
				Name:    "ebay",
				Adapter: "marketplace",
				Patterns: []string{
					"*://*.ebay.com/*",
					"*://*.ebay.co.uk/*",
				},
			},
		},
	}
}
