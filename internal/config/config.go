package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/spf13/viper"

	"marketboard/internal/extract"
)

// CatalogConfig overrides the names recognized per category.
// An empty list keeps the built-in names for that category.
type CatalogConfig struct {
	Gold     []string `mapstructure:"gold"`
	Currency []string `mapstructure:"currency"`
	Crypto   []string `mapstructure:"crypto"`
}

// Config holds all configuration for the market board.
type Config struct {
	// Listing page to read prices from
	SourceURL      string        `mapstructure:"source_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`

	// HTTP server
	ListenAddr       string  `mapstructure:"listen_addr"`
	RefreshPerMinute float64 `mapstructure:"refresh_per_minute"`

	// Markup of the listing page
	RowSelector   string `mapstructure:"row_selector"`
	NameSelector  string `mapstructure:"name_selector"`
	PriceSelector string `mapstructure:"price_selector"`

	Catalog CatalogConfig `mapstructure:"catalog"`
}

// Load reads configuration from environment variables and optional config file.
// Only the variables listed below are read; they take precedence over config file values.
//
// Recognized environment variables:
//   - MARKETBOARD_SOURCE_URL (optional, defaults to https://kifpool.me/markets)
//   - MARKETBOARD_REQUEST_TIMEOUT (optional, e.g. "15s"; 0 disables the timeout)
//   - MARKETBOARD_USER_AGENT (optional)
//   - MARKETBOARD_LISTEN_ADDR (optional, defaults to :8080)
//   - MARKETBOARD_REFRESH_PER_MINUTE (optional, defaults to 30)
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("source_url", "https://kifpool.me/markets")
	v.SetDefault("request_timeout", "0s")
	v.SetDefault("user_agent", "marketboard/1.0")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("refresh_per_minute", 30)
	v.SetDefault("row_selector", extract.DefaultRowSelector)
	v.SetDefault("name_selector", extract.DefaultNameSelector)
	v.SetDefault("price_selector", extract.DefaultPriceSelector)

	// Optionally read from config file if it exists
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.marketboard")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Only these keys read the environment; selectors and catalog come from the file
	v.BindEnv("source_url", "MARKETBOARD_SOURCE_URL")
	v.BindEnv("request_timeout", "MARKETBOARD_REQUEST_TIMEOUT")
	v.BindEnv("user_agent", "MARKETBOARD_USER_AGENT")
	v.BindEnv("listen_addr", "MARKETBOARD_LISTEN_ADDR")
	v.BindEnv("refresh_per_minute", "MARKETBOARD_REFRESH_PER_MINUTE")

	// Unmarshal config into struct (decodes durations and nested catalog lists)
	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.SourceURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("source_url %q is not an absolute http(s) URL", c.SourceURL))
	}
	if c.RequestTimeout < 0 {
		problems = append(problems, "request_timeout must not be negative")
	}
	if c.RefreshPerMinute <= 0 {
		problems = append(problems, "refresh_per_minute must be positive")
	}
	if c.RowSelector == "" || c.NameSelector == "" || c.PriceSelector == "" {
		problems = append(problems, "row, name and price selectors must be set")
	} else {
		selectors := []struct{ key, value string }{
			{"row_selector", c.RowSelector},
			{"name_selector", c.NameSelector},
			{"price_selector", c.PriceSelector},
		}
		for _, sel := range selectors {
			if _, err := cascadia.Compile(sel.value); err != nil {
				problems = append(problems, fmt.Sprintf("%s %q is not a valid CSS selector: %v", sel.key, sel.value, err))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
