package discovery

import (
	"fmt"
	"time"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Engine     string
	Timeout    time.Duration
	MaxResults int
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:    "https://serpapi.com/search.json",
		Engine:     "google",
		Timeout:    30 * time.Second,
		MaxResults: 20,
	}
}

func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("max_results must be positive")
	}
	return nil
}
