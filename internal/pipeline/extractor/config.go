package extractor

import (
	"fmt"
	"time"
)

type Config struct {
	FetchTimeout time.Duration
	UserAgent    string
	MaxEmails    int
}

func DefaultConfig() *Config {
	return &Config{
		FetchTimeout: 10 * time.Second,
		UserAgent:    "Mozilla/5.0",
		MaxEmails:    2,
	}
}

func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if c.MaxEmails <= 0 {
		return fmt.Errorf("max_emails must be positive")
	}
	return nil
}
