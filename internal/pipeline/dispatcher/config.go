package dispatcher

import "fmt"

// Subject is the fixed subject line for every outreach email.
const Subject = "Quick question about your social media"

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	UseTLS       bool
	FromEmail    string
}

func DefaultConfig() *Config {
	return &Config{
		SMTPHost: "smtp.gmail.com",
		SMTPPort: 587,
		UseTLS:   true,
	}
}

func (c *Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp_host is required")
	}
	if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("smtp_port must be between 1 and 65535")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from_email is required")
	}
	return nil
}
