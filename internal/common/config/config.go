package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Sender   SenderConfig   `mapstructure:"sender"`
	Search   SearchConfig   `mapstructure:"search"`
	Sheets   SheetsConfig   `mapstructure:"sheets"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// SenderConfig holds mail-relay credentials. Provider selects the delivery
// backend: "smtp" (default) or "ses".
type SenderConfig struct {
	Provider string `mapstructure:"provider"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseTLS   bool   `mapstructure:"use_tls"`
	} `mapstructure:"smtp"`

	SES struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"ses"`

	FromEmail string `mapstructure:"from_email"`
}

// SearchConfig holds settings for the search provider call.
type SearchConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Engine  string `mapstructure:"engine"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// SheetsConfig holds settings for the external tabular log.
type SheetsConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	SpreadsheetName string `mapstructure:"spreadsheet_name"`
	Timeout         int    `mapstructure:"timeout"` // milliseconds
}

// CampaignConfig holds the defaults for a campaign run. Query and NumResults
// can be overridden per run from the dashboard form.
type CampaignConfig struct {
	Query        string `mapstructure:"query"`
	NumResults   int    `mapstructure:"num_results"`
	MaxResults   int    `mapstructure:"max_results"`
	SendDelay    int    `mapstructure:"send_delay"`    // milliseconds
	FetchTimeout int    `mapstructure:"fetch_timeout"` // milliseconds
	UserAgent    string `mapstructure:"user_agent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (s SenderConfig) SMTPAddr() string {
	return fmt.Sprintf("%s:%d", s.SMTP.Host, s.SMTP.Port)
}
