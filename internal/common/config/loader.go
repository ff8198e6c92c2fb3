package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like SENDER_SMTP_PASSWORD
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overrides, ignored if not found
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the most likely locations, falling back to the
// process environment.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// overrideEmptyConfig fills secrets from plain environment variables when the
// config files left them empty.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Sender.SMTP.Username == "" {
		if val := os.Getenv("SMTP_USERNAME"); val != "" {
			cfg.Sender.SMTP.Username = val
		}
	}
	if cfg.Sender.SMTP.Password == "" {
		if val := os.Getenv("SMTP_PASSWORD"); val != "" {
			cfg.Sender.SMTP.Password = val
		}
	}
	if cfg.Sender.FromEmail == "" {
		if val := os.Getenv("SENDER_EMAIL"); val != "" {
			cfg.Sender.FromEmail = val
		}
	}

	if cfg.Search.APIKey == "" {
		if val := os.Getenv("SERPAPI_KEY"); val != "" {
			cfg.Search.APIKey = val
		}
	}

	if cfg.Sheets.CredentialsFile == "" {
		if val := os.Getenv("SHEETS_CREDENTIALS_FILE"); val != "" {
			cfg.Sheets.CredentialsFile = val
		}
	}
	if cfg.Sheets.SpreadsheetName == "" {
		if val := os.Getenv("SPREADSHEET_NAME"); val != "" {
			cfg.Sheets.SpreadsheetName = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "outreach-automation"
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}

	// Sender defaults: Gmail-compatible SMTP with STARTTLS
	if cfg.Sender.Provider == "" {
		cfg.Sender.Provider = "smtp"
	}
	if cfg.Sender.SMTP.Host == "" {
		cfg.Sender.SMTP.Host = "smtp.gmail.com"
	}
	if cfg.Sender.SMTP.Port == 0 {
		cfg.Sender.SMTP.Port = 587
		cfg.Sender.SMTP.UseTLS = true
	}
	if cfg.Sender.FromEmail == "" {
		cfg.Sender.FromEmail = cfg.Sender.SMTP.Username
	}

	// Search provider defaults
	if cfg.Search.BaseURL == "" {
		cfg.Search.BaseURL = "https://serpapi.com/search.json"
	}
	if cfg.Search.Engine == "" {
		cfg.Search.Engine = "google"
	}
	if cfg.Search.Timeout == 0 {
		cfg.Search.Timeout = 30000
	}

	// Log store defaults
	if cfg.Sheets.SpreadsheetName == "" {
		cfg.Sheets.SpreadsheetName = "Outreach Log"
	}
	if cfg.Sheets.CredentialsFile == "" {
		cfg.Sheets.CredentialsFile = "credentials.json"
	}
	if cfg.Sheets.Timeout == 0 {
		cfg.Sheets.Timeout = 30000
	}

	// Campaign defaults
	if cfg.Campaign.Query == "" {
		cfg.Campaign.Query = "UAE brands"
	}
	if cfg.Campaign.NumResults == 0 {
		cfg.Campaign.NumResults = 5
	}
	if cfg.Campaign.MaxResults == 0 {
		cfg.Campaign.MaxResults = 20
	}
	if cfg.Campaign.SendDelay == 0 {
		cfg.Campaign.SendDelay = 2000
	}
	if cfg.Campaign.FetchTimeout == 0 {
		cfg.Campaign.FetchTimeout = 10000
	}
	if cfg.Campaign.UserAgent == "" {
		cfg.Campaign.UserAgent = "Mozilla/5.0"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates structural configuration fields. Credential
// presence is deliberately not checked here: a missing credential is an
// operator-visible campaign-start error, not a boot failure, so the dashboard
// still comes up without it.
func validateConfig(cfg *Config) error {
	if cfg.Sender.Provider != "smtp" && cfg.Sender.Provider != "ses" {
		return fmt.Errorf("sender.provider must be smtp or ses, got %q", cfg.Sender.Provider)
	}
	if cfg.Sender.SMTP.Port <= 0 || cfg.Sender.SMTP.Port > 65535 {
		return fmt.Errorf("sender.smtp.port must be between 1 and 65535")
	}
	if cfg.Campaign.NumResults < 1 || cfg.Campaign.NumResults > cfg.Campaign.MaxResults {
		return fmt.Errorf("campaign.num_results must be between 1 and %d", cfg.Campaign.MaxResults)
	}
	if cfg.Campaign.SendDelay < 0 {
		return fmt.Errorf("campaign.send_delay must not be negative")
	}
	if cfg.Campaign.FetchTimeout <= 0 {
		return fmt.Errorf("campaign.fetch_timeout must be positive")
	}
	return nil
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
