package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// DatabaseURL is the postgres connection string
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// ListenAddr is the HTTP API bind address
	ListenAddr string `yaml:"listenAddr,omitempty"`

	// LocationID identifies the ward building this deployment serves
	LocationID string `yaml:"locationID" validate:"required"`

	// DefaultCleaningTime is the HH:MM:SS time stamped on generated schedule
	// entries when the request does not supply one
	DefaultCleaningTime string `yaml:"defaultCleaningTime,omitempty"`

	// ScheduleRule optionally overrides the Saturday recurrence used by the
	// generator, as an RFC 5545 RRULE string
	ScheduleRule string `yaml:"scheduleRule,omitempty"`

	// StrictCompletion surfaces points-persistence failures during task
	// completion as errors instead of logging and succeeding
	StrictCompletion bool `yaml:"strictCompletion,omitempty"`

	// ReminderDaysAhead is how far ahead the reminder mailer looks
	ReminderDaysAhead int `yaml:"reminderDaysAhead,omitempty" validate:"omitempty,min=1"`

	// GmailUserID is the account reminder emails are sent from
	GmailUserID string `yaml:"gmailUserID,omitempty"`
	GmailSender string `yaml:"gmailSender,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from wardclean_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct plus the fields the validator
// tags cannot express: the default time format and the recurrence override
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := time.Parse("15:04:05", cfg.DefaultCleaningTime); err != nil {
		return fmt.Errorf("invalid defaultCleaningTime %q: %w", cfg.DefaultCleaningTime, err)
	}

	if cfg.ScheduleRule != "" {
		if _, err := rrule.StrToRRule(cfg.ScheduleRule); err != nil {
			return fmt.Errorf("invalid rrule in scheduleRule: %w", err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DefaultCleaningTime == "" {
		cfg.DefaultCleaningTime = "10:00:00"
	}
	if cfg.ReminderDaysAhead == 0 {
		cfg.ReminderDaysAhead = 7
	}
}

// findConfigFile searches for wardclean_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "wardclean_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
