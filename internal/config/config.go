package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/ward-roster/pkg/core/model"
	"github.com/jakechorley/ward-roster/pkg/core/shifts"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// WishColumns names the spreadsheet header cells holding each wish field
type WishColumns struct {
	StaffID string `yaml:"staffID"`
	Date    string `yaml:"date"`
	Shift   string `yaml:"shift"`

	// DateOrder is "dmy" (03.04.2025 is 3 April) or "mdy" for non-ISO dates
	DateOrder string `yaml:"dateOrder" validate:"omitempty,oneof=dmy mdy"`
}

// Config represents the application configuration
type Config struct {
	Storage     string `yaml:"storage" validate:"required,oneof=file postgres"`
	DataDir     string `yaml:"dataDir,omitempty" validate:"required_if=Storage file"`
	DatabaseURL string `yaml:"databaseURL,omitempty" validate:"required_if=Storage postgres"`

	// MaxWeekendsPerMonth caps weekend shifts in the greedy fill (nil = ward default)
	MaxWeekendsPerMonth *int `yaml:"maxWeekendsPerMonth,omitempty" validate:"omitempty,min=0"`

	WishColumns   WishColumns `yaml:"wishColumns,omitempty"`
	WishSheetID   string      `yaml:"wishSheetID,omitempty"`
	WishSheetTab  string      `yaml:"wishSheetTab,omitempty" validate:"required_with=WishSheetID"`
	RosterSheetID string      `yaml:"rosterSheetID,omitempty"`

	RecurringAbsences []model.RecurringAbsence `yaml:"recurringAbsences,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Rules returns the scheduling rules with any configured overrides applied
func (c *Config) Rules() shifts.Rules {
	rules := shifts.DefaultRules()
	if c.MaxWeekendsPerMonth != nil {
		rules.MaxWeekendsPerMonth = *c.MaxWeekendsPerMonth
	}
	return rules
}

// LoadWithEnv loads and validates the configuration from roster_config.<env>.yaml.
// It looks in the current directory first, then in the user's home directory.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findFile(configFileName(env))
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

// applyDefaults fills optional fields; DATABASE_URL may come from the environment or .env
func applyDefaults(cfg *Config) {
	if cfg.Storage == StoragePostgres && cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.WishColumns.StaffID == "" {
		cfg.WishColumns.StaffID = "staff_id"
	}
	if cfg.WishColumns.Date == "" {
		cfg.WishColumns.Date = "date"
	}
	if cfg.WishColumns.Shift == "" {
		cfg.WishColumns.Shift = "shift"
	}
	if cfg.WishColumns.DateOrder == "" {
		cfg.WishColumns.DateOrder = "dmy"
	}
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, r := range cfg.RecurringAbsences {
		if _, err := rrule.StrToRRule(r.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringAbsences[%d]: %w", i, err)
		}
	}

	return nil
}

func configFileName(env string) string {
	if env == "" {
		return "roster_config.yaml"
	}
	return "roster_config." + env + ".yaml"
}

// findFile looks for name in the current directory, then the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}
