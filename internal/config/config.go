package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerscope.yaml configuration.
// RequestTimeout is kept as a duration string ("60s", "2m") so the file stays
// hand-editable; Timeout parses it.
type Config struct {
	APIBaseURL      string `yaml:"api_base_url"`
	DefaultTenantID string `yaml:"default_tenant_id"`
	CurrencyCode    string `yaml:"currency_code"`
	DateFormat      string `yaml:"date_format"`
	DateTimeFormat  string `yaml:"datetime_format"`
	PageSize        int    `yaml:"page_size"`
	RequestTimeout  string `yaml:"request_timeout"`
	LogLevel        string `yaml:"log_level"`
	SettingsPath    string `yaml:"settings_path"`
}

// defaultRequestTimeout applies when the configured value is absent or does
// not parse.
const defaultRequestTimeout = 60 * time.Second

// Timeout returns the parsed request timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return defaultRequestTimeout
	}
	return d
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		APIBaseURL:      "https://mystra-api-gateway-production.up.railway.app",
		DefaultTenantID: "0198c8b0-e911-7334-ab83-a0d682e0dc05",
		CurrencyCode:    "LKR",
		DateFormat:      "Jan 02, 2006",
		DateTimeFormat:  "Jan 02, 2006 15:04",
		PageSize:        10,
		RequestTimeout:  defaultRequestTimeout.String(),
		LogLevel:        "info",
		SettingsPath:    defaultSettingsPath(),
	}
}

// Load reads a ledgerscope.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// FromEnv overlays LEDGERSCOPE_* environment variables onto cfg.
// A .env file in the working directory is loaded first if present.
func FromEnv(cfg *Config) *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("LEDGERSCOPE")
	v.SetDefault("API_BASE_URL", cfg.APIBaseURL)
	v.SetDefault("DEFAULT_TENANT_ID", cfg.DefaultTenantID)
	v.SetDefault("CURRENCY_CODE", cfg.CurrencyCode)
	v.SetDefault("DATE_FORMAT", cfg.DateFormat)
	v.SetDefault("DATETIME_FORMAT", cfg.DateTimeFormat)
	v.SetDefault("PAGE_SIZE", cfg.PageSize)
	v.SetDefault("REQUEST_TIMEOUT", cfg.RequestTimeout)
	v.SetDefault("LOG_LEVEL", cfg.LogLevel)
	v.SetDefault("SETTINGS_PATH", cfg.SettingsPath)
	v.AutomaticEnv()

	cfg.APIBaseURL = v.GetString("API_BASE_URL")
	cfg.DefaultTenantID = v.GetString("DEFAULT_TENANT_ID")
	cfg.CurrencyCode = v.GetString("CURRENCY_CODE")
	cfg.DateFormat = v.GetString("DATE_FORMAT")
	cfg.DateTimeFormat = v.GetString("DATETIME_FORMAT")
	cfg.PageSize = v.GetInt("PAGE_SIZE")
	if timeout := v.GetString("REQUEST_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			cfg.RequestTimeout = timeout
		}
	}
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.SettingsPath = v.GetString("SETTINGS_PATH")
	return cfg
}

// Resolve loads config from path if it exists, else defaults, then applies
// environment overrides. A missing file is not an error; a corrupt one is.
func Resolve(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			loaded, err := Load(path)
			if err != nil {
				return nil, err
			}
			cfg = merge(cfg, loaded)
		}
	}
	return FromEnv(cfg), nil
}

// merge fills zero-valued fields of loaded from defaults.
func merge(defaults, loaded *Config) *Config {
	out := *loaded
	if out.APIBaseURL == "" {
		out.APIBaseURL = defaults.APIBaseURL
	}
	if out.DefaultTenantID == "" {
		out.DefaultTenantID = defaults.DefaultTenantID
	}
	if out.CurrencyCode == "" {
		out.CurrencyCode = defaults.CurrencyCode
	}
	if out.DateFormat == "" {
		out.DateFormat = defaults.DateFormat
	}
	if out.DateTimeFormat == "" {
		out.DateTimeFormat = defaults.DateTimeFormat
	}
	if out.PageSize <= 0 {
		out.PageSize = defaults.PageSize
	}
	if out.RequestTimeout == "" {
		out.RequestTimeout = defaults.RequestTimeout
	}
	if out.LogLevel == "" {
		out.LogLevel = defaults.LogLevel
	}
	if out.SettingsPath == "" {
		out.SettingsPath = defaults.SettingsPath
	}
	return &out
}

func defaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "ledger-auth-settings.json"
	}
	return filepath.Join(home, ".ledgerscope", "auth-settings.json")
}
