// Package config loads CLI settings from a .env file, an optional YAML file
// and PORKBUN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	porkbun "github.com/Oxtaly/porkbun-wrapper"
	"github.com/Oxtaly/porkbun-wrapper/internal/validate"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "PORKBUN"

// Config holds the CLI configuration.
type Config struct {
	APIKey       string        `mapstructure:"api_key" json:"api_key" validate:"required"`
	SecretAPIKey string        `mapstructure:"secret_api_key" json:"secret_api_key" validate:"required"`
	BaseURL      string        `mapstructure:"base_url" json:"base_url" validate:"omitempty,absurl"`
	UserAgent    string        `mapstructure:"user_agent" json:"user_agent"`
	Timeout      time.Duration `mapstructure:"timeout" json:"timeout" validate:"min=0"`
}

var keys = []string{"api_key", "secret_api_key", "base_url", "user_agent", "timeout"}

// Load reads the configuration. An empty path searches for porkbun.yaml in
// the working directory and in $HOME/.config/porkbun; a missing file is not
// an error in that case. Environment variables override file values.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	vip := viper.New()
	if path != "" {
		vip.SetConfigFile(path)
	} else {
		vip.SetConfigName("porkbun")
		vip.AddConfigPath(".")
		vip.AddConfigPath("$HOME/.config/porkbun")
	}
	vip.SetConfigType("yaml")
	vip.SetEnvPrefix(EnvPrefix)
	for _, key := range keys {
		if err := vip.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Check(validate.Struct(cfg)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ClientOptions translates the optional settings into client options.
func (c *Config) ClientOptions() []porkbun.Option {
	var opts []porkbun.Option
	if c.BaseURL != "" {
		opts = append(opts, porkbun.WithBaseURL(c.BaseURL))
	}
	if c.UserAgent != "" {
		opts = append(opts, porkbun.WithUserAgent(c.UserAgent))
	}
	if c.Timeout > 0 {
		opts = append(opts, porkbun.WithTimeout(c.Timeout))
	}
	return opts
}
