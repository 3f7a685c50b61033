package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	defaultTimeoutSeconds = 10
	defaultExpectedStatus = 200
)

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// default first
	setDefaults(v)

	// File Config
	v.SetConfigFile(path)
	v.SetConfigType("json")

	// Env Config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read File
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// viper defaults do not reach slice elements, so per-site
	// defaults are filled in after unmarshalling
	normalize(&cfg)

	// Validate
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("service_name", "canary-monitor")
	v.SetDefault("cache_dir", "cache")

	v.SetDefault("settings.retry_attempts", 2)
	v.SetDefault("settings.retry_delay", 5)
	v.SetDefault("settings.user_agent", "canary-monitor/1.0 (+https://github.com/3d12/canary)")

	v.SetDefault("notification.subject_prefix", "[WEBSITE ALERT]")
}

func normalize(cfg *Config) {
	for i := range cfg.Websites {
		if cfg.Websites[i].TimeoutSeconds == 0 {
			cfg.Websites[i].TimeoutSeconds = defaultTimeoutSeconds
		}
		if cfg.Websites[i].ExpectedStatus == 0 {
			cfg.Websites[i].ExpectedStatus = defaultExpectedStatus
		}
	}
}

func validateConfig(cfg *Config) error {

	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return formatValidationErrors(ve)
		}
		return err
	}
	return nil
}

func formatValidationErrors(ve validator.ValidationErrors) error {
	var sb strings.Builder
	sb.WriteString("config validation failed:\n")

	for _, fe := range ve {
		fmt.Fprintf(&sb, "- field '%s' failed on '%s'\n", fe.Namespace(), fe.Tag())
	}
	return errors.New(sb.String())
}
