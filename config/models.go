package config

import "time"

type Site struct {
	Name            string   `mapstructure:"name" validate:"required"`
	URL             string   `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds  int      `mapstructure:"timeout" validate:"gte=0"`
	ExpectedStatus  int      `mapstructure:"expected_status" validate:"gte=0"`
	ContentKeywords []string `mapstructure:"content_keywords"`
}

func (s Site) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

type Settings struct {
	RetryAttempts     int    `mapstructure:"retry_attempts" validate:"gte=0"`
	RetryDelaySeconds int    `mapstructure:"retry_delay" validate:"gte=0"`
	UserAgent         string `mapstructure:"user_agent"`
}

func (s Settings) RetryDelay() time.Duration {
	return time.Duration(s.RetryDelaySeconds) * time.Second
}

type Notification struct {
	Email         string `mapstructure:"email" validate:"required,email"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type Config struct {
	Env          string       `mapstructure:"env"`
	ServiceName  string       `mapstructure:"service_name"`
	CacheDir     string       `mapstructure:"cache_dir"`
	Websites     []Site       `mapstructure:"websites" validate:"required,min=1,unique=Name,dive"`
	Settings     Settings     `mapstructure:"settings"`
	Notification Notification `mapstructure:"notification"`
}
