package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Quiz struct {
		TTL              string `yaml:"ttl"`
		TimeLimit        string `yaml:"time_limit"`
		WarningThreshold string `yaml:"warning_threshold"`
		AutoSubmit       *bool  `yaml:"auto_submit"`
		TickInterval     string `yaml:"tick_interval"`
	} `yaml:"quiz"`
	Results struct {
		TTL string `yaml:"ttl"`
	} `yaml:"results"`
	Auth Auth `yaml:"auth"`
}

// Auth configures the external identity provider.
type Auth struct {
	Enabled      bool     `yaml:"enabled"`
	JWTSecret    string   `yaml:"jwt_secret"`
	Issuer       string   `yaml:"issuer"`
	CookieName   string   `yaml:"cookie_name"`
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	RedirectURL  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

// Load reads YAML config from path. AUTH_JWT_SECRET overrides the file's secret.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if secret := os.Getenv("AUTH_JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "session"
	}
	return cfg, nil
}

// AutoSubmitEnabled defaults to true when unset.
func (c Config) AutoSubmitEnabled() bool {
	if c.Quiz.AutoSubmit == nil {
		return true
	}
	return *c.Quiz.AutoSubmit
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// Seconds parses a duration string into whole seconds, or returns the fallback.
func Seconds(raw string, fallback int) int {
	d := TTLDuration(raw, time.Duration(fallback)*time.Second)
	return int(d / time.Second)
}
