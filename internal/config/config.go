package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Source struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url"` // override for tests/mirrors; empty = builtin default
}

type Config struct {
	Search struct {
		Term string `yaml:"term"`
	} `yaml:"search"`

	Sources struct {
		Remotive    Source `yaml:"remotive"`
		TopStartups Source `yaml:"topstartups"`
		Wellfound   Source `yaml:"wellfound"`
	} `yaml:"sources"`

	Email struct {
		To        string `yaml:"to"`
		From      string `yaml:"from"`
		Subject   string `yaml:"subject"`
		SkipEmpty bool   `yaml:"skip_empty"` // don't send at all when no listings
	} `yaml:"email"`

	Fetch struct {
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		HostRatePerSec float64 `yaml:"host_rate_per_sec"`
		HostBurst      int     `yaml:"host_burst"`
	} `yaml:"fetch"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// ApplyEnv overlays the environment onto a loaded config. The recipient and
// sender can come from the scheduler's environment (TO_EMAIL / FROM_EMAIL)
// so the yaml file never has to carry a personal address.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("TO_EMAIL"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.Email.From = v
	}
	return cfg
}
