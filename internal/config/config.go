package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/commitlens/internal/analyzer"
	"github.com/maxbolgarin/commitlens/internal/provider"
	"github.com/maxbolgarin/commitlens/internal/report"
	"github.com/maxbolgarin/errm"
)

// Config represents the main application configuration
type Config struct {
	Branch   string          `yaml:"branch" env:"BRANCH"`
	Provider provider.Config `yaml:"provider"`
	Analyzer analyzer.Config `yaml:"analyzer"`
	Report   report.Config   `yaml:"report"`
}

// Load reads configuration from a YAML file when a path is given, falling
// back to environment variables otherwise. Component-level preparation and
// validation happens inside each component's constructor.
func Load(path string) (Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, errm.Wrap(err, "read config from environment")
		}
		return cfg, nil
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, errm.Wrap(err, "read config file")
	}
	return cfg, nil
}

// Validate validates the top-level configuration
func (c *Config) Validate() error {
	if c.Branch == "" {
		return ErrMissingBranch
	}
	return nil
}
