package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config lists the Directory accounts to provision.
type Config struct {
	Accounts []AccountSpec `yaml:"accounts"`
	DryRun   bool          `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// AccountSpec describes one account in the seed file.
type AccountSpec struct {
	Email       string   `yaml:"email"`
	DisplayName string   `yaml:"display_name"`
	Role        string   `yaml:"role"`
	Headline    string   `yaml:"headline"`
	Skills      []string `yaml:"skills"`
}

// LoadConfig reads the seed file. Environment variables override scalar settings.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder config: path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}
	return &cfg, nil
}
