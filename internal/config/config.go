// Package config holds the run configuration for the generation
// pipeline. Values come from an optional config.yaml with environment
// variable overrides; command-line flags take final precedence in the
// CLIs.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "config.yaml"

// Config is the generation run configuration.
type Config struct {
	// ProfileCount is the number of synthetic consumer profiles to generate.
	ProfileCount int `yaml:"profile_count" env:"PROFILE_COUNT" env-default:"5000"`
	// TransactionCount is the number of purchase attempts; the recorded
	// transaction count is lower because some attempts are abandoned.
	TransactionCount int `yaml:"transaction_count" env:"TRANSACTION_COUNT" env-default:"25000"`
	// Seed seeds the random source; 0 means derive one from the clock.
	Seed int64 `yaml:"seed" env:"SEED" env-default:"0"`
	// OutputDir is where every stage writes its files.
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR" env-default:"."`
	// CatalogFile optionally overrides the built-in catalog tables.
	CatalogFile string `yaml:"catalog_file" env:"CATALOG_FILE" env-default:""`
}

// Load reads the configuration from path (falling back to environment
// variables only when the file does not exist).
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read environment: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}
