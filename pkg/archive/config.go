package archive

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the scan settings of the rnxcheck command.
type Config struct {
	Root    string `yaml:"root"` // archive root to scan
	Workers int    `yaml:"workers" validate:"min=0,max=256"`
	Report  string `yaml:"report"` // report file, empty for stdout
	Format  string `yaml:"format" validate:"omitempty,oneof=column csv json"`
	Quiet   bool   `yaml:"quiet"` // suppress the summary line
}

// use a single instance of Validate, it caches struct info
var validate = validator.New()

// DefaultConfig returns the built-in scan settings.
func DefaultConfig() Config {
	return Config{Workers: defaultWorkers, Format: "column"}
}

// LoadConfig reads the YAML file at path on top of the default settings.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings against their constraints.
func (cfg *Config) Validate() error {
	return validate.Struct(cfg)
}
