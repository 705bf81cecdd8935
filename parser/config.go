package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/TFMV/codegauge/types"
)

// DefaultConfigFile is the project configuration looked up when no
// explicit path is given.
const DefaultConfigFile = "codegauge.yaml"

// Config is the project configuration the engine reads once at
// construction: which files to analyze and the gate thresholds.
type Config struct {
	Include    []string                   `yaml:"include"`
	Exclude    []string                   `yaml:"exclude"`
	Thresholds types.ComplexityThresholds `yaml:"thresholds"`
}

// DefaultConfig returns the configuration used when no project file
// exists: all JavaScript/TypeScript sources, minus declaration files and
// dependency/build directories.
func DefaultConfig() Config {
	return Config{
		Include: []string{
			"**/*.ts",
			"**/*.tsx",
			"**/*.js",
			"**/*.jsx",
		},
		Exclude: []string{
			"**/node_modules/**",
			"**/dist/**",
			"**/build/**",
			"**/*.d.ts",
		},
		Thresholds: types.DefaultThresholds(),
	}
}

// LoadConfig loads the project configuration from path, overlaying the
// file's values on the defaults. An empty path falls back to
// DefaultConfigFile; if that does not exist the defaults are returned.
// An unreadable or malformed file is a fatal configuration error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read project configuration %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse project configuration %s: %w", path, err)
	}

	return cfg, nil
}
