package storage

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
)

type Config interface {
	Get(key string) (map[string]any, error)
	GetAll() (map[string]any, error)
}

const (
	// ConfigPathEnv overrides the location of the config file
	ConfigPathEnv = "SYSINFO_CONFIG"

	FormatKey = "format"
	RootKey   = "root"
)

type config struct {
	// sources in order of precedence, from lowest to highest
	sources []storage
}

// NewConfig returns the CLI configuration: built-in defaults, overridden by the values in the
// config file.
func NewConfig() Config {
	return NewFileConfig(defaultConfigPath())
}

// NewFileConfig is NewConfig with an explicit config file.
func NewFileConfig(path string) Config {
	return &config{
		sources: []storage{
			defaults{FormatKey: "yaml"},
			newFileConfig(path),
		},
	}
}

func defaultConfigPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sysinfo", "config.env")
}

// Get returns one or more configuration fields as a flat map, after applying precedence rules
func (c *config) Get(key string) (map[string]any, error) {
	configs, err := c.GetAll()
	if err != nil {
		return nil, err
	}

	// Only keep exact key matches and nested keys, e.g. format and format.indent
	for k := range configs {
		if k != key && !strings.HasPrefix(k, key+".") {
			delete(configs, k)
		}
	}

	return configs, nil
}

// GetAll returns all configurations as a flat map
func (c *config) GetAll() (map[string]any, error) {
	finalMap := make(map[string]any)
	for _, source := range c.sources {
		values, err := source.GetAll()
		if err != nil {
			return nil, fmt.Errorf("error loading configurations: %w", err)
		}
		maps.Copy(finalMap, values)
	}
	return finalMap, nil
}
