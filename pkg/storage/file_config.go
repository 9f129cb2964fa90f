package storage

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// fileConfig reads key="value" pairs from a flat dotenv file. It is read-only.
type fileConfig struct {
	path string
}

func newFileConfig(path string) *fileConfig {
	return &fileConfig{path: path}
}

// GetAll returns the values in the file. A missing file sets nothing.
func (c *fileConfig) GetAll() (map[string]any, error) {
	env, err := godotenv.Read(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	values := make(map[string]any, len(env))
	for k, v := range env {
		values[k] = v
	}
	return values, nil
}
