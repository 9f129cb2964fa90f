package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jpnorenam/sysinfo-lite/cmd/cli/common"
	"github.com/jpnorenam/sysinfo-lite/pkg/storage"
)

// staticConfig serves fixed flat values
type staticConfig map[string]any

func (c staticConfig) Get(key string) (map[string]any, error) {
	values := make(map[string]any)
	for k, v := range c {
		if k == key || strings.HasPrefix(k, key+".") {
			values[k] = v
		}
	}
	return values, nil
}

func (c staticConfig) GetAll() (map[string]any, error) {
	values := make(map[string]any, len(c))
	for k, v := range c {
		values[k] = v
	}
	return values, nil
}

func runGet(t *testing.T, cfg storage.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cobraCmd := GetCommand(&common.Context{Config: cfg})
	cobraCmd.SetOut(&out)
	cobraCmd.SetErr(&bytes.Buffer{})
	cobraCmd.SetArgs(args)
	err := cobraCmd.Execute()
	return out.String(), err
}

func TestGetValue(t *testing.T) {
	cfg := staticConfig{
		"format":        "json",
		"output.indent": "2",
	}

	tests := []struct {
		key      string
		expected string
	}{
		{"format", "json\n"},
		{"output", "output.indent: \"2\"\n"},
	}
	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			output, err := runGet(t, cfg, test.key)
			if err != nil {
				t.Fatal(err)
			}
			if output != test.expected {
				t.Errorf("got %q, want %q", output, test.expected)
			}
		})
	}

	_, err := runGet(t, cfg, "root")
	if !errors.Is(err, storage.ErrorNotFound) {
		t.Errorf("expected ErrorNotFound for an unset key, got %v", err)
	}
}
