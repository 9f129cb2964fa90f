// Package nvidia queries NVIDIA adapters through nvidia-smi.
package nvidia

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

var ErrNoDevice = errors.New("no devices were found")

// Query reads one --query-gpu field of the adapter in the given PCI slot. Sizes come back
// with their unit, e.g. "11264 MiB".
func Query(runner probe.Runner, slot string, field string) (probe.Raw, error) {
	/*
		$ nvidia-smi --id=00000000:01:00.0 --query-gpu=memory.total --format=csv,noheader
		4096 MiB
		$ nvidia-smi --id=00000000:02:00.0 --query-gpu=memory.total --format=csv,noheader
		No devices were found
	*/
	if runner == nil {
		return probe.Raw{}, fmt.Errorf("nvidia-smi: %w", probe.ErrNotSupported)
	}
	output, err := runner.Run("nvidia-smi", "--id="+slot, "--query-gpu="+field, "--format=csv,noheader")
	if err != nil {
		return probe.Raw{}, fmt.Errorf("error executing nvidia-smi: %w", err)
	}

	value, err := parseQuery(string(output))
	if err != nil {
		return probe.Raw{}, fmt.Errorf("nvidia-smi %s: %w", field, err)
	}
	return probe.Raw{Value: value}, nil
}

// parseQuery returns the single value printed for one adapter and one field.
func parseQuery(output string) (string, error) {
	value := strings.TrimSpace(output)
	if strings.Contains(value, "\n") {
		value, _, _ = strings.Cut(value, "\n")
		value = strings.TrimSpace(value)
	}

	switch {
	case value == "":
		return "", fmt.Errorf("empty output")
	case strings.EqualFold(value, ErrNoDevice.Error()):
		return "", ErrNoDevice
	case value == "[N/A]", value == "[Not Supported]":
		return "", probe.ErrNotSupported
	}
	return value, nil
}
