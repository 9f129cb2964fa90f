// Package darwin reads hardware and OS facts on macOS through sysctl and system_profiler.
package darwin

import (
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

type displayAdapter struct {
	model  string
	vendor string
	vram   string
	cores  string
}

// parseDisplays reads the output of "system_profiler SPDisplaysDataType". Every
// "Chipset Model" line starts a new adapter.
func parseDisplays(output string) []displayAdapter {
	var adapters []displayAdapter

	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		if key == "Chipset Model" {
			adapters = append(adapters, displayAdapter{model: value})
			continue
		}
		if len(adapters) == 0 {
			continue
		}
		current := &adapters[len(adapters)-1]

		switch key {
		case "Vendor":
			if current.vendor == "" {
				current.vendor = value
			}
		case "VRAM (Total)", "VRAM (Dynamic, Max)":
			if current.vram == "" {
				current.vram = value
			}
		case "Total Number of Cores":
			current.cores = value
		}
	}

	return adapters
}

func displayFacts(output string) []probe.Facts {
	var facts []probe.Facts
	for _, adapter := range parseDisplays(output) {
		facts = append(facts, probe.Facts{
			probe.GpuVendor: optional(adapter.vendor, probe.UnitNone),
			probe.GpuModel:  optional(adapter.model, probe.UnitNone),
			probe.GpuMemory: optional(adapter.vram, probe.UnitNone),
			probe.GpuCores:  optional(adapter.cores, probe.UnitNone),
		})
	}
	return facts
}

func optional(value string, unit probe.Unit) func() (probe.Raw, error) {
	if value == "" {
		return probe.Failed(probe.ErrNotSupported)
	}
	return probe.Value(value, unit)
}
