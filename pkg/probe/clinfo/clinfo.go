// Package clinfo reads OpenCL device properties, used for the memory size of adapters
// whose driver does not expose it in sysfs.
package clinfo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

type clinfo struct {
	Devices []struct {
		Online []device `json:"online"`
	} `json:"devices"`
}

type device struct {
	Name          string `json:"CL_DEVICE_NAME"`
	GlobalMemSize uint64 `json:"CL_DEVICE_GLOBAL_MEM_SIZE"`
	PciBusInfo    string `json:"CL_DEVICE_PCI_BUS_INFO_KHR"`
}

// GlobalMemSize returns the memory of the OpenCL device in the given PCI slot.
func GlobalMemSize(runner probe.Runner, slot string) (probe.Raw, error) {
	/*
		`clinfo --json` reports a field `CL_DEVICE_GLOBAL_MEM_SIZE` which corresponds to the
		installed hardware's vRAM, and `CL_DEVICE_PCI_BUS_INFO_KHR` such as "PCI-E, 0000:03:00.0"
	*/
	if runner == nil {
		return probe.Raw{}, fmt.Errorf("clinfo: %w", probe.ErrNotSupported)
	}
	output, err := runner.Run("clinfo", "--json")
	if err != nil {
		return probe.Raw{}, fmt.Errorf("error executing clinfo: %w", err)
	}

	devices, err := parseJson(output)
	if err != nil {
		return probe.Raw{}, fmt.Errorf("failed to parse clinfo json: %w", err)
	}

	for _, d := range devices {
		if slot != "" && strings.Contains(d.PciBusInfo, slot) {
			return probe.Raw{Value: d.GlobalMemSize, Unit: probe.UnitBytes}, nil
		}
	}
	return probe.Raw{}, fmt.Errorf("clinfo: no device in slot %s: %w", slot, probe.ErrNotSupported)
}

// parseJson returns the online devices of all platforms.
func parseJson(data []byte) ([]device, error) {
	var info clinfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, err
	}

	var devices []device
	for _, platform := range info.Devices {
		devices = append(devices, platform.Online...)
	}
	return devices, nil
}
