package procfs

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

// lshwGpus lists display controllers reported by "lshw -C display". Memory sizes are not
// reported by lshw.
func (p *Probe) lshwGpus() ([]probe.Facts, error) {
	output, err := p.run("lshw", "-C", "display")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, probe.ErrNotSupported) {
			// nothing left to ask, the host has no adapter we can see
			return nil, nil
		}
		return nil, err
	}

	var adapters []probe.Facts
	for _, device := range parseLshw(output) {
		adapters = append(adapters, probe.Facts{
			probe.GpuVendor: stringFact(device.vendor),
			probe.GpuModel:  stringFact(device.product),
		})
	}
	return adapters, nil
}

type lshwDevice struct {
	vendor  string
	product string
}

// parseLshw splits the output of lshw into devices, each starting with a "*-display" line.
func parseLshw(output string) []lshwDevice {
	var devices []lshwDevice
	var current *lshwDevice

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "*-") {
			devices = append(devices, lshwDevice{})
			current = &devices[len(devices)-1]
			continue
		}
		if current == nil {
			continue
		}

		if value, found := strings.CutPrefix(line, "vendor:"); found {
			current.vendor = strings.TrimSpace(value)
		} else if value, found := strings.CutPrefix(line, "product:"); found {
			current.product = strings.TrimSpace(value)
		}
	}

	return devices
}
