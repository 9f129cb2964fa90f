package procfs

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

func (p *Probe) RAM() probe.Facts {
	data, err := p.readFile("/proc/meminfo")
	if err != nil {
		err = fmt.Errorf("error reading meminfo: %w", err)
		return probe.Facts{
			probe.RamTotal:     probe.Failed(err),
			probe.RamAvailable: probe.Failed(err),
		}
	}

	memInfo := keyValues(data, ":")
	available, ok := memInfo["MemAvailable"]
	if !ok {
		// kernels before 3.14
		available = memInfo["MemFree"]
	}

	return probe.Facts{
		probe.RamTotal:     memInfoFact(memInfo["MemTotal"]),
		probe.RamAvailable: memInfoFact(available),
	}
}

// memInfoFact turns a meminfo value such as "16303452 kB" into a raw size.
func memInfoFact(value string) func() (probe.Raw, error) {
	if value == "" {
		return probe.Failed(probe.ErrNotSupported)
	}
	number, unit, _ := strings.Cut(value, " ")
	if unit == "kB" {
		return probe.Value(number, probe.UnitKiB)
	}
	return probe.Value(value, probe.UnitNone)
}
