//go:build darwin

package darwin

import (
	"fmt"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"golang.org/x/sys/unix"
)

type Probe struct {
	runner probe.Runner
}

func New(runner probe.Runner) *Probe {
	return &Probe{runner: runner}
}

// CPU reads the processor facts. hw.cpufrequency does not exist on Apple silicon.
func (p *Probe) CPU() probe.Facts {
	return probe.Facts{
		probe.CpuVendor:        cpuVendor,
		probe.CpuModel:         sysctlString("machdep.cpu.brand_string"),
		probe.CpuPhysicalCores: sysctlUint32("hw.physicalcpu"),
		probe.CpuLogicalCores:  sysctlUint32("hw.logicalcpu"),
		probe.CpuFrequency:     sysctlUint64("hw.cpufrequency", probe.UnitHz),
	}
}

// RAM only reports the total. vm.page_free_count leaves out inactive and purgeable pages,
// so available memory is left to gopsutil, which counts them.
func (p *Probe) RAM() probe.Facts {
	return probe.Facts{
		probe.RamTotal: sysctlUint64("hw.memsize", probe.UnitBytes),
	}
}

func (p *Probe) OS() probe.Facts {
	return probe.Facts{
		probe.OsFamily:  sysctlString("kern.ostype"),
		probe.OsName:    probe.Value("macOS", probe.UnitNone),
		probe.OsVersion: sysctlString("kern.osproductversion"),
		probe.OsKernel:  sysctlString("kern.osrelease"),
		probe.OsArch:    sysctlString("hw.machine"),
	}
}

func (p *Probe) GPUs() ([]probe.Facts, error) {
	if p.runner == nil {
		return nil, fmt.Errorf("system_profiler: %w", probe.ErrNotSupported)
	}
	output, err := p.runner.Run("system_profiler", "SPDisplaysDataType")
	if err != nil {
		return nil, fmt.Errorf("error executing system_profiler: %w", err)
	}
	return displayFacts(string(output)), nil
}

// cpuVendor is only reported by Intel processors.
func cpuVendor() (probe.Raw, error) {
	vendor, err := unix.Sysctl("machdep.cpu.vendor")
	if err == nil {
		return probe.Raw{Value: vendor}, nil
	}
	if arm64, armErr := unix.SysctlUint32("hw.optional.arm64"); armErr == nil && arm64 == 1 {
		return probe.Raw{Value: "Apple"}, nil
	}
	return probe.Raw{}, fmt.Errorf("machdep.cpu.vendor: %w", err)
}

func sysctlString(name string) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		value, err := unix.Sysctl(name)
		if err != nil {
			return probe.Raw{}, fmt.Errorf("%s: %w", name, err)
		}
		return probe.Raw{Value: value}, nil
	}
}

func sysctlUint32(name string) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		value, err := unix.SysctlUint32(name)
		if err != nil {
			return probe.Raw{}, fmt.Errorf("%s: %w", name, err)
		}
		return probe.Raw{Value: value}, nil
	}
}

func sysctlUint64(name string, unit probe.Unit) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		value, err := unix.SysctlUint64(name)
		if err != nil {
			return probe.Raw{}, fmt.Errorf("%s: %w", name, err)
		}
		return probe.Raw{Value: value, Unit: unit}, nil
	}
}
