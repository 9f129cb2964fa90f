// Package portable answers every category on any OS gopsutil supports. It is the fallback
// behind the native backends, and the only backend on platforms without one.
package portable

import (
	"fmt"
	"runtime"

	"github.com/jaypipes/ghw"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/klauspost/cpuid/v2"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

type Probe struct{}

func New() *Probe {
	return &Probe{}
}

func (p *Probe) CPU() probe.Facts {
	infos, infoErr := cpu.Info()
	if infoErr == nil && len(infos) == 0 {
		infoErr = fmt.Errorf("cpu info: %w", probe.ErrNotSupported)
	}
	first := func() (cpu.InfoStat, error) {
		if infoErr != nil {
			return cpu.InfoStat{}, infoErr
		}
		return infos[0], nil
	}

	return probe.Facts{
		probe.CpuVendor: func() (probe.Raw, error) {
			if info, err := first(); err == nil && info.VendorID != "" {
				return probe.Raw{Value: info.VendorID}, nil
			}
			return nonEmpty("cpuid vendor", cpuid.CPU.VendorString)
		},
		probe.CpuModel: func() (probe.Raw, error) {
			if info, err := first(); err == nil && info.ModelName != "" {
				return probe.Raw{Value: info.ModelName}, nil
			}
			return nonEmpty("cpuid brand", cpuid.CPU.BrandName)
		},
		probe.CpuPhysicalCores: func() (probe.Raw, error) {
			return coreCount(false, cpuid.CPU.PhysicalCores)
		},
		probe.CpuLogicalCores: func() (probe.Raw, error) {
			return coreCount(true, cpuid.CPU.LogicalCores)
		},
		probe.CpuFrequency: func() (probe.Raw, error) {
			if cpuid.CPU.Hz > 0 {
				return probe.Raw{Value: cpuid.CPU.Hz, Unit: probe.UnitHz}, nil
			}
			info, err := first()
			if err != nil {
				return probe.Raw{}, err
			}
			return probe.Raw{Value: info.Mhz, Unit: probe.UnitMHz}, nil
		},
	}
}

func (p *Probe) RAM() probe.Facts {
	vm, err := mem.VirtualMemory()
	if err != nil {
		err = fmt.Errorf("error reading virtual memory: %w", err)
		return probe.Facts{
			probe.RamTotal:     probe.Failed(err),
			probe.RamAvailable: probe.Failed(err),
		}
	}

	return probe.Facts{
		probe.RamTotal:     probe.Value(vm.Total, probe.UnitBytes),
		probe.RamAvailable: probe.Value(vm.Available, probe.UnitBytes),
	}
}

func (p *Probe) OS() probe.Facts {
	info, err := host.Info()
	if err != nil {
		err = fmt.Errorf("error reading host info: %w", err)
		return probe.Facts{
			probe.OsFamily:  probe.Value(runtime.GOOS, probe.UnitNone),
			probe.OsName:    probe.Failed(err),
			probe.OsVersion: probe.Failed(err),
			probe.OsKernel:  probe.Failed(err),
			probe.OsArch:    probe.Failed(err),
		}
	}

	return probe.Facts{
		probe.OsFamily:  probe.Value(info.OS, probe.UnitNone),
		probe.OsName:    probe.Value(info.Platform, probe.UnitNone),
		probe.OsVersion: probe.Value(info.PlatformVersion, probe.UnitNone),
		probe.OsKernel:  probe.Value(info.KernelVersion, probe.UnitNone),
		probe.OsArch:    probe.Value(info.KernelArch, probe.UnitNone),
	}
}

// GPUs lists the graphics cards ghw finds on the PCI bus. ghw knows nothing about memory
// sizes or core counts.
func (p *Probe) GPUs() ([]probe.Facts, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("error listing graphics cards: %w", err)
	}

	var adapters []probe.Facts
	for _, card := range info.GraphicsCards {
		facts := probe.Facts{}
		if device := card.DeviceInfo; device != nil {
			if device.Vendor != nil {
				facts[probe.GpuVendor] = probe.Value(device.Vendor.Name, probe.UnitNone)
			}
			if device.Product != nil {
				facts[probe.GpuModel] = probe.Value(device.Product.Name, probe.UnitNone)
			}
		}
		adapters = append(adapters, facts)
	}
	return adapters, nil
}

func coreCount(logical bool, fallback int) (probe.Raw, error) {
	count, err := cpu.Counts(logical)
	if err == nil && count > 0 {
		return probe.Raw{Value: count}, nil
	}
	if fallback > 0 {
		return probe.Raw{Value: fallback}, nil
	}
	if err == nil {
		err = probe.ErrNotSupported
	}
	return probe.Raw{}, fmt.Errorf("core count: %w", err)
}

func nonEmpty(name string, value string) (probe.Raw, error) {
	if value == "" {
		return probe.Raw{}, fmt.Errorf("%s: %w", name, probe.ErrNotSupported)
	}
	return probe.Raw{Value: value}, nil
}
