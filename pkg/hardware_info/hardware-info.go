package hardware_info

import (
	"sync"

	"github.com/jpnorenam/sysinfo-lite/pkg/hardware_info/cpu"
	"github.com/jpnorenam/sysinfo-lite/pkg/hardware_info/gpu"
	"github.com/jpnorenam/sysinfo-lite/pkg/hardware_info/memory"
	"github.com/jpnorenam/sysinfo-lite/pkg/hardware_info/platform"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
)

// Collector gathers normalized information through a probe. All of its methods are total:
// a fact that can not be read is reported as absent instead of failing the whole query.
type Collector struct {
	probe probe.Probe
}

func New(p probe.Probe) *Collector {
	return &Collector{probe: p}
}

// Get takes a full snapshot. Each category is queried independently.
func (c *Collector) Get() types.SystemInfo {
	return types.SystemInfo{
		Cpu:  c.Cpu(),
		Ram:  c.Ram(),
		Gpus: c.Gpus(),
		Os:   c.Os(),
	}
}

func (c *Collector) Cpu() types.CpuInfo {
	return cpu.Info(c.probe.CPU())
}

func (c *Collector) Ram() types.RamInfo {
	return memory.Info(c.probe.RAM())
}

func (c *Collector) Gpus() []types.GpuInfo {
	return gpu.Info(c.probe)
}

func (c *Collector) Os() types.OsInfo {
	return platform.Info(c.probe.OS())
}

var native = sync.OnceValue(func() *Collector {
	return New(nativeProbe())
})

// Native returns the collector for the running host. The probe is chosen once per process.
func Native() *Collector {
	return native()
}

// Get takes a full snapshot of the running host.
func Get() types.SystemInfo {
	return native().Get()
}

func Cpu() types.CpuInfo {
	return native().Cpu()
}

func Ram() types.RamInfo {
	return native().Ram()
}

func Gpus() []types.GpuInfo {
	return native().Gpus()
}

func Os() types.OsInfo {
	return native().Os()
}
