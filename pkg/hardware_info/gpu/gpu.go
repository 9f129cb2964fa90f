package gpu

import (
	"log"

	"github.com/jpnorenam/sysinfo-lite/pkg/normalize"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

// Info lists the graphics adapters in the order the probe enumerates them. The result is
// never nil: a host without adapters, or one that can not be enumerated, has an empty list.
func Info(p probe.Probe) []types.GpuInfo {
	gpus := []types.GpuInfo{}

	adapters, err := p.GPUs()
	if err != nil {
		if utils.IsVerbose() {
			log.Printf("Error listing graphics adapters: %v", err)
		}
		return gpus
	}

	for _, facts := range adapters {
		gpus = append(gpus, types.GpuInfo{
			Vendor: normalize.Lookup(facts, probe.GpuVendor, normalize.Vendor),
			Model:  normalize.Lookup(facts, probe.GpuModel, normalize.String),
			Memory: normalize.Lookup(facts, probe.GpuMemory, normalize.Capacity),
			Cores:  normalize.Lookup(facts, probe.GpuCores, normalize.Count),
		})
	}

	return gpus
}
