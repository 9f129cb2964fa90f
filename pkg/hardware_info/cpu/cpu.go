package cpu

import (
	"log"

	"github.com/jpnorenam/sysinfo-lite/pkg/normalize"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

// Info normalizes the processor facts of a probe.
func Info(facts probe.Facts) types.CpuInfo {
	info := types.CpuInfo{
		Vendor:        normalize.Lookup(facts, probe.CpuVendor, normalize.String),
		Model:         normalize.Lookup(facts, probe.CpuModel, normalize.String),
		PhysicalCores: normalize.Lookup(facts, probe.CpuPhysicalCores, normalize.Count),
		LogicalCores:  normalize.Lookup(facts, probe.CpuLogicalCores, normalize.Count),
		FrequencyMHz:  normalize.Lookup(facts, probe.CpuFrequency, normalize.FrequencyMHz),
	}

	// A core has at least one thread. The physical count is the less reliable of the two.
	physical, hasPhysical := info.PhysicalCores.Get()
	logical, hasLogical := info.LogicalCores.Get()
	if hasPhysical && hasLogical && physical > logical {
		if utils.IsVerbose() {
			log.Printf("Ignoring %d physical cores, more than the %d logical cores", physical, logical)
		}
		info.PhysicalCores = types.Unavailable[uint32]()
	}

	return info
}
