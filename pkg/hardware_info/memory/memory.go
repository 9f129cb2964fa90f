package memory

import (
	"log"

	"github.com/jpnorenam/sysinfo-lite/pkg/normalize"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
)

// Info normalizes the memory facts of a probe. Both values are in bytes.
func Info(facts probe.Facts) types.RamInfo {
	info := types.RamInfo{
		Total:     normalize.Lookup(facts, probe.RamTotal, normalize.Capacity),
		Available: normalize.Lookup(facts, probe.RamAvailable, normalize.Bytes),
	}

	total, hasTotal := info.Total.Get()
	available, hasAvailable := info.Available.Get()
	if hasTotal && hasAvailable && available > total {
		if utils.IsVerbose() {
			log.Printf("Ignoring available memory of %s, more than the total of %s",
				utils.FmtBytes(available), utils.FmtBytes(total))
		}
		info.Available = types.Unavailable[uint64]()
	}

	return info
}
