package hardware_info

import (
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/darwin"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/portable"
)

func nativeProbe() probe.Probe {
	return probe.Merge(darwin.New(probe.NewExecRunner()), portable.New())
}
