package hardware_info

import (
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/portable"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/procfs"
)

func nativeProbe() probe.Probe {
	return probe.Merge(procfs.New("/", probe.NewExecRunner()), portable.New())
}
