//go:build !linux && !darwin

package hardware_info

import (
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/portable"
)

func nativeProbe() probe.Probe {
	return portable.New()
}
