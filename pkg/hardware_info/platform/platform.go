// Package platform collects the operating system identity. Unlike the hardware categories,
// these values do not change while the process runs.
package platform

import (
	"github.com/jpnorenam/sysinfo-lite/pkg/normalize"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
)

func Info(facts probe.Facts) types.OsInfo {
	return types.OsInfo{
		Family:  normalize.Lookup(facts, probe.OsFamily, normalize.OSFamily),
		Name:    normalize.Lookup(facts, probe.OsName, normalize.String),
		Version: normalize.Lookup(facts, probe.OsVersion, normalize.String),
		Kernel:  normalize.Lookup(facts, probe.OsKernel, normalize.String),
		Arch:    normalize.Lookup(facts, probe.OsArch, normalize.Arch),
	}
}
