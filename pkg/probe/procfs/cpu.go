package procfs

import (
	"fmt"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

type cpuInfo struct {
	vendor        string
	model         string
	logicalCores  int
	physicalCores int
}

const (
	baseFrequencyPath = "/sys/devices/system/cpu/cpu0/cpufreq/base_frequency"
	maxFrequencyPath  = "/sys/devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq"
)

func (p *Probe) CPU() probe.Facts {
	facts := probe.Facts{
		probe.CpuFrequency: p.fileFact(baseFrequencyPath, probe.UnitKHz),
	}

	data, err := p.readFile("/proc/cpuinfo")
	if err != nil {
		err = fmt.Errorf("error reading cpuinfo: %w", err)
		facts[probe.CpuVendor] = probe.Failed(err)
		facts[probe.CpuModel] = probe.Failed(err)
		facts[probe.CpuLogicalCores] = probe.Failed(err)
		facts[probe.CpuPhysicalCores] = probe.Failed(err)
		return facts
	}

	info := parseCpuInfo(data)
	facts[probe.CpuVendor] = stringFact(info.vendor)
	facts[probe.CpuModel] = stringFact(info.model)
	facts[probe.CpuLogicalCores] = countFact(info.logicalCores)
	facts[probe.CpuPhysicalCores] = countFact(info.physicalCores)
	facts[probe.CpuFrequency] = p.baseFrequency(info)
	return facts
}

// baseFrequency reads the base clock in kHz. On x86, cpuinfo_max_freq is the turbo clock, so
// without base_frequency the fact fails and another backend has to answer. Other
// architectures have no separate base clock.
func (p *Probe) baseFrequency(info cpuInfo) func() (probe.Raw, error) {
	if info.vendor != "" {
		return p.fileFact(baseFrequencyPath, probe.UnitKHz)
	}
	return p.firstFileFact(probe.UnitKHz, baseFrequencyPath, maxFrequencyPath)
}

// parseCpuInfo reads the content of /proc/cpuinfo. Physical cores are only counted when the
// kernel reports the core topology, which arm64 kernels do not do here. Only x86 kernels
// report a vendor_id.
func parseCpuInfo(data string) cpuInfo {
	var info cpuInfo
	var physicalId string
	cores := make(map[string]struct{})

	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			info.logicalCores++
			physicalId = ""
		case "vendor_id":
			if info.vendor == "" {
				info.vendor = value
			}
		case "model name", "Processor", "cpu model":
			if info.model == "" {
				info.model = value
			}
		case "physical id":
			physicalId = value
		case "core id":
			cores[physicalId+"/"+value] = struct{}{}
		}
	}

	info.physicalCores = len(cores)
	return info
}

func stringFact(value string) func() (probe.Raw, error) {
	if value == "" {
		return probe.Failed(probe.ErrNotSupported)
	}
	return probe.Value(value, probe.UnitNone)
}

func countFact(value int) func() (probe.Raw, error) {
	if value == 0 {
		return probe.Failed(probe.ErrNotSupported)
	}
	return probe.Value(value, probe.UnitNone)
}
