package procfs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

func (p *Probe) OS() probe.Facts {
	facts := probe.Facts{
		probe.OsFamily: p.fileFact("/proc/sys/kernel/ostype", probe.UnitNone),
		probe.OsKernel: p.fileFact("/proc/sys/kernel/osrelease", probe.UnitNone),
		probe.OsArch:   p.arch,
	}

	osRelease, err := p.osRelease()
	if err != nil {
		facts[probe.OsName] = probe.Failed(err)
		facts[probe.OsVersion] = probe.Failed(err)
		return facts
	}

	name := osRelease["PRETTY_NAME"]
	if name == "" {
		name = osRelease["NAME"]
	}
	facts[probe.OsName] = stringFact(name)
	facts[probe.OsVersion] = stringFact(osRelease["VERSION_ID"])
	return facts
}

func (p *Probe) arch() (probe.Raw, error) {
	arch, err := p.readFile("/proc/sys/kernel/arch")
	if err == nil {
		return probe.Raw{Value: arch}, nil
	}

	machine, runErr := p.run("uname", "-m")
	if runErr != nil {
		return probe.Raw{}, errors.Join(err, runErr)
	}
	return probe.Raw{Value: machine}, nil
}

func (p *Probe) osRelease() (map[string]string, error) {
	data, err := p.readFile("/etc/os-release")
	if err != nil {
		var fallbackErr error
		data, fallbackErr = p.readFile("/usr/lib/os-release")
		if fallbackErr != nil {
			return nil, fmt.Errorf("error reading os-release: %w", err)
		}
	}
	return parseOsRelease(data), nil
}

// parseOsRelease reads the KEY="value" lines of an os-release file.
func parseOsRelease(data string) map[string]string {
	values := make(map[string]string)
	for key, value := range keyValues(data, "=") {
		if strings.HasPrefix(key, "#") {
			continue
		}
		values[key] = strings.Trim(value, `"'`)
	}
	return values
}
