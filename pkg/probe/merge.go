package probe

import (
	"errors"
	"fmt"
)

type merged []Probe

// Merge returns a Probe that asks each backend in turn. A fact is answered by the first
// backend that returns it without error; adapters come from the first backend that reports
// at least one.
func Merge(probes ...Probe) Probe {
	if len(probes) == 1 {
		return probes[0]
	}
	return merged(probes)
}

func (m merged) CPU() Facts {
	return m.facts(Probe.CPU)
}

func (m merged) RAM() Facts {
	return m.facts(Probe.RAM)
}

func (m merged) OS() Facts {
	return m.facts(Probe.OS)
}

func (m merged) GPUs() ([]Facts, error) {
	var errs []error
	for _, p := range m {
		adapters, err := p.GPUs()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(adapters) > 0 {
			return adapters, nil
		}
	}
	if len(errs) == len(m) {
		return nil, errors.Join(errs...)
	}
	return nil, nil
}

func (m merged) facts(category func(Probe) Facts) Facts {
	// The category methods of the backends are called lazily and at most once, so a backend
	// that is never needed is never touched.
	sources := make([]func() Facts, len(m))
	for i, p := range m {
		var loaded Facts
		sources[i] = func() Facts {
			if loaded == nil {
				loaded = category(p)
				if loaded == nil {
					loaded = Facts{}
				}
			}
			return loaded
		}
	}

	facts := make(Facts)
	for _, key := range allKeys {
		facts[key] = func() (Raw, error) {
			return firstOf(key, sources)
		}
	}
	return facts
}

func firstOf(key Key, sources []func() Facts) (Raw, error) {
	var firstErr error
	for _, source := range sources {
		raw, err := source().Lookup(key)
		if err == nil {
			return raw, nil
		}
		// A real failure is more telling than a missing capability
		if firstErr == nil || (errors.Is(firstErr, ErrNotSupported) && !errors.Is(err, ErrNotSupported)) {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = fmt.Errorf("%s: %w", key, ErrNotSupported)
	}
	return Raw{}, firstErr
}

var allKeys = []Key{
	CpuVendor, CpuModel, CpuPhysicalCores, CpuLogicalCores, CpuFrequency,
	RamTotal, RamAvailable,
	GpuVendor, GpuModel, GpuMemory, GpuCores,
	OsFamily, OsName, OsVersion, OsKernel, OsArch,
}
