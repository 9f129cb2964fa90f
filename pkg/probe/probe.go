// Package probe defines the contract between the platform specific backends that read raw
// hardware and OS facts and the collectors that normalize them.
package probe

import (
	"errors"
	"fmt"
)

// ErrNotSupported is returned for a fact the backend can not provide on this platform.
var ErrNotSupported = errors.New("not supported")

type Key string

const (
	CpuVendor        Key = "cpu.vendor"
	CpuModel         Key = "cpu.model"
	CpuPhysicalCores Key = "cpu.physical-cores"
	CpuLogicalCores  Key = "cpu.logical-cores"
	CpuFrequency     Key = "cpu.frequency"

	RamTotal     Key = "ram.total"
	RamAvailable Key = "ram.available"

	GpuVendor Key = "gpu.vendor"
	GpuModel  Key = "gpu.model"
	GpuMemory Key = "gpu.memory"
	GpuCores  Key = "gpu.cores"

	OsFamily  Key = "os.family"
	OsName    Key = "os.name"
	OsVersion Key = "os.version"
	OsKernel  Key = "os.kernel"
	OsArch    Key = "os.arch"
)

// Unit is the native unit a raw value is expressed in.
type Unit string

const (
	UnitNone  Unit = ""
	UnitBytes Unit = "B"
	UnitKiB   Unit = "KiB"
	UnitMiB   Unit = "MiB"
	UnitGiB   Unit = "GiB"
	UnitPages Unit = "pages"
	UnitHz    Unit = "Hz"
	UnitKHz   Unit = "kHz"
	UnitMHz   Unit = "MHz"
	UnitGHz   Unit = "GHz"
)

// Raw is an unvalidated value as reported by the platform.
type Raw struct {
	Value any
	Unit  Unit

	// Only used with UnitPages
	PageSize uint64
}

func (r Raw) String() string {
	if r.Unit == UnitNone {
		return fmt.Sprintf("%v", r.Value)
	}
	return fmt.Sprintf("%v %s", r.Value, r.Unit)
}

// Value is a shorthand for a fact that is already known.
func Value(value any, unit Unit) func() (Raw, error) {
	return func() (Raw, error) {
		return Raw{Value: value, Unit: unit}, nil
	}
}

// Failed is a shorthand for a fact that could not be read.
func Failed(err error) func() (Raw, error) {
	return func() (Raw, error) {
		return Raw{}, err
	}
}

// Facts holds the facts of one category. Each fact is only evaluated when looked up, so a
// failing fact never affects its siblings.
type Facts map[Key]func() (Raw, error)

func (f Facts) Lookup(key Key) (Raw, error) {
	fact, ok := f[key]
	if !ok || fact == nil {
		return Raw{}, fmt.Errorf("%s: %w", key, ErrNotSupported)
	}
	return fact()
}

// Probe is one backend able to answer queries about the running platform.
type Probe interface {
	CPU() Facts
	RAM() Facts
	// GPUs returns one set of facts per adapter, in the order the platform enumerates them.
	GPUs() ([]Facts, error)
	OS() Facts
}
