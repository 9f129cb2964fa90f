// Package normalize converts raw platform values into the canonical units and shapes of the
// data model. Nothing here fails: a value that can not be converted becomes an absent field.
package normalize

import (
	"math"
	"math/bits"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/spf13/cast"
)

// byteUnits maps textual unit suffixes to their size in bytes. Platforms report memory in
// binary multiples even when they label them "kB", "MB" or "GB".
var byteUnits = map[string]uint64{
	"b":     1,
	"bytes": 1,
	"kb":    1 << 10,
	"kib":   1 << 10,
	"k":     1 << 10,
	"mb":    1 << 20,
	"mib":   1 << 20,
	"m":     1 << 20,
	"gb":    1 << 30,
	"gib":   1 << 30,
	"g":     1 << 30,
	"tb":    1 << 40,
	"tib":   1 << 40,
}

// Bytes converts a size in any native unit to bytes. Negative and unparsable values are
// absent. Zero is accepted.
func Bytes(raw probe.Raw) types.Field[uint64] {
	value, scale, ok := splitBytes(raw)
	if !ok {
		return types.Unavailable[uint64]()
	}

	if isInteger(value) {
		if n, err := cast.ToUint64E(value); err == nil {
			hi, lo := bits.Mul64(n, scale)
			if hi != 0 {
				return types.Unavailable[uint64]()
			}
			return types.Some(lo)
		}
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || f < 0 {
		return types.Unavailable[uint64]()
	}
	f *= float64(scale)
	if f >= math.MaxUint64 {
		return types.Unavailable[uint64]()
	}
	return types.Some(uint64(math.Round(f)))
}

// Capacity is Bytes for totals, where zero is implausible.
func Capacity(raw probe.Raw) types.Field[uint64] {
	size := Bytes(raw)
	if value, ok := size.Get(); ok && value == 0 {
		return types.Unavailable[uint64]()
	}
	return size
}

// isInteger reports whether the value can go through the exact integer conversion.
func isInteger(value any) bool {
	switch v := value.(type) {
	case float32, float64:
		return false
	case string:
		return !strings.ContainsAny(v, ".eE")
	default:
		return true
	}
}

// splitBytes returns the numeric part of a raw size and the number of bytes per unit.
func splitBytes(raw probe.Raw) (any, uint64, bool) {
	value := raw.Value
	if value == nil {
		return nil, 0, false
	}
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if raw.Unit == probe.UnitNone {
			// "4096 MiB", "16303452 kB", "8 GB"
			if number, unit, found := strings.Cut(s, " "); found {
				scale, known := byteUnits[strings.ToLower(strings.TrimSpace(unit))]
				if !known {
					return nil, 0, false
				}
				return strings.TrimSpace(number), scale, true
			}
		}
		value = s
	}

	switch raw.Unit {
	case probe.UnitNone, probe.UnitBytes:
		return value, 1, true
	case probe.UnitKiB:
		return value, 1 << 10, true
	case probe.UnitMiB:
		return value, 1 << 20, true
	case probe.UnitGiB:
		return value, 1 << 30, true
	case probe.UnitPages:
		if raw.PageSize == 0 {
			return nil, 0, false
		}
		return value, raw.PageSize, true
	default:
		return nil, 0, false
	}
}
