package normalize

import (
	"math"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/spf13/cast"
)

var hertzUnits = map[string]probe.Unit{
	"hz":  probe.UnitHz,
	"khz": probe.UnitKHz,
	"mhz": probe.UnitMHz,
	"ghz": probe.UnitGHz,
}

// FrequencyMHz converts a clock frequency to MHz. Non-positive values are absent.
func FrequencyMHz(raw probe.Raw) types.Field[float64] {
	value, unit := raw.Value, raw.Unit
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if number, suffix, found := strings.Cut(s, " "); found && unit == probe.UnitNone {
			known, ok := hertzUnits[strings.ToLower(strings.TrimSpace(suffix))]
			if !ok {
				return types.Unavailable[float64]()
			}
			s, unit = strings.TrimSpace(number), known
		}
		value = s
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return types.Unavailable[float64]()
	}

	switch unit {
	case probe.UnitHz:
		f /= 1e6
	case probe.UnitKHz:
		f /= 1e3
	case probe.UnitMHz, probe.UnitNone:
	case probe.UnitGHz:
		f *= 1e3
	default:
		return types.Unavailable[float64]()
	}
	return types.Some(f)
}
