package normalize

import (
	"math"
	"strings"
	"unicode"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/spf13/cast"
)

// String trims whitespace and NUL padding. Empty strings are absent.
func String(raw probe.Raw) types.Field[string] {
	s, err := cast.ToStringE(raw.Value)
	if err != nil {
		return types.Unavailable[string]()
	}
	s = strings.TrimFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
	if s == "" {
		return types.Unavailable[string]()
	}
	return types.Some(s)
}

// Count converts a positive integer, such as a core count. Zero is absent.
func Count(raw probe.Raw) types.Field[uint32] {
	value := raw.Value
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}

	n, err := cast.ToUint64E(value)
	if err != nil || n == 0 || n > math.MaxUint32 {
		return types.Unavailable[uint32]()
	}
	return types.Some(uint32(n))
}

// pciVendors holds the vendors most likely to show up as a graphics adapter.
var pciVendors = map[string]string{
	"10de": "NVIDIA",
	"1002": "AMD",
	"1022": "AMD",
	"8086": "Intel",
	"106b": "Apple",
	"14e4": "Broadcom",
	"1af4": "Red Hat",
	"15ad": "VMware",
	"1234": "QEMU",
	"1414": "Microsoft",
	"80ee": "VirtualBox",
	"1a03": "ASPEED",
	"102b": "Matrox",
}

// Vendor is String, plus translation of bare PCI vendor ids and removal of a trailing id
// such as "Apple (0x106b)".
func Vendor(raw probe.Raw) types.Field[string] {
	field := String(raw)
	name, ok := field.Get()
	if !ok {
		return field
	}

	if id, isId := pciId(name); isId {
		if known, found := pciVendors[id]; found {
			return types.Some(known)
		}
		return field
	}

	if open := strings.LastIndex(name, " ("); open > 0 && strings.HasSuffix(name, ")") {
		if _, isId := pciId(name[open+2 : len(name)-1]); isId {
			return types.Some(strings.TrimSpace(name[:open]))
		}
	}
	return field
}

// pciId returns the lowercase hex digits of ids written as 0x10de or 10de.
func pciId(s string) (string, bool) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if len(s) != 4 {
		return "", false
	}
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return "", false
		}
	}
	return s, true
}
