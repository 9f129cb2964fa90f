package normalize

import (
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
)

var archExact = map[string]types.Arch{
	"x86_64":  types.X86_64,
	"amd64":   types.X86_64,
	"x64":     types.X86_64,
	"em64t":   types.X86_64,
	"i386":    types.X86,
	"i486":    types.X86,
	"i586":    types.X86,
	"i686":    types.X86,
	"386":     types.X86,
	"x86":     types.X86,
	"aarch64": types.Arm64,
	"arm64":   types.Arm64,
	"arm64e":  types.Arm64,
	"armv8l":  types.Arm, // 32-bit kernel on ARMv8
	"ppc64le": types.Ppc64le,
	"ppc64el": types.Ppc64le,
	"ppc64":   types.Ppc64,
	"s390x":   types.S390x,
	"riscv64": types.Riscv64,
}

// archPrefixes is checked in order, after the exact matches.
var archPrefixes = []struct {
	prefix string
	arch   types.Arch
}{
	{"armv8", types.Arm64},
	{"aarch64", types.Arm64},
	{"arm", types.Arm},
	{"i86", types.X86},
}

// Arch maps a machine name to the canonical architecture tag. Unrecognized names are
// reported as unknown.
func Arch(raw probe.Raw) types.Field[types.Arch] {
	name, ok := String(raw).Get()
	if !ok {
		return types.Unavailable[types.Arch]()
	}
	name = strings.ToLower(name)

	if arch, found := archExact[name]; found {
		return types.Some(arch)
	}
	for _, p := range archPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return types.Some(p.arch)
		}
	}
	return types.Some(types.UnknownArch)
}

var familyPrefixes = []struct {
	prefix string
	family types.OSFamily
}{
	{"linux", types.Linux},
	{"gnu/linux", types.Linux},
	{"darwin", types.MacOS},
	{"macos", types.MacOS},
	{"mac os", types.MacOS},
	{"osx", types.MacOS},
	{"windows", types.Windows},
	{"microsoft windows", types.Windows},
	{"windows_nt", types.Windows},
	{"freebsd", types.FreeBSD},
	{"openbsd", types.OpenBSD},
	{"netbsd", types.NetBSD},
}

// OSFamily maps a kernel or platform name to the canonical OS family tag. Unrecognized
// names are reported as unknown.
func OSFamily(raw probe.Raw) types.Field[types.OSFamily] {
	name, ok := String(raw).Get()
	if !ok {
		return types.Unavailable[types.OSFamily]()
	}
	name = strings.ToLower(name)

	for _, f := range familyPrefixes {
		if strings.HasPrefix(name, f.prefix) {
			return types.Some(f.family)
		}
	}
	return types.Some(types.UnknownFamily)
}
