package types

type OSFamily string

const (
	Linux         OSFamily = "linux"
	MacOS         OSFamily = "macos"
	Windows       OSFamily = "windows"
	FreeBSD       OSFamily = "freebsd"
	OpenBSD       OSFamily = "openbsd"
	NetBSD        OSFamily = "netbsd"
	UnknownFamily OSFamily = "unknown"
)

type Arch string

const (
	X86_64      Arch = "x86_64"
	X86         Arch = "x86"
	Arm64       Arch = "arm64"
	Arm         Arch = "arm"
	Ppc64le     Arch = "ppc64le"
	Ppc64       Arch = "ppc64"
	S390x       Arch = "s390x"
	Riscv64     Arch = "riscv64"
	UnknownArch Arch = "unknown"
)

type OsInfo struct {
	Family Field[OSFamily] `json:"family,omitzero" yaml:"family,omitempty"`

	// Distribution or product name, e.g. "Ubuntu 24.04.1 LTS"
	Name    Field[string] `json:"name,omitzero" yaml:"name,omitempty"`
	Version Field[string] `json:"version,omitzero" yaml:"version,omitempty"`
	Kernel  Field[string] `json:"kernel,omitzero" yaml:"kernel,omitempty"`
	Arch    Field[Arch]   `json:"architecture,omitzero" yaml:"architecture,omitempty"`
}
