package types

// SystemInfo is a point-in-time snapshot of the host. Gpus is empty, never nil, when no
// adapter was found.
type SystemInfo struct {
	Cpu  CpuInfo   `json:"cpu" yaml:"cpu"`
	Ram  RamInfo   `json:"ram" yaml:"ram"`
	Gpus []GpuInfo `json:"gpus" yaml:"gpus"`
	Os   OsInfo    `json:"os" yaml:"os"`
}
