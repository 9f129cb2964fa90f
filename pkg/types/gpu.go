package types

type GpuInfo struct {
	Vendor Field[string] `json:"vendor,omitzero" yaml:"vendor,omitempty"`
	Model  Field[string] `json:"model,omitzero" yaml:"model,omitempty"`

	// Dedicated memory in bytes
	Memory Field[uint64] `json:"memory,omitzero" yaml:"memory,omitempty"`
	Cores  Field[uint32] `json:"cores,omitzero" yaml:"cores,omitempty"`
}
