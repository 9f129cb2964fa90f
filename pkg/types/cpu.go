package types

type CpuInfo struct {
	Vendor        Field[string] `json:"vendor,omitzero" yaml:"vendor,omitempty"`
	Model         Field[string] `json:"model,omitzero" yaml:"model,omitempty"`
	PhysicalCores Field[uint32] `json:"physical-cores,omitzero" yaml:"physical-cores,omitempty"`
	LogicalCores  Field[uint32] `json:"logical-cores,omitzero" yaml:"logical-cores,omitempty"`

	// Base clock
	FrequencyMHz Field[float64] `json:"frequency-mhz,omitzero" yaml:"frequency-mhz,omitempty"`
}
