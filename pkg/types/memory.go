package types

// RamInfo sizes are in bytes.
type RamInfo struct {
	Total     Field[uint64] `json:"total,omitzero" yaml:"total,omitempty"`
	Available Field[uint64] `json:"available,omitzero" yaml:"available,omitempty"`
}
