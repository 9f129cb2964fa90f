package types

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// FieldState tells a queried-but-unavailable field apart from one that was never asked for.
type FieldState uint8

const (
	NotQueried FieldState = iota
	Absent
	Present
)

func (s FieldState) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	default:
		return "not-queried"
	}
}

// Field is an optional value. The zero value is NotQueried.
//
// Absent is the only failure a caller ever sees: the platform could not supply the value,
// or what it supplied could not be normalized.
type Field[T any] struct {
	Value T
	State FieldState
}

func Some[T any](value T) Field[T] {
	return Field[T]{Value: value, State: Present}
}

func Unavailable[T any]() Field[T] {
	return Field[T]{State: Absent}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.State == Present
}

func (f Field[T]) IsPresent() bool {
	return f.State == Present
}

func (f Field[T]) IsAbsent() bool {
	return f.State == Absent
}

// OrElse returns the value when present, and fallback otherwise.
func (f Field[T]) OrElse(fallback T) T {
	if f.State == Present {
		return f.Value
	}
	return fallback
}

// IsZero reports whether the field was never queried. Used by the omitzero (json) and
// omitempty (yaml) tags.
func (f Field[T]) IsZero() bool {
	return f.State == NotQueried
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.State != Present {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*f = Unavailable[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*f = Some(value)
	return nil
}

func (f Field[T]) MarshalYAML() (interface{}, error) {
	if f.State != Present {
		return nil, nil
	}
	return f.Value, nil
}

func (f *Field[T]) UnmarshalYAML(node *yaml.Node) error {
	var value T
	if err := node.Decode(&value); err != nil {
		return err
	}
	*f = Some(value)
	return nil
}
