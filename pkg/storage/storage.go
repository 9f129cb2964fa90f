package storage

import "fmt"

var ErrorNotFound = fmt.Errorf("not found")

// storage is one source of flat key/value configurations
type storage interface {
	GetAll() (map[string]any, error)
}

// defaults holds the values used when no other source sets a key
type defaults map[string]any

func (d defaults) GetAll() (map[string]any, error) {
	values := make(map[string]any, len(d))
	for k, v := range d {
		values[k] = v
	}
	return values, nil
}
