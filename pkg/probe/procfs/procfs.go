// Package procfs reads hardware and OS facts from the /proc and /sys trees of a Linux host,
// or of a machine dump captured from one.
package procfs

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
)

type Probe struct {
	fsys   fs.FS
	runner probe.Runner
}

// New returns a probe reading below root, "/" for the running host. Tools such as nvidia-smi
// and lshw are run through runner.
func New(root string, runner probe.Runner) *Probe {
	return &Probe{
		fsys:   os.DirFS(root),
		runner: runner,
	}
}

// NewFS is New for an arbitrary file system.
func NewFS(fsys fs.FS, runner probe.Runner) *Probe {
	return &Probe{
		fsys:   fsys,
		runner: runner,
	}
}

// readFile returns the trimmed content of a file. Paths are relative to the root.
func (p *Probe) readFile(path string) (string, error) {
	data, err := fs.ReadFile(p.fsys, strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// fileFact reads a single value file lazily.
func (p *Probe) fileFact(path string, unit probe.Unit) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		value, err := p.readFile(path)
		if err != nil {
			return probe.Raw{}, err
		}
		return probe.Raw{Value: value, Unit: unit}, nil
	}
}

// firstFileFact reads the first of paths that exists.
func (p *Probe) firstFileFact(unit probe.Unit, paths ...string) func() (probe.Raw, error) {
	return func() (probe.Raw, error) {
		var firstErr error
		for _, path := range paths {
			raw, err := p.fileFact(path, unit)()
			if err == nil {
				return raw, nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return probe.Raw{}, firstErr
	}
}

func (p *Probe) run(name string, args ...string) (string, error) {
	if p.runner == nil {
		return "", fmt.Errorf("%s: %w", name, probe.ErrNotSupported)
	}
	output, err := p.runner.Run(name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// keyValues splits "key: value" or "key=value" lines. Later keys win.
func keyValues(data string, separator string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, separator)
		if !found {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}
