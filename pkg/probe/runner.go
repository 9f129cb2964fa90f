package probe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultCommandTimeout = 10 * time.Second

// Runner executes an external tool and returns its standard output.
type Runner interface {
	Run(name string, args ...string) ([]byte, error)
}

// ExecRunner runs tools on the host. Tools that are not installed fail with exec.ErrNotFound.
type ExecRunner struct {
	// Timeouts overrides the default timeout per tool name
	Timeouts map[string]time.Duration
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Timeouts: map[string]time.Duration{
			"nvidia-smi":      30 * time.Second,
			"system_profiler": 30 * time.Second,
		},
	}
}

func (r *ExecRunner) Run(name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, err
	}

	timeout, ok := r.Timeouts[name]
	if !ok {
		timeout = defaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	killProcessGroup(cmd)

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "LANG=C")

	output, err := cmd.Output()
	if err != nil {
		if len(output) == 0 {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		// some tools, like nvidia-smi, write error messages to stdout
		return nil, fmt.Errorf("%s: %s: %s", name, err, bytes.TrimSpace(output))
	}
	return output, nil
}

// FileRunner replays recorded tool output. The keys are full command lines, e.g.
// "nvidia-smi --id=00000000:01:00.0 --query-gpu=name --format=csv,noheader".
type FileRunner map[string]string

// NewFileRunner loads recorded output from a YAML file. A missing file yields a runner that
// knows no commands.
func NewFileRunner(path string) (FileRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileRunner{}, nil
		}
		return nil, fmt.Errorf("error reading recorded commands: %w", err)
	}

	var runner FileRunner
	if err := yaml.Unmarshal(data, &runner); err != nil {
		return nil, fmt.Errorf("error parsing recorded commands: %w", err)
	}
	if runner == nil {
		runner = FileRunner{}
	}
	return runner, nil
}

func (r FileRunner) Run(name string, args ...string) ([]byte, error) {
	commandLine := strings.Join(append([]string{name}, args...), " ")
	output, ok := r[commandLine]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, exec.ErrNotFound)
	}
	return []byte(output), nil
}
