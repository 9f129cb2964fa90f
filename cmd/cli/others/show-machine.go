package others

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/fatih/color"
	"github.com/jpnorenam/sysinfo-lite/cmd/cli/common"
	"github.com/jpnorenam/sysinfo-lite/cmd/cli/config"
	"github.com/jpnorenam/sysinfo-lite/pkg/hardware_info"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe"
	"github.com/jpnorenam/sysinfo-lite/pkg/probe/procfs"
	"github.com/jpnorenam/sysinfo-lite/pkg/storage"
	"github.com/jpnorenam/sysinfo-lite/pkg/types"
	"github.com/jpnorenam/sysinfo-lite/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var categories = []string{"cpu", "ram", "gpu", "os"}

type showMachineCommand struct {
	*common.Context

	// flags
	format string
	root   string
}

func ShowMachineCommand(ctx *common.Context) *cobra.Command {
	var cmd showMachineCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "show-machine [cpu|ram|gpu|os]",
		Short: "Print information about the host machine",
		Long: "Print information about the host machine: processor, memory, graphics adapters and operating system.\n" +
			"Pass a category to print only that part.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: categories,
		RunE:      cmd.run,
	}

	// flags
	cobraCmd.Flags().StringVar(&cmd.format, "format", "yaml", "output format: yaml, json or text")
	cobraCmd.Flags().StringVar(&cmd.root, "root", "", "read a machine dump from this directory instead of the host")

	return cobraCmd
}

func (cmd *showMachineCommand) run(c *cobra.Command, args []string) error {
	if err := cmd.loadDefaults(c); err != nil {
		return err
	}

	collector, err := cmd.collector()
	if err != nil {
		return err
	}

	category := ""
	if len(args) == 1 {
		category = args[0]
	}

	stopProgress := common.StartProgressSpinner("Collecting machine info")
	var result any
	switch category {
	case "cpu":
		result = collector.Cpu()
	case "ram":
		result = collector.Ram()
	case "gpu":
		result = collector.Gpus()
	case "os":
		result = collector.Os()
	default:
		result = collector.Get()
	}
	stopProgress()

	out := c.OutOrStdout()
	switch cmd.format {
	case "json":
		jsonString, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %s", err)
		}
		fmt.Fprintf(out, "%s\n", jsonString)
	case "yaml":
		yamlString, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %s", err)
		}
		fmt.Fprintf(out, "%s", yamlString)
	case "text":
		printText(out, result)
	default:
		return fmt.Errorf("unknown format %q", cmd.format)
	}

	return nil
}

// loadDefaults fills the flags the user did not set from the configuration file.
func (cmd *showMachineCommand) loadDefaults(c *cobra.Command) error {
	if cmd.Config == nil {
		return nil
	}
	defaults := map[string]*string{
		"format": &cmd.format,
		"root":   &cmd.root,
	}
	keys := map[string]string{
		"format": storage.FormatKey,
		"root":   storage.RootKey,
	}
	for flag, target := range defaults {
		if c.Flags().Changed(flag) {
			continue
		}
		value, err := config.GetString(cmd.Config, keys[flag])
		if err != nil {
			return err
		}
		if value != "" {
			*target = value
		}
	}
	return nil
}

// collector reads the host, or replays a machine dump with the files of /proc, /sys and /etc
// and the recorded output of the tools in commands.yaml.
func (cmd *showMachineCommand) collector() (*hardware_info.Collector, error) {
	if cmd.root == "" {
		return hardware_info.Native(), nil
	}

	runner, err := probe.NewFileRunner(filepath.Join(cmd.root, "commands.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load machine dump: %s", err)
	}
	if utils.IsVerbose() {
		fmt.Fprintf(color.Error, "Reading machine dump from %s\n", cmd.root)
	}
	return hardware_info.New(procfs.New(cmd.root, runner)), nil
}

var (
	heading = color.New(color.Bold).SprintFunc()
	label   = color.New(color.FgCyan).SprintFunc()
	unknown = color.New(color.Faint).Sprint("unknown")
)

func printText(out io.Writer, result any) {
	switch info := result.(type) {
	case types.SystemInfo:
		printCpu(out, info.Cpu)
		printRam(out, info.Ram)
		printGpus(out, info.Gpus)
		printOs(out, info.Os)
	case types.CpuInfo:
		printCpu(out, info)
	case types.RamInfo:
		printRam(out, info)
	case []types.GpuInfo:
		printGpus(out, info)
	case types.OsInfo:
		printOs(out, info)
	}
}

func printCpu(out io.Writer, cpu types.CpuInfo) {
	fmt.Fprintln(out, heading("CPU"))
	printField(out, "vendor", text(cpu.Vendor, identity))
	printField(out, "model", text(cpu.Model, identity))
	printField(out, "physical cores", text(cpu.PhysicalCores, formatUint32))
	printField(out, "logical cores", text(cpu.LogicalCores, formatUint32))
	printField(out, "frequency", text(cpu.FrequencyMHz, func(mhz float64) string {
		return strconv.FormatFloat(mhz, 'f', -1, 64) + " MHz"
	}))
}

func printRam(out io.Writer, ram types.RamInfo) {
	fmt.Fprintln(out, heading("RAM"))
	printField(out, "total", text(ram.Total, utils.FmtBytes))
	printField(out, "available", text(ram.Available, utils.FmtBytes))
}

func printGpus(out io.Writer, gpus []types.GpuInfo) {
	if len(gpus) == 0 {
		fmt.Fprintf(out, "%s\n  %s\n", heading("GPU"), unknown)
		return
	}
	for i, gpu := range gpus {
		fmt.Fprintln(out, heading(fmt.Sprintf("GPU %d", i)))
		printField(out, "vendor", text(gpu.Vendor, identity))
		printField(out, "model", text(gpu.Model, identity))
		printField(out, "memory", text(gpu.Memory, utils.FmtBytes))
		printField(out, "cores", text(gpu.Cores, formatUint32))
	}
}

func printOs(out io.Writer, os types.OsInfo) {
	fmt.Fprintln(out, heading("OS"))
	printField(out, "family", text(os.Family, func(f types.OSFamily) string { return string(f) }))
	printField(out, "name", text(os.Name, identity))
	printField(out, "version", text(os.Version, identity))
	printField(out, "kernel", text(os.Kernel, identity))
	printField(out, "architecture", text(os.Arch, func(a types.Arch) string { return string(a) }))
}

func printField(out io.Writer, name string, value string) {
	fmt.Fprintf(out, "  %s %s\n", label(fmt.Sprintf("%-15s", name+":")), value)
}

func text[T any](field types.Field[T], format func(T) string) string {
	value, ok := field.Get()
	if !ok {
		return unknown
	}
	return format(value)
}

func identity(s string) string { return s }

func formatUint32(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}
