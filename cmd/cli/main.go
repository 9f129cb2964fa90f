package main

import (
	"log"
	"os"

	"github.com/jpnorenam/sysinfo-lite/cmd/cli/common"
	"github.com/jpnorenam/sysinfo-lite/cmd/cli/config"
	"github.com/jpnorenam/sysinfo-lite/cmd/cli/others"
	"github.com/jpnorenam/sysinfo-lite/pkg/storage"
	"github.com/spf13/cobra"
)

func main() {
	ctx := &common.Context{
		Config: storage.NewConfig(),
	}

	// rootCmd is the base command
	// It gets populated with subcommands
	rootCmd := &cobra.Command{
		SilenceUsage: true,
		Long: "sysinfo prints a snapshot of the host machine: processor, memory,\n" +
			"graphics adapters and operating system.\n\n" +
			"Values the platform can not provide are reported as null.",
		PersistentPreRunE: persistentPreRunE,
		Use:               "sysinfo",
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable verbose logging")

	// Disable command sorting to keep commands sorted as added below
	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		others.ShowMachineCommand(ctx),
	)

	rootCmd.AddGroup(config.Group("Configuration Commands:"))
	rootCmd.AddCommand(
		config.GetCommand(ctx),
	)

	// disable logging timestamps
	log.SetFlags(0)

	// Hide the 'completion' command from help text
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// get value of verbose flag
	verbose := cmd.Flags().Lookup("verbose").Value.String() == "true"
	if verbose {
		log.Println("Verbose output enabled globally.")
		return os.Setenv("VERBOSE", "true")
	}
	return nil
}
