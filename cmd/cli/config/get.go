package config

import (
	"fmt"

	"github.com/jpnorenam/sysinfo-lite/cmd/cli/common"
	"github.com/jpnorenam/sysinfo-lite/pkg/storage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type getCommand struct {
	*common.Context
}

func GetCommand(ctx *common.Context) *cobra.Command {
	var cmd getCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:   "get [<key>]",
		Short: "Print configurations",
		Long: "Print one or more configurations.\n\n" +
			"Configurations are read from $" + storage.ConfigPathEnv + ", or config.env in the user config directory.",
		GroupID:           groupID,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *getCommand) run(c *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.getValues(c)
	} else {
		return cmd.getValue(c, args[0])
	}
}

func (cmd *getCommand) getValue(c *cobra.Command, key string) error {
	value, err := cmd.Config.Get(key)
	if err != nil {
		return fmt.Errorf("error getting value of %q: %v", key, err)
	}

	if len(value) == 0 {
		return fmt.Errorf("no value set for key %q: %w", key, storage.ErrorNotFound)
	}

	// a single nested key, e.g. format.indent, is printed with its name
	if v, found := value[key]; found && len(value) == 1 {
		fmt.Fprintln(c.OutOrStdout(), v)
	} else {
		// print as yaml
		yamlOutput, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("error serializing value: %v", err)
		}
		fmt.Fprintf(c.OutOrStdout(), "%s", yamlOutput) // the yaml output ends with a newline
	}

	return nil
}

func (cmd *getCommand) getValues(c *cobra.Command) error {
	values, err := cmd.Config.GetAll()
	if err != nil {
		return fmt.Errorf("error getting values: %v", err)
	}

	// print config value
	yamlOutput, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error serializing values: %v", err)
	}
	fmt.Fprintf(c.OutOrStdout(), "%s", yamlOutput) // the yaml output ends with a newline

	return nil
}
