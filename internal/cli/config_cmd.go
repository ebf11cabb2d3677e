package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldsworth/ssot/internal/config"
	"github.com/aldsworth/ssot/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ssot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefault()
		if err != nil {
			return handleErr(cmd, ErrConfigInvalid, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path})
			return nil
		}
		fmt.Println(ui.Successf("Config: %s", ui.FilePath(path)))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath()
		if isJSONOutput() {
			outputSuccess(map[string]any{"path": path})
			return nil
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
