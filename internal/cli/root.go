// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldsworth/ssot/internal/config"
)

var (
	// Global flags
	configPathFlag string

	// Resolved values
	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "ssot",
	Short: "ssot - tooling for SSOT memory files",
	Long: `ssot manages a corpus of SSOT ("single source of truth") memory files:
markdown documents with YAML frontmatter, classified by category.

It scaffolds new memories from category templates and validates the
frontmatter metadata of existing ones.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are validated by now; runtime failures should not
		// dump usage text over the report output.
		cmd.SilenceUsage = true

		// Commands that don't touch the corpus don't need config.
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && (cmd.Parent().Name() == "completion" || cmd.Parent().Name() == "config") {
			return nil
		}

		var err error
		if configPathFlag != "" {
			cfg, err = config.LoadFrom(configPathFlag)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg == nil {
			cfg = &config.Config{}
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}
