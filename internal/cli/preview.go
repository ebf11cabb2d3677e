package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aldsworth/ssot/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <memory-file.md>",
	Short: "Render a memory file for the terminal",
	Long: `Renders a memory file as styled markdown at the detected terminal width.

When stdout is not a terminal (piped or redirected), the raw file content is
printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return handleErrorMsg(cmd, ErrFileNotFound, fmt.Sprintf("file not found: %s", args[0]), "")
			}
			return handleErr(cmd, ErrFileReadError, err, "")
		}

		if !isatty.IsTerminal(os.Stdout.Fd()) || isJSONOutput() {
			if isJSONOutput() {
				outputSuccess(map[string]any{"file": args[0], "content": string(content)})
				return nil
			}
			fmt.Print(string(content))
			return nil
		}

		rendered, err := ui.RenderMarkdown(string(content), ui.TermWidth())
		if err != nil {
			return handleErr(cmd, ErrInternal, err, "")
		}
		fmt.Print(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
