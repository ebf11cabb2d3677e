package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aldsworth/ssot/internal/ui"
	"github.com/aldsworth/ssot/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <memory-file.md>",
	Short: "Validate the frontmatter metadata of a memory file",
	Long: `Checks a memory file against the SSOT metadata conventions:

  - filename starts with a known category prefix and ends with .md
  - YAML frontmatter is present and parseable
  - the category's required frontmatter fields are all present
  - version is x.y.z, updated starts with YYYY-MM-DD, domain is a list
  - ssot memories carry a changelog (warning only)

Exits 0 when no errors are found; warnings do not affect the exit code.

Example:
  ssot validate ssot_analytics_volatility_2026-01-14.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := validate.File(args[0])
		if err != nil {
			return handleErr(cmd, ErrFileNotFound, err, "")
		}

		if isJSONOutput() {
			var warnings []Warning
			for _, issue := range report.Issues {
				if issue.Level == validate.LevelWarning {
					warnings = append(warnings, Warning{Code: issue.Code, Message: issue.Message})
				}
			}
			resp := Response{
				OK: report.OK(),
				Data: map[string]any{
					"file":     report.Filename,
					"category": report.Category,
					"errors":   report.Errors(),
					"warnings": report.Warnings(),
				},
				Warnings: warnings,
			}
			if !report.OK() {
				resp.Error = &ErrorInfo{
					Code:    ErrValidationFailed,
					Message: fmt.Sprintf("%d validation error(s)", len(report.Errors())),
				}
			}
			outputJSON(resp)
			if !report.OK() {
				return failSilently(cmd)
			}
			return nil
		}

		printReport(report)
		if !report.OK() {
			return failSilently(cmd)
		}
		return nil
	},
}

// printReport renders the human-readable validation report.
func printReport(report *validate.Report) {
	fmt.Printf("Validating: %s\n", report.Filename)
	fmt.Println(ui.Separator())

	errs := report.Errors()
	warns := report.Warnings()

	if len(errs) > 0 {
		fmt.Println()
		fmt.Println(ui.ErrorsHeader())
		for _, msg := range errs {
			fmt.Println(ui.Bullet(msg))
		}
	}

	if len(warns) > 0 {
		fmt.Println()
		fmt.Println(ui.WarningsHeader())
		for _, msg := range warns {
			fmt.Println(ui.Bullet(msg))
		}
	}

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Println()
		fmt.Println(ui.Successf("VALID: All checks passed!"))
	}

	fmt.Println(ui.Separator())
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
