package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aldsworth/ssot/internal/atomicfile"
	"github.com/aldsworth/ssot/internal/memory"
	"github.com/aldsworth/ssot/internal/template"
	"github.com/aldsworth/ssot/internal/ui"
)

var generateCmd = &cobra.Command{
	Use:   "generate <category> [output.md] [key=value ...]",
	Short: "Scaffold a new memory file from a category template",
	Long: `Creates a new memory file with boilerplate frontmatter for the category.

Template placeholders are filled from built-in defaults, [defaults] in the
config file, and trailing key=value arguments (highest precedence). Values
with surrounding single or double quotes have the outer quotes stripped.

If the output filename is omitted, it is derived from the title:
<category>_<slug>_<date>.md, placed in memory_dir from the config (or the
current directory).

Examples:
  ssot generate ssot ssot_analytics_2026-01-20.md \
      title='New Analytics SSOT' domain='analytics' subcategory='metrics'

  ssot generate pattern title='Caching Strategy Pattern' domain='performance'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := memory.Category(args[0])
		rest := args[1:]

		var outputFile string
		if len(rest) > 0 && !strings.Contains(rest[0], "=") {
			outputFile = rest[0]
			rest = rest[1:]
		}

		overrides := make(map[string]string)
		for key, value := range getConfig().Defaults {
			overrides[key] = value
		}
		for _, arg := range rest {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return handleErrorMsg(cmd, ErrInvalidInput,
					fmt.Sprintf("invalid argument: %s", arg),
					"Trailing arguments must be key=value pairs")
			}
			overrides[key] = stripQuotes(value)
		}

		now := time.Now()

		content, err := template.Render(category, overrides, now)
		if err != nil {
			var unknown *template.ErrUnknownCategory
			if errors.As(err, &unknown) {
				return handleErr(cmd, ErrInvalidCategory, err,
					fmt.Sprintf("Valid categories: %s", strings.Join(template.CategoryNames(), ", ")))
			}
			return handleErr(cmd, ErrRenderFailed, err, "")
		}

		if outputFile == "" {
			title := template.Defaults(category, now)["title"]
			if t, ok := overrides["title"]; ok && t != "" {
				title = t
			}
			outputFile = memory.SuggestFilename(category, title, now)
		}
		if filepath.Dir(outputFile) == "." && getConfig().MemoryDir != "" {
			outputFile = filepath.Join(getConfig().MemoryDir, outputFile)
		}

		if err := atomicfile.WriteNew(outputFile, []byte(content), 0o644); err != nil {
			var exists *atomicfile.ErrExists
			if errors.As(err, &exists) {
				return handleErr(cmd, ErrFileExists, err,
					"Use a different filename or remove the existing file first")
			}
			return handleErr(cmd, ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]any{
				"category": string(category),
				"file":     outputFile,
			})
			return nil
		}

		fmt.Println(ui.Successf("Created %s memory: %s", category, ui.FilePath(outputFile)))
		fmt.Println(ui.Hint("Edit the file to fill in placeholders and add content."))
		return nil
	},
}

// stripQuotes removes one matching pair of outer single or double quotes.
// This is shell-leftover cleanup, not unquoting: inner quotes and escapes
// are left alone.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
