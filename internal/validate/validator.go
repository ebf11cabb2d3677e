// Package validate checks memory files against the metadata conventions:
// filename prefixes, required frontmatter fields, and field formats.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aldsworth/ssot/internal/memory"
	"github.com/aldsworth/ssot/internal/parser"
)

// Level indicates the severity of an issue.
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Stable issue codes, paired with warnings/errors in structured output.
const (
	CodeNamingPrefix       = "NAMING_PREFIX"
	CodeNamingExtension    = "NAMING_EXTENSION"
	CodeFrontmatterMissing = "FRONTMATTER_MISSING"
	CodeMissingFields      = "MISSING_REQUIRED_FIELDS"
	CodeVersionFormat      = "VERSION_FORMAT"
	CodeTimestampFormat    = "TIMESTAMP_FORMAT"
	CodeDomainType         = "DOMAIN_TYPE"
	CodeMissingChangelog   = "MISSING_CHANGELOG"
)

// Issue is a single validation finding.
type Issue struct {
	Level   Level
	Code    string
	Message string
}

// Report collects the findings for one memory file.
type Report struct {
	// Filename is the base name of the validated file.
	Filename string

	// Category is the category resolved from the filename prefix
	// (empty when no prefix matched and the ssot fallback applied).
	Category string

	Issues []Issue
}

// OK reports whether the file passed validation (warnings permitted).
func (r *Report) OK() bool {
	return len(r.Errors()) == 0
}

// Errors returns the error-level messages in order.
func (r *Report) Errors() []string {
	return r.messages(LevelError)
}

// Warnings returns the warning-level messages in order.
func (r *Report) Warnings() []string {
	return r.messages(LevelWarning)
}

func (r *Report) messages(level Level) []string {
	var msgs []string
	for _, issue := range r.Issues {
		if issue.Level == level {
			msgs = append(msgs, issue.Message)
		}
	}
	return msgs
}

func (r *Report) errorf(code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Level: LevelError, Code: code, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) warnf(code, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{Level: LevelWarning, Code: code, Message: fmt.Sprintf(format, args...)})
}

var versionRe = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// File validates the memory file at path. A missing file is the only
// condition reported through the error return; everything else lands in the
// report. A missing or malformed frontmatter block stops validation after
// the naming checks.
func File(path string) (*Report, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, err
	}

	report := &Report{Filename: filepath.Base(path)}
	checkNaming(report)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fm, err := parser.Parse(string(content))
	if err != nil {
		report.errorf(CodeFrontmatterMissing, "Missing or invalid YAML frontmatter (should be between --- markers): %v", err)
		return report, nil
	}
	if fm == nil {
		report.errorf(CodeFrontmatterMissing, "Missing or invalid YAML frontmatter (should be between --- markers)")
		return report, nil
	}

	category, _ := memory.CategoryFromFilename(report.Filename)
	report.Category = category

	checkRequiredFields(report, fm, category)
	checkVersion(report, fm)
	checkUpdated(report, fm)
	checkDomain(report, fm)
	checkChangelog(report, fm, category)

	return report, nil
}

// checkNaming verifies the filename prefix and .md extension. Violations are
// collected, not fatal.
func checkNaming(report *Report) {
	if !memory.HasKnownPrefix(report.Filename) {
		report.errorf(CodeNamingPrefix, "Filename should start with one of: %s", strings.Join(memory.FilenamePrefixes, ", "))
	}
	if !strings.HasSuffix(report.Filename, ".md") {
		report.errorf(CodeNamingExtension, "Filename should end with .md")
	}
}

// checkRequiredFields reports all missing fields for the resolved category
// as one combined error.
func checkRequiredFields(report *Report, fm *parser.Frontmatter, category string) {
	var missing []string
	for _, field := range memory.FieldsFor(category) {
		if !fm.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		report.errorf(CodeMissingFields, "Missing required fields: %s", strings.Join(missing, ", "))
	}
}

func checkVersion(report *Report, fm *parser.Frontmatter) {
	value, ok := fm.Fields["version"]
	if !ok {
		return
	}
	if s := stringify(value); !versionRe.MatchString(s) {
		report.errorf(CodeVersionFormat, "Invalid version format: %s (should be x.y.z)", s)
	}
}

func checkUpdated(report *Report, fm *parser.Frontmatter) {
	value, ok := fm.Fields["updated"]
	if !ok {
		return
	}
	if s := stringify(value); !datePrefixRe.MatchString(s) {
		report.warnf(CodeTimestampFormat, "Updated timestamp should be ISO8601 format: %s", s)
	}
}

func checkDomain(report *Report, fm *parser.Frontmatter) {
	value, ok := fm.Fields["domain"]
	if !ok {
		return
	}
	if _, isList := value.([]any); !isList {
		report.errorf(CodeDomainType, "Domain field should be an array/list")
	}
}

func checkChangelog(report *Report, fm *parser.Frontmatter, category string) {
	if category != string(memory.CategorySSOT) {
		return
	}
	if !fm.Has("changelog") {
		report.warnf(CodeMissingChangelog, "SSOT files should include a changelog section in frontmatter")
	}
}

// stringify renders a frontmatter scalar for format checks and messages.
// YAML decodes bare dates into time.Time; their default formatting starts
// with YYYY-MM-DD, which is what the updated check needs.
func stringify(value any) string {
	return fmt.Sprintf("%v", value)
}
