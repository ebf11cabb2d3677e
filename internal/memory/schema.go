// Package memory defines the SSOT memory document schema: categories,
// required frontmatter fields, and filename conventions.
package memory

import "strings"

// Category classifies a memory document. It drives both the generator
// template and the validator's required-field set.
type Category string

// The known categories.
const (
	CategorySSOT      Category = "ssot"
	CategoryPattern   Category = "pattern"
	CategoryReference Category = "reference"
	CategoryPlan      Category = "plan"
	CategoryArchive   Category = "archive"
)

// RequiredFields maps each category to the frontmatter fields it must carry.
// Order matters: missing fields are reported in this order.
var RequiredFields = map[Category][]string{
	CategorySSOT:      {"title", "version", "updated", "scope", "category", "subcategory", "domain"},
	CategoryPattern:   {"title", "version", "updated", "scope", "category", "domain"},
	CategoryPlan:      {"title", "version", "updated", "scope", "category"},
	CategoryReference: {"title", "scope", "category"},
	CategoryArchive:   {"title", "version", "updated", "scope", "category", "archived_date"},
}

// FilenamePrefixes are the accepted memory filename prefixes, in match order.
// troubleshoot_ and commit_log are accepted prefixes without a required-field
// set of their own; they fall back to the ssot set.
var FilenamePrefixes = []string{
	"ssot_",
	"pattern_",
	"plan_",
	"reference_",
	"archive_",
	"troubleshoot_",
	"commit_log",
}

// HasKnownPrefix reports whether the filename starts with an accepted prefix.
func HasKnownPrefix(filename string) bool {
	for _, prefix := range FilenamePrefixes {
		if strings.HasPrefix(filename, prefix) {
			return true
		}
	}
	return false
}

// CategoryFromFilename resolves the category from the first matching filename
// prefix (trailing underscore stripped). ok is false when no prefix matches.
func CategoryFromFilename(filename string) (category string, ok bool) {
	for _, prefix := range FilenamePrefixes {
		if strings.HasPrefix(filename, prefix) {
			return strings.TrimRight(prefix, "_"), true
		}
	}
	return "", false
}

// FieldsFor returns the required-field set for a resolved category string.
// Unknown categories (including troubleshoot/commit_log and an unresolved
// empty category) fall back to the generic ssot set.
func FieldsFor(category string) []string {
	if fields, ok := RequiredFields[Category(category)]; ok {
		return fields
	}
	return RequiredFields[CategorySSOT]
}
