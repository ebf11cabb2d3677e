// Package template provides the memory scaffolds and placeholder rendering.
package template

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/aldsworth/ssot/internal/memory"
)

// timestampLayout is ISO-8601 with a numeric UTC offset, matching the
// `updated` convention used across existing memories.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// dateLayout is the local date used in changelog entries and filenames.
const dateLayout = "2006-01-02"

var placeholderRe = regexp.MustCompile(`\{\{([a-zA-Z0-9_.]+)\}\}`)

// ErrUnknownCategory is returned when no template exists for a category.
type ErrUnknownCategory struct {
	Category string
}

func (e *ErrUnknownCategory) Error() string {
	return fmt.Sprintf("invalid category: %s", e.Category)
}

// ErrUnresolved is returned when a template placeholder has neither a
// default nor an override. Rendering fails loudly rather than leaving
// markers in the output.
type ErrUnresolved struct {
	Names []string
}

func (e *ErrUnresolved) Error() string {
	return fmt.Sprintf("unresolved template placeholders: %s", strings.Join(e.Names, ", "))
}

// CategoryNames returns the generator category names in a stable order.
func CategoryNames() []string {
	names := make([]string, 0, len(Templates))
	for _, c := range Categories() {
		names = append(names, string(c))
	}
	return names
}

// Defaults returns the built-in placeholder values for a category at the
// given instant. The timestamp is UTC with offset; the date is local.
func Defaults(category memory.Category, now time.Time) map[string]string {
	return map[string]string{
		"title":         "New Memory",
		"timestamp":     now.UTC().Format(timestampLayout),
		"date":          now.Format(dateLayout),
		"scope":         "to-be-defined",
		"category":      string(category),
		"subcategory":   "general",
		"domain":        "domain1, domain2",
		"applicability": "specific area or 'all'",
		"purpose":       "Brief statement of purpose...",
		"overview":      "High-level overview...",
		"description":   "Detailed description...",
		"objective":     "What this plan aims to achieve...",
		"background":    "Context and motivation...",
		"phase_name":    "Phase Name",
		"example_name":  "Example Name",
	}
}

// Render produces the memory text for a category at the given instant,
// substituting defaults merged with overrides. Overrides win. It returns
// ErrUnknownCategory for categories without a template and ErrUnresolved if
// any placeholder marker survives substitution.
func Render(category memory.Category, overrides map[string]string, now time.Time) (string, error) {
	tmpl, ok := Templates[category]
	if !ok {
		return "", &ErrUnknownCategory{Category: string(category)}
	}

	values := Defaults(category, now)
	for key, value := range overrides {
		values[key] = value
	}

	content := tmpl
	for name, value := range values {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}

	if leftover := placeholderRe.FindAllStringSubmatch(content, -1); len(leftover) > 0 {
		seen := make(map[string]struct{})
		var names []string
		for _, m := range leftover {
			if _, dup := seen[m[1]]; !dup {
				seen[m[1]] = struct{}{}
				names = append(names, m[1])
			}
		}
		sort.Strings(names)
		return "", &ErrUnresolved{Names: names}
	}

	return content, nil
}
