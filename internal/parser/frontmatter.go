// Package parser handles extracting YAML frontmatter from memory files.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the parsed metadata block of a memory document.
type Frontmatter struct {
	// Fields holds the decoded YAML mapping.
	Fields map[string]any

	// Raw is the raw frontmatter content between the fences.
	Raw string

	// EndLine is the line of the closing fence (1-indexed).
	EndLine int
}

// Has reports whether the named field is present.
func (f *Frontmatter) Has(name string) bool {
	_, ok := f.Fields[name]
	return ok
}

// Bounds returns the closing frontmatter fence index. Frontmatter is only
// detected when the first line is '---'. If the block is unclosed, endLine
// is -1.
func Bounds(lines []string) (endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return -1, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return i, true
		}
	}
	return -1, true
}

// Parse extracts and decodes YAML frontmatter from document content.
// Returns nil (and no error) when the document has no frontmatter block;
// returns an error when the block exists but is not valid YAML.
func Parse(content string) (*Frontmatter, error) {
	lines := strings.Split(content, "\n")

	endLine, ok := Bounds(lines)
	if !ok || endLine == -1 {
		return nil, nil
	}

	raw := strings.Join(lines[1:endLine], "\n")

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("invalid YAML frontmatter: %w", err)
	}
	// An empty document decodes to a nil map; still counts as frontmatter.
	if fields == nil {
		fields = map[string]any{}
	}

	return &Frontmatter{
		Fields:  fields,
		Raw:     raw,
		EndLine: endLine + 1,
	}, nil
}
