package memory

import (
	"fmt"
	"strings"
	"time"

	goslug "github.com/gosimple/slug"
)

// SuggestFilename derives a convention-following filename for a new memory:
// <category>_<slug(title)>_<YYYY-MM-DD>.md.
func SuggestFilename(category Category, title string, now time.Time) string {
	slugged := goslug.Make(title)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(title), " ", "-"))
	}
	if slugged == "" {
		slugged = "memory"
	}
	return fmt.Sprintf("%s_%s_%s.md", category, slugged, now.Format("2006-01-02"))
}
