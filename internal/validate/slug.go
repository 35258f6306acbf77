package validate

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a title: lowercase, every run
// of characters outside [a-z0-9] collapsed into a single hyphen, no leading
// or trailing hyphen. A title with no alphanumeric characters yields "",
// which callers must reject as an invalid title.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
