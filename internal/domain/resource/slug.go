package resource

import (
	"regexp"
	"strings"
)

var (
	// reSlugInvalid matches characters that aren't lowercase alphanumeric or underscore.
	reSlugInvalid = regexp.MustCompile(`[^a-z0-9_]`)
	// reSlugRuns matches consecutive underscores.
	reSlugRuns = regexp.MustCompile(`_+`)
)

// Slugify converts a human-readable name into a URL-safe filter value:
// lowercase, spaces become underscores, anything else non-alphanumeric is
// stripped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "_")
	s = reSlugInvalid.ReplaceAllString(s, "")
	s = reSlugRuns.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
