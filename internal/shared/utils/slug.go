package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
)

// Slugify normalizes arbitrary header text into a URL-safe anchor id.
// The output contains only lowercase letters, digits and hyphens, and the
// function is idempotent: Slugify(Slugify(s)) == Slugify(s). Heading anchors
// depend on this being stable across renders.
func Slugify(input string) string {
	// Step 1: Lowercase
	s := strings.ToLower(input)

	// Step 2: Drop everything that is not a letter, digit, space or hyphen
	s = slugInvalidChars.ReplaceAllString(s, "")

	// Step 3: Trim surrounding whitespace before hyphenation so leading
	// or trailing spaces never become hyphens
	s = strings.TrimSpace(s)

	// Step 4: Collapse whitespace runs to single hyphens
	s = slugWhitespace.ReplaceAllString(s, "-")

	// Step 5: Collapse hyphen runs, then trim stray hyphens
	s = slugHyphenRuns.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
