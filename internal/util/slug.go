package util

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeriveSlug lowercases name and turns every whitespace run into one hyphen.
func DeriveSlug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
