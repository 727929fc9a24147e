// Package markup turns a fetched HTML export into a stream of text lines.
//
// Tags are not parsed; every tag-like span is replaced by a line break, so
// each table cell of a published document ends up on its own line.
package markup

import (
	"regexp"
	"strings"
)

// tagPattern matches anything that looks like a markup tag.
var tagPattern = regexp.MustCompile(`<[^>]+>`)

// StripTags replaces every tag-like span in text with a newline.
func StripTags(text string) string {
	return tagPattern.ReplaceAllString(text, "\n")
}

// Lines strips tags from text and returns the remaining non-empty lines,
// each trimmed of surrounding whitespace. Order is preserved.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.Split(StripTags(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
