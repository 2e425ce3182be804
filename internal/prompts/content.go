package prompts

import (
	"regexp"
	"strings"
)

const minContentLength = 10

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// IsValidContent reports whether content, once trimmed, has at least ten characters.
func IsValidContent(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	return len([]rune(trimmed)) >= minContentLength
}

// ExtractVariables returns the names of {{name}} placeholders in content in
// order of appearance. Duplicates are kept.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
