package summarizer

import (
	"regexp"
	"strings"
)

var (
	fenceRegex = regexp.MustCompile("(?s)^```[a-z]*\n?(.*?)\n?```$")
	labelRegex = regexp.MustCompile(`(?i)^(summary|here is a summary)\s*:\s*`)
)

// Clean strips the formatting artifacts models like to wrap answers in:
// code fences, a leading "Summary:" label, and wrapping quotes.
func Clean(text string) string {
	result := strings.TrimSpace(text)
	if m := fenceRegex.FindStringSubmatch(result); m != nil {
		result = strings.TrimSpace(m[1])
	}
	result = labelRegex.ReplaceAllString(result, "")
	if len(result) >= 2 && strings.HasPrefix(result, `"`) && strings.HasSuffix(result, `"`) {
		result = result[1 : len(result)-1]
	}
	return strings.TrimSpace(result)
}
