// Package sanitize neutralizes instruction-like content in user-submitted
// review text before it is embedded in a summarization prompt.
// Reference: OWASP LLM Prompt Injection Prevention Cheat Sheet
// https://cheatsheetseries.owasp.org/cheatsheets/LLM_Prompt_Injection_Prevention_Cheat_Sheet.html
package sanitize

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// instructionPatterns detects instruction-like content in review text:
// instruction override, role reassignment, prompt extraction, and output
// manipulation attempts.
var instructionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+|the\s+)?(previous|prior|above)\s+instructions?`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+|the\s+)?(previous|prior|above)`),
	regexp.MustCompile(`(?i)you\s+are\s+(now|no\s+longer)\s+`),
	regexp.MustCompile(`(?i)act\s+as\s+(a|an|the)\s+`),
	regexp.MustCompile(`(?i)(reveal|print|show|repeat)\s+(your|the)\s+(system\s+)?prompt`),
	regexp.MustCompile(`(?i)new\s+instructions?\s*:`),
	regexp.MustCompile(`(?i)(developer|debug)\s+mode`),
	regexp.MustCompile("(?s)```.*?```"),
}

// ReviewText normalizes text to NFC form, so lookalike-character tricks do
// not slip past the patterns, then wraps instruction-like fragments in 【】
// brackets. The brackets mark the fragment as quoted material rather than an
// instruction to follow.
func ReviewText(text string) string {
	result := norm.NFC.String(text)
	for _, pattern := range instructionPatterns {
		result = pattern.ReplaceAllStringFunc(result, func(match string) string {
			return "【" + match + "】"
		})
	}
	return result
}
