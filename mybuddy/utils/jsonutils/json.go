package jsonutils

import (
	"encoding/json"
	"strings"
)

// StripCodeFence removes a Markdown code fence wrapped around model output.
//
// "```json\n{...}\n```" becomes "{...}". The opening fence line (with any
// language tag) is dropped and everything from the last closing fence on is
// cut. Input that does not start with a fence is returned trimmed.
func StripCodeFence(input string) string {
	// Remove BOMs and zero-width characters models sometimes emit
	input = strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D' {
			return -1
		}
		return r
	}, input))

	if !strings.HasPrefix(input, "```") {
		return input
	}
	_, rest, found := strings.Cut(input, "\n")
	if !found {
		return ""
	}
	if i := strings.LastIndex(rest, "```"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}

// ToJSON serializes a Go value to a JSON string with indentation.
// Returns an empty string if serialization fails.
func ToJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
