package utils

import "strings"

// PreviewLength is the number of runes of a document shown in debug logs.
const PreviewLength = 80

// TruncateForLog shortens the provided string to the specified limit, appending an ellipsis when truncated.
func TruncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// Preview squeezes whitespace runs of extracted text into single spaces and
// truncates it to PreviewLength.
func Preview(s string) string {
	return TruncateForLog(strings.Join(strings.Fields(s), " "), PreviewLength)
}
