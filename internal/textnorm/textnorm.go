// Package textnorm turns extracted document text into the canonical form
// used by every scoring stage.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize lowercases text and replaces every rune that is not an ASCII
// letter or a space with a single space. Runs of replaced runes are not
// collapsed and the result is not trimmed.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	return b.String()
}

// Words splits text on whitespace. Empty tokens produced by repeated
// separators are dropped.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount returns the number of whitespace separated words in text.
func WordCount(text string) int {
	return len(Words(text))
}

// Contains reports whether the normalized text contains term as a plain
// substring. Word boundaries are not checked.
func Contains(normalized, term string) bool {
	return strings.Contains(normalized, term)
}
