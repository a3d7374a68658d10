package strkit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Title converts s to Unicode-correct title case, capitalizing the first
// letter of every word.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Chunk splits s into pieces of at most size runes each, preserving order.
// Multi-byte runes are never split. Returns nil for empty input or a
// non-positive size.
func Chunk(s string, size int) []string {
	if s == "" || size <= 0 {
		return nil
	}

	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for i := 0; i < len(runes); i += size {
		end := min(i+size, len(runes))
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}

// SplitPascal inserts a space before every upper-case rune that starts a new
// word in a PascalCase or camelCase identifier. Runs of upper-case runes are
// kept together, so "HTTPServer" becomes "HTTP Server".
func SplitPascal(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsNotBlank reports whether s contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}
