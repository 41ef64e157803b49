package services

import (
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/textscan/internal/core/domain"
)

// findMatches returns the byte spans of every case-insensitive literal
// occurrence of query in text. Matching is non-overlapping and left to
// right: after a match the scan resumes at the end of the matched span.
// An empty query matches nothing.
func findMatches(text, query string) []domain.Span {
	if query == "" {
		return nil
	}
	pattern := []rune(query)

	var spans []domain.Span
	for i := 0; i < len(text); {
		if end, ok := matchFoldAt(text, i, pattern); ok {
			spans = append(spans, domain.Span{Start: i, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// matchFoldAt reports whether pattern matches text starting at byte
// offset start under simple case folding, and where the match ends.
func matchFoldAt(text string, start int, pattern []rune) (int, bool) {
	pos := start
	for _, want := range pattern {
		if pos >= len(text) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(text[pos:])
		if !equalFoldRune(got, want) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
