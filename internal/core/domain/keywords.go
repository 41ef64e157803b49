package domain

import "strings"

// KeywordSet is an immutable ordered list of lowercase keywords checked
// against every analyzed document.
type KeywordSet struct {
	keywords []string
}

// defaultKeywords is the keyword list shipped with the service.
var defaultKeywords = []string{"resume", "job", "experience", "education", "python", "project"}

// DefaultKeywords returns the built-in keyword set.
func DefaultKeywords() KeywordSet {
	return NewKeywordSet(defaultKeywords...)
}

// NewKeywordSet creates a keyword set. Keywords are lowercased; empty and
// duplicate entries are dropped, order is otherwise kept.
func NewKeywordSet(keywords ...string) KeywordSet {
	seen := make(map[string]struct{}, len(keywords))
	list := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		list = append(list, kw)
	}
	return KeywordSet{keywords: list}
}

// List returns a copy of the keywords in order.
func (k KeywordSet) List() []string {
	out := make([]string, len(k.keywords))
	copy(out, k.keywords)
	return out
}

// Len returns the number of keywords.
func (k KeywordSet) Len() int {
	return len(k.keywords)
}

// Contains reports whether keyword (case-insensitive) is in the set.
func (k KeywordSet) Contains(keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, kw := range k.keywords {
		if kw == keyword {
			return true
		}
	}
	return false
}

// FoundIn returns the ordered subsequence of keywords that occur as a
// substring of text, ignoring case. Never nil.
func (k KeywordSet) FoundIn(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(k.keywords))
	for _, kw := range k.keywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}
	return found
}
