package domain

import (
	"strings"
	"time"
)

// Span is a half-open byte range [Start, End) into a document's text.
type Span struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Highlighter brackets matched spans with an open and close marker.
type Highlighter struct {
	Open  string
	Close string
}

// DefaultHighlighter returns the marker pair used by the web UI.
func DefaultHighlighter() Highlighter {
	return Highlighter{
		Open:  `<span class="highlight">`,
		Close: `</span>`,
	}
}

// Apply wraps every span of text with the markers. Spans must be sorted,
// non-overlapping and within bounds.
func (h Highlighter) Apply(text string, spans []Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(spans)*(len(h.Open)+len(h.Close)))
	last := 0
	for _, sp := range spans {
		b.WriteString(text[last:sp.Start])
		b.WriteString(h.Open)
		b.WriteString(text[sp.Start:sp.End])
		b.WriteString(h.Close)
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// SearchHit is one document that contains the query.
type SearchHit struct {
	Name        string `json:"name" yaml:"name"`
	Content     string `json:"content" yaml:"-"`
	Highlighted string `json:"highlighted" yaml:"highlighted"`
	Matches     []Span `json:"matches" yaml:"matches"`
}

// SearchResult represents the result of a search query
type SearchResult struct {
	Query      string        `json:"query" yaml:"query"`
	Hits       []*SearchHit  `json:"hits" yaml:"hits"`
	TotalCount int           `json:"total_count" yaml:"total_count"`
	Took       time.Duration `json:"took" yaml:"took" swaggertype:"integer" example:"1500000"`
}

// Empty reports whether no document matched.
func (r *SearchResult) Empty() bool {
	return len(r.Hits) == 0
}
