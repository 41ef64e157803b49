package domain

// AnalysisResult holds per-document statistics computed on upload.
// It is never persisted.
type AnalysisResult struct {
	Name          string   `json:"name" yaml:"name"`
	WordCount     int      `json:"word_count" yaml:"word_count"`
	FoundKeywords []string `json:"found_keywords" yaml:"found_keywords"`
}

// HasKeywords reports whether any keyword was found.
func (r *AnalysisResult) HasKeywords() bool {
	return len(r.FoundKeywords) > 0
}
