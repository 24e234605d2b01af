package question

import (
	"encoding/json"
	"os"
)

// IndexEntry describes one quiz file available for selection.
type IndexEntry struct {
	File  string `json:"file"`
	Title string `json:"title"`
}

// FallbackIndex is used when no index document is present alongside the
// quiz files.
var FallbackIndex = []IndexEntry{
	{File: "general_knowledge.json", Title: "General Knowledge"},
	{File: "sample_quiz.json", Title: "Sample Quiz"},
}

// LoadIndex reads the quiz index document. A missing or unreadable index is
// not an error: the hardcoded fallback list is returned instead.
func LoadIndex(path string) []IndexEntry {
	data, err := os.ReadFile(path)
	if err != nil {
		return FallbackIndex
	}

	var entries []IndexEntry
	if err := json.Unmarshal(data, &entries); err == nil && len(entries) > 0 {
		return entries
	}

	var wrapped struct {
		Quizzes []IndexEntry `json:"quizzes"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && len(wrapped.Quizzes) > 0 {
		return wrapped.Quizzes
	}

	return FallbackIndex
}
