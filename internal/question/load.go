package question

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Parse decodes quiz file content. Three shapes are accepted:
//
//   - a bare JSON array of question records
//   - an object with a "questions" array
//   - a legacy object whose values are arrays of question records
//     (flattened in key order)
//
// Anything else is a parse error.
func Parse(data []byte) ([]Raw, error) {
	var arr []Raw
	if err := json.Unmarshal(data, &arr); err == nil {
		return arr, nil
	}

	var wrapped struct {
		Questions []Raw `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Questions != nil {
		return wrapped.Questions, nil
	}

	var legacy map[string][]Raw
	if err := json.Unmarshal(data, &legacy); err == nil && len(legacy) > 0 {
		keys := make([]string, 0, len(legacy))
		for k := range legacy {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var flat []Raw
		for _, k := range keys {
			flat = append(flat, legacy[k]...)
		}
		return flat, nil
	}

	return nil, fmt.Errorf("unrecognized quiz file format")
}

// LoadFile reads and normalizes the questions in a quiz file.
func LoadFile(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}
	raws, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return Normalize(raws), nil
}

// LoadFiles loads and concatenates questions from several quiz files,
// preserving file order. No deduplication is performed.
func LoadFiles(paths []string) ([]Question, error) {
	var all []Question
	for _, p := range paths {
		qs, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		all = append(all, qs...)
	}
	return all, nil
}
