package kb

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"quizdeck/internal/llm"
)

// Chunk is one searchable slice of a document.
type Chunk struct {
	Text   string
	Vector []float32
}

// SearchIndex holds embedded chunks for similarity retrieval.
type SearchIndex struct {
	embedder llm.Embedder
	chunks   []Chunk
}

// BuildIndex chunks the given content and embeds every chunk.
func BuildIndex(ctx context.Context, embedder llm.Embedder, content string) (*SearchIndex, error) {
	texts := SplitChunks(content, 1200, 200)
	if len(texts) == 0 {
		return &SearchIndex{embedder: embedder}, nil
	}

	vecs, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed chunks: %w", err)
	}

	chunks := make([]Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = Chunk{Text: t, Vector: vecs[i]}
	}
	return &SearchIndex{embedder: embedder, chunks: chunks}, nil
}

// Len reports the number of indexed chunks.
func (x *SearchIndex) Len() int {
	return len(x.chunks)
}

// TopK returns the k chunks most similar to the query, best first.
func (x *SearchIndex) TopK(ctx context.Context, query string, k int) ([]string, error) {
	if len(x.chunks) == 0 || k <= 0 {
		return nil, nil
	}

	qvecs, err := x.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	qv := qvecs[0]

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(x.chunks))
	for i, c := range x.chunks {
		scores[i] = scored{idx: i, score: cosine(qv, c.Vector)}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if k > len(scores) {
		k = len(scores)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = x.chunks[scores[i].idx].Text
	}
	return out, nil
}

// SplitChunks slices text into overlapping chunks of roughly size runes,
// preferring paragraph boundaries.
func SplitChunks(text string, size, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if size <= 0 {
		size = 1200
	}
	if overlap < 0 || overlap >= size {
		overlap = 0
	}

	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	step := size - overlap
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		cut := end
		// Break on a paragraph or line boundary near the end when one exists.
		if end < len(runes) {
			window := string(runes[start:end])
			if i := strings.LastIndex(window, "\n\n"); i > step/2 {
				cut = start + len([]rune(window[:i]))
			} else if i := strings.LastIndex(window, "\n"); i > step/2 {
				cut = start + len([]rune(window[:i]))
			}
		}
		chunk := strings.TrimSpace(string(runes[start:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		if cut >= len(runes) {
			break
		}
		if cut < end {
			start = cut - step // resume right after the boundary on next step
		}
	}
	return chunks
}

// cosine computes cosine similarity between two vectors of equal length.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
