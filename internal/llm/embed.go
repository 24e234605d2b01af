package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// Embedder converts text into dense vectors for similarity search.
type Embedder interface {
	// Embed returns one vector per input text, in order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the embedding model identifier.
	ModelID() string
}

// NewEmbedder creates an Embedder from configuration. Only the OpenAI
// embeddings API is supported; the mock provider gets a mock embedder.
func NewEmbedder(cfg Config) (Embedder, error) {
	if cfg.Provider == "mock" {
		return NewMockEmbedder(), nil
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required for embeddings")
	}

	config := openai.DefaultConfig(cfg.OpenAI.APIKey)
	if cfg.OpenAI.BaseURL != "" {
		config.BaseURL = cfg.OpenAI.BaseURL
	}
	return &OpenAIEmbedder{
		client: openai.NewClientWithConfig(config),
		model:  openai.SmallEmbedding3,
	}, nil
}

// OpenAIEmbedder implements Embedder using the OpenAI embeddings API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, openaiError(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("embeddings: got %d vectors for %d inputs", len(resp.Data), len(texts)),
		}
	}

	vecs := make([][]float32, len(texts))
	for _, d := range resp.Data {
		vecs[d.Index] = d.Embedding
	}
	return vecs, nil
}

func (e *OpenAIEmbedder) ModelID() string {
	return string(e.model)
}

// MockEmbedder produces deterministic pseudo-vectors for tests: the same
// text always maps to the same unit vector, and distinct texts rarely
// collide.
type MockEmbedder struct {
	dims int
}

func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{dims: 16}
}

func (e *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vecs := make([][]float32, len(texts))
	for i, t := range texts {
		v := make([]float32, e.dims)
		h := fnv.New64a()
		h.Write([]byte(t))
		seed := h.Sum64()
		var norm float64
		for d := range v {
			seed = seed*6364136223846793005 + 1442695040888963407
			v[d] = float32(int64(seed>>33)%1000) / 1000
			norm += float64(v[d]) * float64(v[d])
		}
		if norm > 0 {
			n := float32(math.Sqrt(norm))
			for d := range v {
				v[d] /= n
			}
		}
		vecs[i] = v
	}
	return vecs, nil
}

func (e *MockEmbedder) ModelID() string {
	return "mock-embedder"
}
