package client

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// Embedder produces query vectors for the retrieval corpus.
type Embedder struct {
	client *genai.Client
	model  string // e.g., "text-embedding-004"
}

func NewEmbedder(ctx context.Context, projectID, location, model string) (*Embedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, err
	}
	return &Embedder{client: client, model: model}, nil
}

func NewEmbedderFromClient(c *genai.Client, model string) *Embedder {
	return &Embedder{client: c, model: model}
}

func (e *Embedder) CreateEmbedding(ctx context.Context, text string) ([]float32, error) {
	res, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, err
	}
	return firstEmbedding(res)
}

// firstEmbedding pulls the vector out of an embedding response. The API can
// return a response with no embeddings at all, which must surface as an
// error rather than an index panic.
func firstEmbedding(res *genai.EmbedContentResponse) ([]float32, error) {
	if res == nil || len(res.Embeddings) == 0 {
		return nil, errors.New("embedding response contained no embeddings")
	}
	return res.Embeddings[0].Values, nil
}
