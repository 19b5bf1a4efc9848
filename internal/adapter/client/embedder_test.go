package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestFirstEmbedding(t *testing.T) {
	res := &genai.EmbedContentResponse{
		Embeddings: []*genai.ContentEmbedding{
			{Values: []float32{0.1, 0.2, 0.3}},
		},
	}
	vec, err := firstEmbedding(res)
	assert.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
}

func TestFirstEmbeddingEmptyResponse(t *testing.T) {
	_, err := firstEmbedding(&genai.EmbedContentResponse{})
	assert.Error(t, err)

	_, err = firstEmbedding(nil)
	assert.Error(t, err)
}
