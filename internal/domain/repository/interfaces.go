package repository

import (
	"context"

	"shrimp-assist/internal/domain/entity"
)

// ChatModel is the language-model collaborator. It treats the message list
// as an opaque {role, content} protocol and returns the reply text.
type ChatModel interface {
	Invoke(ctx context.Context, messages []entity.Message) (string, error)
}

// Embedder turns text into a vector for retrieval lookups.
type Embedder interface {
	CreateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Retriever is the optional document-retrieval collaborator. Query returns
// a knowledge snippet for the given text, or an empty string when the
// corpus has nothing relevant.
type Retriever interface {
	Query(ctx context.Context, text string) (string, error)
}

// ChatSession owns the per-session conversation history and the cached
// last sample/prediction pair the conversational layer reads.
type ChatSession interface {
	AppendTurn(ctx context.Context, sessionID string, turn entity.ConversationTurn) error
	History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error)
	ClearHistory(ctx context.Context, sessionID string) error

	SaveLastReading(ctx context.Context, sessionID string, sample *entity.WaterSample, pred *entity.PredictionResult) error
	LastReading(ctx context.Context, sessionID string) (*entity.WaterSample, *entity.PredictionResult, error)
}
