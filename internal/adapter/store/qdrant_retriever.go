// Package store holds the Qdrant retrieval corpus and the Redis
// chat-session store.
package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"shrimp-assist/internal/domain/repository"
)

// QdrantRetriever answers knowledge-snippet queries from a collection of
// embedded document chunks (farming guides, disease handbooks). It is the
// optional retrieval collaborator of the advice composer.
type QdrantRetriever struct {
	client         *qdrant.Client
	embedder       repository.Embedder
	collectionName string
	topK           uint64
}

func NewQdrantRetriever(client *qdrant.Client, embedder repository.Embedder, collectionName string) *QdrantRetriever {
	return &QdrantRetriever{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		topK:           4,
	}
}

// InitCollection makes sure the chunk collection exists with the given
// vector dimension.
func (s *QdrantRetriever) InitCollection(ctx context.Context, dim uint64) error {
	_, err := s.client.GetCollectionInfo(ctx, s.collectionName)
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.NotFound {
		return err
	}
	if err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     dim,
			Distance: qdrant.Distance_Cosine,
		}),
	}); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// Ingest stores pre-chunked document text. Chunking and document loading
// live with the corpus tooling, not here.
func (s *QdrantRetriever) Ingest(ctx context.Context, source string, chunks []string) error {
	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, chunk := range chunks {
		vector, err := s.embedder.CreateEmbedding(ctx, chunk)
		if err != nil {
			return fmt.Errorf("embedding chunk from %s: %w", source, err)
		}
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuid.NewString()),
			Vectors: qdrant.NewVectors(vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"text":       chunk,
				"source":     source,
				"created_at": time.Now().Unix(),
			}),
		})
	}
	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         points,
	})
	return err
}

// Query embeds the text and returns the top chunks joined into one
// snippet. An empty corpus yields an empty snippet, not an error.
func (s *QdrantRetriever) Query(ctx context.Context, text string) (string, error) {
	vector, err := s.embedder.CreateEmbedding(ctx, text)
	if err != nil {
		return "", fmt.Errorf("embedding query: %w", err)
	}

	res, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(s.topK),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return "", err
	}

	var parts []string
	for _, hit := range res {
		if t := hit.Payload["text"].GetStringValue(); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		log.Printf("[RETRIEVAL] no chunks found for query in %s", s.collectionName)
	}
	return strings.Join(parts, "\n"), nil
}
