package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shrimp-assist/internal/domain/entity"
)

// RedisSession keeps the per-session conversation history and the cached
// last reading. History is an append-only list of turns; the reading is
// one JSON blob overwritten by every prediction.
type RedisSession struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSession(client *redis.Client, ttl time.Duration) *RedisSession {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSession{client: client, ttl: ttl}
}

func historyKey(sessionID string) string { return "chat:" + sessionID + ":history" }
func readingKey(sessionID string) string { return "chat:" + sessionID + ":reading" }

type cachedReading struct {
	Sample     *entity.WaterSample      `json:"sample"`
	Prediction *entity.PredictionResult `json:"prediction"`
}

func (r *RedisSession) AppendTurn(ctx context.Context, sessionID string, turn entity.ConversationTurn) error {
	raw, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	key := historyKey(sessionID)
	if err := r.client.RPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, key, r.ttl).Err()
}

func (r *RedisSession) History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error) {
	raws, err := r.client.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]entity.ConversationTurn, 0, len(raws))
	for _, raw := range raws {
		var turn entity.ConversationTurn
		if err := json.Unmarshal([]byte(raw), &turn); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (r *RedisSession) ClearHistory(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, historyKey(sessionID)).Err()
}

func (r *RedisSession) SaveLastReading(ctx context.Context, sessionID string, sample *entity.WaterSample, pred *entity.PredictionResult) error {
	raw, err := json.Marshal(cachedReading{Sample: sample, Prediction: pred})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, readingKey(sessionID), raw, r.ttl).Err()
}

// LastReading returns the cached sample/prediction pair, or nils when the
// session has not predicted yet.
func (r *RedisSession) LastReading(ctx context.Context, sessionID string) (*entity.WaterSample, *entity.PredictionResult, error) {
	raw, err := r.client.Get(ctx, readingKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	var cached cachedReading
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, nil, err
	}
	return cached.Sample, cached.Prediction, nil
}
