package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"shrimp-assist/internal/domain/entity"
	"shrimp-assist/internal/domain/repository"
)

// ResilientModel wraps a primary chat model with a per-call timeout,
// bounded retry on transient transport errors and an optional fallback
// model. Non-transient failures propagate to the caller unchanged, so a
// composer never masks a broken reply path with wrong output.
type ResilientModel struct {
	primary    repository.ChatModel
	fallback   repository.ChatModel // optional, may be nil
	maxRetries int
	baseDelay  time.Duration
	timeout    time.Duration
}

// NewResilientModel builds the wrapper. timeout caps every Invoke call;
// pass fallback nil to run with the primary only.
func NewResilientModel(primary, fallback repository.ChatModel, timeout time.Duration) *ResilientModel {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &ResilientModel{
		primary:    primary,
		fallback:   fallback,
		maxRetries: 2,
		baseDelay:  500 * time.Millisecond,
		timeout:    timeout,
	}
}

func (r *ResilientModel) Invoke(ctx context.Context, messages []entity.Message) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, err := r.invokeWithRetry(callCtx, r.primary, messages)
	if err == nil {
		return out, nil
	}

	if r.fallback == nil {
		return "", err
	}
	log.Printf("[RELIABILITY] primary model exhausted, switching to fallback: %v", err)

	out, ferr := r.fallback.Invoke(callCtx, messages)
	if ferr != nil {
		return "", fmt.Errorf("both primary and fallback failed: %w", ferr)
	}
	return out, nil
}

func (r *ResilientModel) invokeWithRetry(ctx context.Context, m repository.ChatModel, messages []entity.Message) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		out, err := m.Invoke(ctx, messages)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !isRetryable(err) || attempt == r.maxRetries {
			break
		}

		select {
		case <-time.After(r.backoff(attempt)):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return "", lastErr
}

// Retry on rate limits (429) and server-side errors (5xx).
func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "deadline")
}

func (r *ResilientModel) backoff(attempt int) time.Duration {
	backoff := float64(r.baseDelay) * float64(int(1)<<attempt)
	jitter := (rand.Float64() * 0.2) * backoff // 20% jitter
	return time.Duration(backoff + jitter)
}
