package usecase

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"shrimp-assist/internal/domain/entity"
	"shrimp-assist/internal/domain/repository"
)

// ChatService is the session-level orchestration around the agent: it runs
// predictions, caches the last reading per session and keeps the ordered
// conversation history. The agent core itself stays stateless.
type ChatService struct {
	predictor Predictor
	agent     *ShrimpAgent
	sessions  repository.ChatSession

	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

// Predictor is the inference pipeline as the chat layer sees it.
type Predictor interface {
	Predict(sample *entity.WaterSample) (*entity.PredictionResult, error)
}

func NewChatService(predictor Predictor, agent *ShrimpAgent, sessions repository.ChatSession) *ChatService {
	return &ChatService{
		predictor: predictor,
		agent:     agent,
		sessions:  sessions,
		md:        goldmark.New(goldmark.WithExtensions(extension.GFM)),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// Predict runs the four-task inference for a submitted reading and caches
// the sample/result pair as the session's conversation context.
func (s *ChatService) Predict(ctx context.Context, sessionID string, sample *entity.WaterSample) (*entity.PredictionResult, error) {
	result, err := s.predictor.Predict(sample)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveLastReading(ctx, sessionID, sample, result); err != nil {
		return nil, fmt.Errorf("caching reading for session %s: %w", sessionID, err)
	}
	return result, nil
}

// Chat answers one question in a session. The user turn is recorded even
// when reply generation fails; the assistant turn only exists once a
// complete reply was produced.
func (s *ChatService) Chat(ctx context.Context, sessionID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", entity.ErrEmptyQuestion
	}

	sample, pred, err := s.sessions.LastReading(ctx, sessionID)
	if err != nil {
		log.Printf("[CHAT] reading session context failed, answering without it: %v", err)
		sample, pred = nil, nil
	}

	s.appendTurn(ctx, sessionID, entity.RoleUser, question)

	reply, err := s.agent.Answer(ctx, question, sample, pred)
	if err != nil {
		return "", err
	}

	s.appendTurn(ctx, sessionID, entity.RoleAssistant, reply)
	return reply, nil
}

// History returns the session's conversation turns in order.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]entity.ConversationTurn, error) {
	return s.sessions.History(ctx, sessionID)
}

// Clear drops the session's conversation history. The cached last reading
// survives, so the farmer can keep asking about the same pond.
func (s *ChatService) Clear(ctx context.Context, sessionID string) error {
	return s.sessions.ClearHistory(ctx, sessionID)
}

func (s *ChatService) appendTurn(ctx context.Context, sessionID, role, content string) {
	turn := entity.ConversationTurn{
		Role:        role,
		Content:     content,
		ContentHTML: s.renderSafeHTML(content),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sessions.AppendTurn(ctx, sessionID, turn); err != nil {
		log.Printf("[CHAT] appending %s turn failed: %v", role, err)
	}
}

// renderSafeHTML renders markdown and sanitizes the result, so a turn can
// be embedded in a page as-is.
func (s *ChatService) renderSafeHTML(text string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(text), &buf); err != nil {
		return "<p>" + html.EscapeString(text) + "</p>"
	}
	return s.sanitizer.Sanitize(buf.String())
}
