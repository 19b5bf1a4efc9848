package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrimp-assist/internal/domain/entity"
)

type memorySession struct {
	turns    map[string][]entity.ConversationTurn
	samples  map[string]*entity.WaterSample
	preds    map[string]*entity.PredictionResult
	failSave bool
}

func newMemorySession() *memorySession {
	return &memorySession{
		turns:   map[string][]entity.ConversationTurn{},
		samples: map[string]*entity.WaterSample{},
		preds:   map[string]*entity.PredictionResult{},
	}
}

func (m *memorySession) AppendTurn(_ context.Context, sid string, turn entity.ConversationTurn) error {
	m.turns[sid] = append(m.turns[sid], turn)
	return nil
}

func (m *memorySession) History(_ context.Context, sid string) ([]entity.ConversationTurn, error) {
	return m.turns[sid], nil
}

func (m *memorySession) ClearHistory(_ context.Context, sid string) error {
	delete(m.turns, sid)
	return nil
}

func (m *memorySession) SaveLastReading(_ context.Context, sid string, s *entity.WaterSample, p *entity.PredictionResult) error {
	if m.failSave {
		return errors.New("redis down")
	}
	m.samples[sid] = s
	m.preds[sid] = p
	return nil
}

func (m *memorySession) LastReading(_ context.Context, sid string) (*entity.WaterSample, *entity.PredictionResult, error) {
	return m.samples[sid], m.preds[sid], nil
}

type stubPredictor struct {
	result *entity.PredictionResult
	err    error
}

func (s *stubPredictor) Predict(*entity.WaterSample) (*entity.PredictionResult, error) {
	return s.result, s.err
}

func newTestChatService(llm *fakeChatModel, sessions *memorySession) *ChatService {
	agent := newTestAgent(llm, nil)
	return NewChatService(&stubPredictor{result: riskyPrediction()}, agent, sessions)
}

func TestPredictCachesReading(t *testing.T) {
	sessions := newMemorySession()
	svc := newTestChatService(&fakeChatModel{}, sessions)

	res, err := svc.Predict(context.Background(), "sid-1", testSample())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Task1Label)
	assert.NotNil(t, sessions.samples["sid-1"])
	assert.NotNil(t, sessions.preds["sid-1"])
}

func TestPredictCacheFailurePropagates(t *testing.T) {
	sessions := newMemorySession()
	sessions.failSave = true
	svc := newTestChatService(&fakeChatModel{}, sessions)

	_, err := svc.Predict(context.Background(), "sid-1", testSample())
	require.Error(t, err)
}

func TestChatUsesCachedReading(t *testing.T) {
	sessions := newMemorySession()
	llm := &fakeChatModel{reply: "dạ nước đang yếu"}
	svc := newTestChatService(llm, sessions)

	_, err := svc.Predict(context.Background(), "sid-1", testSample())
	require.NoError(t, err)

	reply, err := svc.Chat(context.Background(), "sid-1", "phân tích hiện trạng nước")
	require.NoError(t, err)
	assert.Equal(t, "dạ nước đang yếu", reply)

	// The fact summary made it into the prompt, so the cached reading was
	// actually read back.
	require.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.messages[0][1].Content, "DỮ LIỆU AO")
}

func TestChatWithoutReadingGates(t *testing.T) {
	svc := newTestChatService(&fakeChatModel{}, newMemorySession())

	reply, err := svc.Chat(context.Background(), "sid-1", "phân tích hiện trạng nước")
	require.NoError(t, err)
	assert.Equal(t, analysisNeedsDataReply, reply)
}

func TestChatRecordsBothTurns(t *testing.T) {
	sessions := newMemorySession()
	llm := &fakeChatModel{reply: "**chào** mình"}
	svc := newTestChatService(llm, sessions)

	_, err := svc.Chat(context.Background(), "sid-1", "tôm tôi bị đen mang")
	require.NoError(t, err)

	turns := sessions.turns["sid-1"]
	require.Len(t, turns, 2)
	assert.Equal(t, entity.RoleUser, turns[0].Role)
	assert.Equal(t, entity.RoleAssistant, turns[1].Role)
	assert.Contains(t, turns[1].ContentHTML, "<strong>chào</strong>")
}

func TestChatFailureKeepsUserTurn(t *testing.T) {
	sessions := newMemorySession()
	llm := &fakeChatModel{err: errors.New("model down")}
	svc := newTestChatService(llm, sessions)

	_, err := svc.Chat(context.Background(), "sid-1", "tôm tôi bị đen mang")
	require.Error(t, err)

	turns := sessions.turns["sid-1"]
	require.Len(t, turns, 1)
	assert.Equal(t, entity.RoleUser, turns[0].Role)
}

func TestChatEmptyQuestion(t *testing.T) {
	svc := newTestChatService(&fakeChatModel{}, newMemorySession())
	_, err := svc.Chat(context.Background(), "sid-1", "   ")
	assert.ErrorIs(t, err, entity.ErrEmptyQuestion)
}

func TestClearDropsHistoryKeepsReading(t *testing.T) {
	sessions := newMemorySession()
	llm := &fakeChatModel{reply: "dạ"}
	svc := newTestChatService(llm, sessions)

	_, err := svc.Predict(context.Background(), "sid-1", testSample())
	require.NoError(t, err)
	_, err = svc.Chat(context.Background(), "sid-1", "tôm tôi bị đen mang")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), "sid-1"))

	history, err := svc.History(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.NotNil(t, sessions.samples["sid-1"])
}

func TestRenderSafeHTMLStripsScript(t *testing.T) {
	svc := newTestChatService(&fakeChatModel{}, newMemorySession())
	out := svc.renderSafeHTML("chào <script>alert(1)</script> mình")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "chào")
}
