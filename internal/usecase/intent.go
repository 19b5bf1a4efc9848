package usecase

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"shrimp-assist/internal/domain/entity"
	"shrimp-assist/internal/domain/repository"
)

func normText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(t string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func isGreeting(t string) bool {
	for _, p := range greetingPrefixes {
		if t == p || strings.HasPrefix(t, p+" ") {
			return true
		}
	}
	return false
}

func isSymptomQuestion(t string) bool {
	return containsAny(t, shrimpTokens) && containsAny(t, symptomKeywords)
}

// RuleIntent is the deterministic single-pass classifier. It may return
// IntentAmbiguous or IntentUnknown; those are resolved by the
// language-model fallback before dispatch.
func RuleIntent(question string) entity.IntentLabel {
	t := normText(question)
	if t == "" {
		return entity.IntentUnknown
	}
	if isGreeting(t) {
		return entity.IntentGreet
	}
	if isSymptomQuestion(t) {
		return entity.IntentSymptom
	}
	if containsAny(t, metaKeywords) {
		return entity.IntentMeta
	}
	a := containsAny(t, analysisKeywords)
	b := containsAny(t, adviceKeywords)
	switch {
	case a && !b:
		return entity.IntentAnalysis
	case b && !a:
		return entity.IntentAdvice
	case a && b:
		return entity.IntentAmbiguous
	}
	return entity.IntentUnknown
}

// IntentClassifier resolves a question into a final intent: deterministic
// rules first, language-model fallback for whatever the rules cannot
// decide. It has no side effects beyond the possible model call.
type IntentClassifier struct {
	llm repository.ChatModel
}

func NewIntentClassifier(llm repository.ChatModel) *IntentClassifier {
	return &IntentClassifier{llm: llm}
}

const intentFallbackSystem = `Bạn là bộ phân loại ý định hội thoại cho chatbot nuôi tôm (miền Tây).
Chỉ trả về JSON 1 dòng, không thêm chữ khác.
Các nhãn:
- greet
- analysis (phân tích hiện trạng nước, không giải pháp)
- advice (tư vấn xử lý theo nước/ao)
- symptom (dấu hiệu tôm bất thường/bệnh)
- knowledge (kiến thức chung: tảo, pH, DO, Vibrio... không cần dữ liệu)
- meta (hỏi cách dùng/giới thiệu bot)`

type intentFallbackInput struct {
	Question      string `json:"question"`
	HasWaterData  bool   `json:"has_water_data"`
	HasPrediction bool   `json:"has_prediction"`
}

type intentFallbackOutput struct {
	Intent string `json:"intent"`
}

// Classify runs the rule pass and, for ambiguous/unknown questions, the
// model fallback. Fallback failures of any kind default to knowledge and
// are never propagated.
func (c *IntentClassifier) Classify(ctx context.Context, question string, hasData, hasPred bool) entity.IntentLabel {
	it := RuleIntent(question)
	if it != entity.IntentAmbiguous && it != entity.IntentUnknown {
		return it
	}
	return c.fallback(ctx, question, hasData, hasPred)
}

func (c *IntentClassifier) fallback(ctx context.Context, question string, hasData, hasPred bool) entity.IntentLabel {
	payload, err := json.Marshal(intentFallbackInput{
		Question:      question,
		HasWaterData:  hasData,
		HasPrediction: hasPred,
	})
	if err != nil {
		return entity.IntentKnowledge
	}

	out, err := c.llm.Invoke(ctx, []entity.Message{
		{Role: entity.RoleSystem, Content: intentFallbackSystem},
		{Role: entity.RoleUser, Content: string(payload)},
	})
	if err != nil {
		log.Printf("[INTENT] fallback call failed, defaulting to knowledge: %v", err)
		return entity.IntentKnowledge
	}

	var parsed intentFallbackOutput
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &parsed); err != nil {
		return entity.IntentKnowledge
	}
	it := entity.IntentLabel(normText(parsed.Intent))
	if !entity.FinalIntents[it] {
		return entity.IntentKnowledge
	}
	return it
}
