// Package usecase holds the conversational core: intent classification,
// per-intent response composition and the chat-session service around
// them.
package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"shrimp-assist/internal/domain/entity"
	"shrimp-assist/internal/domain/repository"
)

// ShrimpAgent answers farmer questions: it classifies the question into an
// intent and composes the reply for that intent, reading the submitted
// water sample and prediction as context where the intent needs them.
type ShrimpAgent struct {
	llm        repository.ChatModel
	retriever  repository.Retriever // nil when no document corpus is loaded
	classifier *IntentClassifier
	composers  map[entity.IntentLabel]composerFunc
	pick       func(n int) int
}

type composerFunc func(ctx context.Context, q *query) (string, error)

// query is the per-call context a composer branch reads.
type query struct {
	question string
	sample   *entity.WaterSample
	pred     *entity.PredictionResult
	hasData  bool
	hasPred  bool
}

// NewShrimpAgent wires the agent. retriever may be nil; every branch then
// composes without augmentation.
func NewShrimpAgent(llm repository.ChatModel, retriever repository.Retriever) *ShrimpAgent {
	a := &ShrimpAgent{
		llm:        llm,
		retriever:  retriever,
		classifier: NewIntentClassifier(llm),
		pick:       rand.Intn,
	}
	a.composers = map[entity.IntentLabel]composerFunc{
		entity.IntentGreet:     a.composeGreet,
		entity.IntentMeta:      a.composeMeta,
		entity.IntentAnalysis:  a.composeAnalysis,
		entity.IntentAdvice:    a.composeAdvice,
		entity.IntentSymptom:   a.composeSymptom,
		entity.IntentKnowledge: a.composeKnowledge,
	}
	return a
}

// Answer produces the reply for one question. sample and pred may be nil;
// the intents that need them answer with a fixed "submit a reading first"
// message instead. A language-model failure on the final reply propagates
// to the caller.
func (a *ShrimpAgent) Answer(ctx context.Context, question string, sample *entity.WaterSample, pred *entity.PredictionResult) (string, error) {
	q := &query{
		question: question,
		sample:   sample,
		pred:     pred,
		hasData:  sample.HasChemistry(),
		hasPred:  pred != nil,
	}

	it := a.classifier.Classify(ctx, question, q.hasData, q.hasPred)
	log.Printf("[AGENT] intent=%s has_data=%v has_pred=%v", it, q.hasData, q.hasPred)

	compose, ok := a.composers[it]
	if !ok {
		compose = a.composeKnowledge
	}
	return compose(ctx, q)
}

func (a *ShrimpAgent) composeGreet(_ context.Context, _ *query) (string, error) {
	return greetReplies[a.pick(len(greetReplies))], nil
}

func (a *ShrimpAgent) composeMeta(_ context.Context, _ *query) (string, error) {
	return metaReplies[a.pick(len(metaReplies))], nil
}

func (a *ShrimpAgent) composeSymptom(ctx context.Context, q *query) (string, error) {
	return a.generate(ctx, symptomSystemPrompt, fmt.Sprintf(symptomUserTemplate, q.question))
}

func (a *ShrimpAgent) composeAnalysis(ctx context.Context, q *query) (string, error) {
	if !q.hasData || !q.hasPred {
		return analysisNeedsDataReply, nil
	}
	compact := renderCompact(q.sample, q.pred)
	return a.generate(ctx, analysisSystemPrompt, fmt.Sprintf(analysisUserTemplate, compact, q.question))
}

func (a *ShrimpAgent) composeAdvice(ctx context.Context, q *query) (string, error) {
	if !q.hasData || !q.hasPred {
		return adviceNeedsDataReply, nil
	}
	compact := renderCompact(q.sample, q.pred)
	snippet := a.retrieveSnippet(ctx)
	return a.generate(ctx, adviceSystemPrompt, fmt.Sprintf(adviceUserTemplate, compact, snippet, q.question))
}

func (a *ShrimpAgent) composeKnowledge(ctx context.Context, q *query) (string, error) {
	return a.generate(ctx, knowledgeSystemPrompt, fmt.Sprintf(knowledgeUserTemplate, q.question))
}

// retrieveSnippet queries the document corpus for the advice branch.
// Retrieval is best effort: an absent retriever, a failed query and an
// empty corpus all fold into the same placeholder.
func (a *ShrimpAgent) retrieveSnippet(ctx context.Context) string {
	if a.retriever == nil {
		return noSnippetPlaceholder
	}
	snippet, err := a.retriever.Query(ctx, adviceRetrievalQuery)
	if err != nil {
		log.Printf("[AGENT] retrieval failed, composing without augmentation: %v", err)
		return noSnippetPlaceholder
	}
	if snippet == "" {
		return noSnippetPlaceholder
	}
	return snippet
}

// generate makes the one language-model call of a composer branch and
// localizes the reply. Errors propagate unchanged; the chat layer decides
// the user-visible fallback.
func (a *ShrimpAgent) generate(ctx context.Context, system, user string) (string, error) {
	out, err := a.llm.Invoke(ctx, []entity.Message{
		{Role: entity.RoleSystem, Content: system},
		{Role: entity.RoleUser, Content: user},
	})
	if err != nil {
		return "", fmt.Errorf("reply generation failed: %w", err)
	}
	if out == "" {
		return "", entity.ErrEmptyReply
	}
	return Localize(out), nil
}
