package entity

// IntentLabel is the conversational purpose inferred from a question.
type IntentLabel string

const (
	IntentGreet     IntentLabel = "greet"
	IntentAnalysis  IntentLabel = "analysis"
	IntentAdvice    IntentLabel = "advice"
	IntentSymptom   IntentLabel = "symptom"
	IntentKnowledge IntentLabel = "knowledge"
	IntentMeta      IntentLabel = "meta"

	// Only produced by the rule pass. Both are resolved through the
	// language-model fallback before dispatch.
	IntentAmbiguous IntentLabel = "ambiguous"
	IntentUnknown   IntentLabel = "unknown"
)

// FinalIntents is the closed set the fallback classifier may return.
var FinalIntents = map[IntentLabel]bool{
	IntentGreet:     true,
	IntentAnalysis:  true,
	IntentAdvice:    true,
	IntentSymptom:   true,
	IntentKnowledge: true,
	IntentMeta:      true,
}
