package entity

// PredictionResult holds the four model outputs for one sample.
// Task1 is Vibrio risk, Task2 the log-scale Vibrio estimate, Task3 pond
// environment suitability, Task4 feed-algae condition.
type PredictionResult struct {
	Task1Label int    `json:"task1_label"`
	Task1Text  string `json:"task1_text"`

	Task2VibrioLog float64 `json:"task2_vibrio_log"`
	Task2VibrioEst float64 `json:"task2_vibrio_est"` // round(exp(log), 2)

	Task3Label int    `json:"task3_label"`
	Task3Text  string `json:"task3_text"`

	Task4Label int    `json:"task4_label"`
	Task4Text  string `json:"task4_text"`
}

// Priority tags referenced by the advice plan tiers.
const (
	PriorityUrgent  = "P1"
	PriorityRoutine = "P2"
)

// Priority derives the attention tier for a prediction. P1 when the Vibrio
// risk is high or the environment is classified unsuitable, else P2.
// Derived from the labels so it cannot drift from the display text.
func (p *PredictionResult) Priority() string {
	if p == nil {
		return PriorityRoutine
	}
	if p.Task1Label == 1 || p.Task3Label == 0 {
		return PriorityUrgent
	}
	return PriorityRoutine
}
