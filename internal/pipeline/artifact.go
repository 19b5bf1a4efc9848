package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shrimp-assist/internal/domain/entity"
)

// Artifact file names inside the artifact directory. These are JSON exports
// of the fitted preprocessor and the four task models.
const (
	preprocessorFile = "preprocessor.json"
	modelTask1File   = "model_task1.json"
	modelTask2File   = "model_task2.json"
	modelTask3File   = "model_task3.json"
	modelTask4File   = "model_task4.json"
)

// numericSpec holds the fitted scaling statistics for one numeric column.
// The artifact also exports the fit-time median, but imputation is not
// applied here: samples reach Transform with every numeric field set, so
// only mean and scale are read.
type numericSpec struct {
	Name   string  `json:"name"`
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Scale  float64 `json:"scale"`
}

// categoricalSpec holds the category vocabulary seen at fit time for one
// categorical column, plus the per-one-hot-column scale.
type categoricalSpec struct {
	Name       string    `json:"name"`
	Categories []string  `json:"categories"`
	Scale      []float64 `json:"scale"`
}

// preprocessorArtifact mirrors the fitted column transformer: the numeric
// block comes first in the output vector, then one one-hot block per
// categorical column, in file order.
type preprocessorArtifact struct {
	Numeric     []numericSpec     `json:"numeric"`
	Categorical []categoricalSpec `json:"categorical"`
}

// Model kinds.
const (
	kindLogistic = "logistic"
	kindLinear   = "linear"
)

// modelArtifact is one fitted linear model: a weight per feature-vector
// column and an intercept. Logistic models emit the {0,1} class label,
// linear models the raw regression value.
type modelArtifact struct {
	Task      string    `json:"task"`
	Kind      string    `json:"kind"`
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func loadErr(err error) error {
	return &entity.InferenceError{Stage: entity.StageLoad, Err: err}
}

func readArtifact(dir, name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return loadErr(err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return loadErr(fmt.Errorf("%s: %w", name, err))
	}
	return nil
}
