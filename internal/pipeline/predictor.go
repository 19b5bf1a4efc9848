// Package pipeline runs the four-task water-quality inference: Vibrio risk,
// Vibrio concentration estimate, environment suitability and feed-algae
// condition, from artifacts fitted offline.
package pipeline

import (
	"fmt"
	"log"
	"math"

	"shrimp-assist/internal/domain/entity"
)

// Human-readable texts for the classifier labels. Labels outside the maps
// render as an explicit undetermined text instead of failing.
var (
	riskText = map[int]string{
		0: "An toàn",
		1: "Nguy cơ",
	}
	envText = map[int]string{
		0: "Môi trường không đạt",
		1: "Môi trường đạt",
	}
	algaeText = map[int]string{
		0: "Điều kiện tảo kém",
		1: "Điều kiện tảo tốt",
	}
)

const undeterminedText = "Không xác định"

func labelText(m map[int]string, label int) string {
	if t, ok := m[label]; ok {
		return t
	}
	return undeterminedText
}

type linearModel struct {
	kind      string
	coef      []float64
	intercept float64
}

func newLinearModel(art modelArtifact, width int) (*linearModel, error) {
	if art.Kind != kindLogistic && art.Kind != kindLinear {
		return nil, loadErr(fmt.Errorf("model %s: unsupported kind %q", art.Task, art.Kind))
	}
	if len(art.Coef) != width {
		return nil, loadErr(fmt.Errorf("model %s: %d coefficients for width-%d vector",
			art.Task, len(art.Coef), width))
	}
	return &linearModel{kind: art.Kind, coef: art.Coef, intercept: art.Intercept}, nil
}

func (m *linearModel) score(vec []float64) float64 {
	s := m.intercept
	for i, w := range m.coef {
		s += w * vec[i]
	}
	return s
}

// classify returns the {0,1} label for a logistic model.
func (m *linearModel) classify(vec []float64) int {
	if m.score(vec) > 0 {
		return 1
	}
	return 0
}

// Predictor applies the four independently fitted models to one
// preprocessed sample. Construct once per process with Load; the loaded
// artifacts are read-only and safe for concurrent Predict calls.
type Predictor struct {
	pre   *Preprocessor
	task1 *linearModel // Vibrio risk classifier
	task2 *linearModel // log-scale Vibrio regressor
	task3 *linearModel // environment classifier
	task4 *linearModel // feed-algae classifier
}

// Load reads all artifacts from dir. Any missing or malformed artifact is
// fatal to construction.
func Load(dir string) (*Predictor, error) {
	log.Printf("[PIPELINE] loading preprocessor and task models from %s", dir)

	var preArt preprocessorArtifact
	if err := readArtifact(dir, preprocessorFile, &preArt); err != nil {
		return nil, err
	}
	pre, err := newPreprocessor(preArt)
	if err != nil {
		return nil, err
	}

	models := make([]*linearModel, 4)
	kinds := []string{kindLogistic, kindLinear, kindLogistic, kindLogistic}
	for i, name := range []string{modelTask1File, modelTask2File, modelTask3File, modelTask4File} {
		var art modelArtifact
		if err := readArtifact(dir, name, &art); err != nil {
			return nil, err
		}
		if art.Kind != kinds[i] {
			return nil, loadErr(fmt.Errorf("%s: expected kind %q, got %q", name, kinds[i], art.Kind))
		}
		m, err := newLinearModel(art, pre.Width())
		if err != nil {
			return nil, err
		}
		models[i] = m
	}

	return &Predictor{pre: pre, task1: models[0], task2: models[1], task3: models[2], task4: models[3]}, nil
}

// Predict runs the full four-task inference for one sample.
func (p *Predictor) Predict(sample *entity.WaterSample) (*entity.PredictionResult, error) {
	vec, err := p.pre.Transform(sample)
	if err != nil {
		return nil, err
	}

	y1 := p.task1.classify(vec)
	y2 := round3(p.task2.score(vec))
	y3 := p.task3.classify(vec)
	y4 := p.task4.classify(vec)

	// The estimate is recomputed from the reported log value, so the two
	// stay consistent wherever they are shown together.
	est := round2(math.Exp(y2))
	if math.IsInf(est, 0) || math.IsNaN(est) {
		return nil, &entity.InferenceError{
			Stage: entity.StagePredict,
			Err:   fmt.Errorf("vibrio estimate overflow for log value %v", y2),
		}
	}

	return &entity.PredictionResult{
		Task1Label: y1,
		Task1Text:  labelText(riskText, y1),

		Task2VibrioLog: y2,
		Task2VibrioEst: est,

		Task3Label: y3,
		Task3Text:  labelText(envText, y3),

		Task4Label: y4,
		Task4Text:  labelText(algaeText, y4),
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
