package pipeline

import (
	"fmt"

	"shrimp-assist/internal/domain/entity"
)

// Preprocessor maps a WaterSample onto the fixed-width feature vector the
// task models were trained on. It applies the scaling fitted at training
// time; it never refits anything.
type Preprocessor struct {
	numeric     []numericSpec
	categorical []categoricalSpec
	width       int
}

func newPreprocessor(art preprocessorArtifact) (*Preprocessor, error) {
	p := &Preprocessor{numeric: art.Numeric, categorical: art.Categorical}
	if len(p.numeric) == 0 {
		return nil, loadErr(fmt.Errorf("preprocessor has no numeric features"))
	}
	for _, n := range p.numeric {
		if _, ok := numericFieldReader[n.Name]; !ok {
			return nil, loadErr(fmt.Errorf("unknown numeric feature %q", n.Name))
		}
		if n.Scale == 0 {
			return nil, loadErr(fmt.Errorf("numeric feature %q has zero scale", n.Name))
		}
	}
	for _, c := range p.categorical {
		if _, ok := categoricalFieldReader[c.Name]; !ok {
			return nil, loadErr(fmt.Errorf("unknown categorical feature %q", c.Name))
		}
		if len(c.Scale) != len(c.Categories) {
			return nil, loadErr(fmt.Errorf("categorical feature %q: %d categories but %d scales",
				c.Name, len(c.Categories), len(c.Scale)))
		}
	}
	p.width = len(p.numeric)
	for _, c := range p.categorical {
		p.width += len(c.Categories)
	}
	return p, nil
}

// Width is the length of the produced feature vector.
func (p *Preprocessor) Width() int { return p.width }

// Transform produces the feature vector for one sample. Category values not
// seen at fit time encode as the all-zero "unknown" block rather than
// failing, matching the fitted encoder's ignore-unknown behavior.
func (p *Preprocessor) Transform(sample *entity.WaterSample) ([]float64, error) {
	if sample == nil {
		return nil, &entity.InferenceError{Stage: entity.StageTransform, Err: fmt.Errorf("nil sample")}
	}
	vec := make([]float64, 0, p.width)
	for _, n := range p.numeric {
		v := numericFieldReader[n.Name](sample)
		vec = append(vec, (v-n.Mean)/n.Scale)
	}
	for _, c := range p.categorical {
		v := categoricalFieldReader[c.Name](sample)
		block := make([]float64, len(c.Categories))
		for i, cat := range c.Categories {
			if v == cat {
				block[i] = 1 / c.Scale[i]
				break
			}
		}
		vec = append(vec, block...)
	}
	return vec, nil
}

// Readers from the monitoring-sheet column names to sample fields. An
// artifact naming a column outside these maps was fit on a different
// schema and is rejected at load time.
var numericFieldReader = map[string]func(*entity.WaterSample) float64{
	"NHIET_DO": func(s *entity.WaterSample) float64 { return s.NhietDo },
	"PH":       func(s *entity.WaterSample) float64 { return s.PH },
	"DO":       func(s *entity.WaterSample) float64 { return s.DO },
	"DO_MAN":   func(s *entity.WaterSample) float64 { return s.DoMan },
	"DO_TRONG": func(s *entity.WaterSample) float64 { return s.DoTrong },
	"DO_KIEM":  func(s *entity.WaterSample) float64 { return s.DoKiem },
	"NO2":      func(s *entity.WaterSample) float64 { return s.NO2 },
	"NO3":      func(s *entity.WaterSample) float64 { return s.NO3 },
	"NH4":      func(s *entity.WaterSample) float64 { return s.NH4 },
	"PO43":     func(s *entity.WaterSample) float64 { return s.PO43 },
	"COD":      func(s *entity.WaterSample) float64 { return s.COD },
	"NAM":      func(s *entity.WaterSample) float64 { return float64(s.Nam) },
	"THANG":    func(s *entity.WaterSample) float64 { return float64(s.Thang) },
	"NGAY":     func(s *entity.WaterSample) float64 { return float64(s.Ngay) },
}

var categoricalFieldReader = map[string]func(*entity.WaterSample) string{
	"DIEM_QUAN_TRAC": func(s *entity.WaterSample) string { return s.DiemQuanTrac },
	"XA":             func(s *entity.WaterSample) string { return s.Xa },
	"HUYEN":          func(s *entity.WaterSample) string { return s.Huyen },
}
