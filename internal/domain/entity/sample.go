package entity

// WaterSample is one submitted water-chemistry reading. Field names follow
// the monitoring-sheet column names used by the provincial stations.
// A sample is immutable once submitted; the core only reads it.
type WaterSample struct {
	DiemQuanTrac string `json:"DIEM_QUAN_TRAC"` // observation point
	Xa           string `json:"XA"`             // commune
	Huyen        string `json:"HUYEN"`          // district

	NhietDo float64 `json:"NHIET_DO"` // temperature, °C
	PH      float64 `json:"PH"`
	DO      float64 `json:"DO"`       // dissolved oxygen, mg/l
	DoMan   float64 `json:"DO_MAN"`   // salinity, ‰
	DoTrong float64 `json:"DO_TRONG"` // transparency, cm
	DoKiem  float64 `json:"DO_KIEM"`  // alkalinity, mg/l
	NO2     float64 `json:"NO2"`
	NO3     float64 `json:"NO3"`
	NH4     float64 `json:"NH4"`
	PO43    float64 `json:"PO43"`
	COD     float64 `json:"COD"`

	Nam   int `json:"NAM"`
	Thang int `json:"THANG"`
	Ngay  int `json:"NGAY"`
}

// HasChemistry reports whether the sample carries any chemistry reading.
// A sample with every chemistry field zero counts as "no data", which gates
// the analysis and advice intents.
func (w *WaterSample) HasChemistry() bool {
	if w == nil {
		return false
	}
	values := []float64{
		w.NhietDo, w.PH, w.DO, w.DoMan, w.DoTrong, w.DoKiem,
		w.NO2, w.NO3, w.NH4, w.PO43, w.COD,
	}
	for _, v := range values {
		if v != 0 {
			return true
		}
	}
	return false
}
