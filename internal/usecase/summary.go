package usecase

import (
	"fmt"
	"strings"

	"shrimp-assist/internal/domain/entity"
)

// renderCompact builds the fact-summary block shared by the analysis and
// advice prompts: station identifiers, core chemistry readings and the
// four model outputs with the derived priority tag.
func renderCompact(sample *entity.WaterSample, pred *entity.PredictionResult) string {
	s := sample
	if s == nil {
		s = &entity.WaterSample{}
	}

	vibText := "Không có"
	vibEst := "Không có"
	envText := "Không có"
	algaeText := "Không có"
	if pred != nil {
		vibText = pred.Task1Text
		vibEst = trimFloat(pred.Task2VibrioEst)
		envText = pred.Task3Text
		algaeText = pred.Task4Text
	}

	lines := []string{
		"DỮ LIỆU AO (tóm tắt)",
		fmt.Sprintf("- Điểm: %s | Xã/Huyện: %s/%s", s.DiemQuanTrac, s.Xa, s.Huyen),
		fmt.Sprintf("- Nhiệt độ: %s | pH: %s | DO: %s", trimFloat(s.NhietDo), trimFloat(s.PH), trimFloat(s.DO)),
		fmt.Sprintf("- Độ mặn: %s | Độ trong: %s | Kiềm: %s", trimFloat(s.DoMan), trimFloat(s.DoTrong), trimFloat(s.DoKiem)),
		fmt.Sprintf("- NO2: %s | NO3: %s | NH4: %s | PO43: %s | COD: %s",
			trimFloat(s.NO2), trimFloat(s.NO3), trimFloat(s.NH4), trimFloat(s.PO43), trimFloat(s.COD)),
		"",
		"KẾT QUẢ MÔ HÌNH (4 TASK)",
		fmt.Sprintf("- Vibrio: %s", vibText),
		fmt.Sprintf("- Vibrio ước lượng: ~%s CFU/ml", vibEst),
		fmt.Sprintf("- Môi trường: %s", envText),
		fmt.Sprintf("- Tảo thức ăn: %s", algaeText),
		fmt.Sprintf("- Mức ưu tiên: %s", pred.Priority()),
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// trimFloat renders a reading without trailing zeros, the way it appears
// on the monitoring sheet.
func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
