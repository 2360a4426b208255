package scoring

import (
	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/domain"
)

// DKA severity thresholds (JBDS). A value at a threshold belongs to the
// less severe band; the comparisons below are strict on purpose.
const (
	dkaSeverePHBelow          = 7.0
	dkaSevereBicarbonateBelow = 5.0
	dkaModeratePHBelow        = 7.3
	dkaModerateBicarbBelow    = 15.0

	// Blood ketones at or above this level support the DKA diagnosis itself.
	dkaDiagnosticKetonesMmolL = 3.0
)

// DKASeverityParams are the explicit inputs of the DKA severity grading.
// pH is typically within [6.8, 7.8]; values outside that range are graded
// anyway with an advisory.
type DKASeverityParams struct {
	PH               float64 `json:"ph"`
	BicarbonateMmolL float64 `json:"bicarbonate_mmol_l"`
	KetonesMmolL     float64 `json:"ketones_mmol_l"`
}

// DKAResult is the immutable outcome of a DKA severity grading.
type DKAResult struct {
	Severity domain.DKASeverity `json:"severity"`
}

// GradeDKASeverity grades diabetic ketoacidosis from pH and bicarbonate.
// Ketones do not move the grade but confirm the diagnosis; a level below the
// diagnostic threshold produces an advisory.
func (e *Engine) GradeDKASeverity(p DKASeverityParams) DKAResult {
	if p.PH < 6.8 || p.PH > 7.8 {
		e.advise("dka_severity", "ph", p.PH, "pH outside the physiologically typical range")
	}
	if p.KetonesMmolL < dkaDiagnosticKetonesMmolL {
		e.advise("dka_severity", "ketones_mmol_l", p.KetonesMmolL, "blood ketones below the DKA diagnostic threshold")
	}

	var severity domain.DKASeverity
	switch {
	case p.PH < dkaSeverePHBelow || p.BicarbonateMmolL < dkaSevereBicarbonateBelow:
		severity = domain.DKA_SEVERE
	case p.PH < dkaModeratePHBelow || p.BicarbonateMmolL < dkaModerateBicarbBelow:
		severity = domain.DKA_MODERATE
	default:
		severity = domain.DKA_MILD
	}

	e.logger.WithFields(logrus.Fields{
		"ph":       p.PH,
		"severity": severity.String(),
	}).Debug("Graded DKA severity")

	return DKAResult{Severity: severity}
}
