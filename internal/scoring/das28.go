package scoring

import (
	"github.com/clinical-pathways-server/internal/domain"
)

// DAS28 interpretation thresholds. A score exactly at a threshold belongs to
// the lower activity band, per the published cut-offs (<= 3.2 low,
// <= 5.1 moderate).
const (
	das28LowActivityMax      = 3.2
	das28ModerateActivityMax = 5.1
)

// DAS28Params are the explicit inputs of the DAS28 composite disease
// activity score for rheumatoid arthritis. The calculation combines square
// roots of the joint counts, the natural logarithm of the ESR and a weighted
// visual-analogue term.
type DAS28Params struct {
	TenderJointCount28  int     `json:"tender_joint_count_28"`
	SwollenJointCount28 int     `json:"swollen_joint_count_28"`
	ESRMmHr             float64 `json:"esr_mm_hr"`
	PatientGlobalVAS    int     `json:"patient_global_vas"` // 0-100 mm
}

// CalculateDAS28 computes the DAS28 composite score. The weighting
// coefficients are not specified by the guideline text this engine encodes,
// so the call always fails with an UnimplementedScoreError - callers must
// not confuse the absence of a score with remission.
func (e *Engine) CalculateDAS28(p DAS28Params) (float64, error) {
	return 0, &domain.UnimplementedScoreError{Score: "DAS28"}
}

// InterpretDAS28 maps an externally supplied DAS28 score onto the three
// disease-activity bands used as management-plan discriminants.
func InterpretDAS28(score float64) domain.RAActivityLevel {
	switch {
	case score <= das28LowActivityMax:
		return domain.RA_ACTIVITY_LOW
	case score <= das28ModerateActivityMax:
		return domain.RA_ACTIVITY_MODERATE
	default:
		return domain.RA_ACTIVITY_HIGH
	}
}
