package scoring

import (
	"github.com/clinical-pathways-server/internal/domain"
)

// GraceParams are the explicit inputs of the GRACE risk score for NSTEMI and
// unstable angina. The full parameter contract is exposed even though the
// formula is not yet computable, so callers can already bind their data.
type GraceParams struct {
	Age                int                `json:"age"`
	HeartRate          int                `json:"heart_rate"`
	SystolicBP         int                `json:"systolic_bp"`
	CreatinineUmolL    float64            `json:"creatinine_umol_l"`
	KillipClass        domain.KillipClass `json:"killip_class"`
	CardiacArrest      bool               `json:"cardiac_arrest"`
	STSegmentDeviation bool               `json:"st_segment_deviation"`
	TroponinRaised     bool               `json:"troponin_raised"`
}

// GraceScore computes the GRACE risk score. The published GRACE model uses
// fitted coefficients that are not part of the guideline text, so this
// always fails with an UnimplementedScoreError; callers must render the
// score as "not available" and never treat the absence as a low score.
func (e *Engine) GraceScore(p GraceParams) (int, error) {
	return 0, &domain.UnimplementedScoreError{Score: "GRACE"}
}
