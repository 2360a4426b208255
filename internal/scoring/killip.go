package scoring

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
)

// killipBySigns is the explicit total mapping from heart-failure sign
// category to Killip class. Every documented category maps to exactly one
// class; there is deliberately no default entry.
var killipBySigns = map[domain.HeartFailureSigns]domain.KillipClass{
	domain.HF_SIGNS_NONE:              domain.KILLIP_CLASS_I,
	domain.HF_SIGNS_RALES_OR_S3:       domain.KILLIP_CLASS_II,
	domain.HF_SIGNS_PULMONARY_OEDEMA:  domain.KILLIP_CLASS_III,
	domain.HF_SIGNS_CARDIOGENIC_SHOCK: domain.KILLIP_CLASS_IV,
}

// ClassifyKillip maps the qualitative heart-failure sign category onto
// classes I-IV. An unmapped category is an input-construction error at the
// caller, reported as domain.ErrInvalidHeartFailureSigns - the mapping
// itself is total over the documented categories.
func (e *Engine) ClassifyKillip(signs domain.HeartFailureSigns) (domain.KillipClass, error) {
	class, ok := killipBySigns[signs]
	if !ok {
		return "", fmt.Errorf("classify Killip for signs %q: %w", signs, domain.ErrInvalidHeartFailureSigns)
	}
	return class, nil
}
