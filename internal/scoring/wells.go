package scoring

import (
	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/domain"
)

// Point weights for the Wells pulmonary embolism score. Guideline-defined
// constants, not computed.
const (
	wellsPointsClinicalSignsDVT      = 3.0
	wellsPointsPEMostLikelyDiagnosis = 3.0
	wellsPointsTachycardia           = 1.5
	wellsPointsRecentImmobilisation  = 1.5
	wellsPointsPreviousVTE           = 1.5
	wellsPointsHaemoptysis           = 1.0
	wellsPointsMalignancy            = 1.0

	// Heart rate above this threshold scores the tachycardia points.
	wellsTachycardiaThresholdBPM = 100
)

// Classification thresholds for the three-band Wells PE interpretation. A
// score exactly at a threshold belongs to the higher band.
const (
	WellsHighThreshold     = 6.0
	WellsModerateThreshold = 2.0
)

// WellsPEParams are the explicit inputs of the Wells score for suspected
// pulmonary embolism. Each field is one documented risk factor.
type WellsPEParams struct {
	ClinicalSignsDVT              bool `json:"clinical_signs_dvt"`
	PEMostLikelyDiagnosis         bool `json:"pe_most_likely_diagnosis"`
	HeartRate                     int  `json:"heart_rate"`
	RecentImmobilisationOrSurgery bool `json:"recent_immobilisation_or_surgery"` // within the last 4 weeks
	PreviousDVTOrPE               bool `json:"previous_dvt_or_pe"`
	Haemoptysis                   bool `json:"haemoptysis"`
	Malignancy                    bool `json:"malignancy"`
}

// WellsResult is the immutable outcome of a Wells PE evaluation.
type WellsResult struct {
	Score float64            `json:"score"`
	Risk  domain.WellsRiskPE `json:"risk"`
}

// WellsScorePE sums the fixed point weights of the present risk factors and
// classifies the total into one of the three pre-test probability bands.
func (e *Engine) WellsScorePE(p WellsPEParams) WellsResult {
	if p.HeartRate < 0 {
		e.advise("wells_pe", "heart_rate", p.HeartRate, "physiologically implausible heart rate")
	}

	score := 0.0
	if p.ClinicalSignsDVT {
		score += wellsPointsClinicalSignsDVT
	}
	if p.PEMostLikelyDiagnosis {
		score += wellsPointsPEMostLikelyDiagnosis
	}
	if p.HeartRate > wellsTachycardiaThresholdBPM {
		score += wellsPointsTachycardia
	}
	if p.RecentImmobilisationOrSurgery {
		score += wellsPointsRecentImmobilisation
	}
	if p.PreviousDVTOrPE {
		score += wellsPointsPreviousVTE
	}
	if p.Haemoptysis {
		score += wellsPointsHaemoptysis
	}
	if p.Malignancy {
		score += wellsPointsMalignancy
	}

	result := WellsResult{Score: score, Risk: InterpretWellsScorePE(score)}

	e.logger.WithFields(logrus.Fields{
		"score": result.Score,
		"risk":  result.Risk.String(),
	}).Debug("Computed Wells PE score")

	return result
}

// InterpretWellsScorePE maps a raw Wells score onto the three risk bands.
// Boundary scores resolve to the higher band.
func InterpretWellsScorePE(score float64) domain.WellsRiskPE {
	switch {
	case score >= WellsHighThreshold:
		return domain.PE_LIKELY_HIGH
	case score >= WellsModerateThreshold:
		return domain.PE_LIKELY_MODERATE
	default:
		return domain.PE_UNLIKELY
	}
}
