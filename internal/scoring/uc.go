package scoring

import (
	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/domain"
)

// Truelove & Witts criteria thresholds for severe ulcerative colitis.
const (
	ucSevereStoolsPerDay     = 6
	ucSevereTemperatureAbove = 37.8
	ucSevereHeartRateAbove   = 90
	ucSevereHaemoglobinBelow = 10.5
	ucSevereESRAbove         = 30

	// Meeting this many severe criteria grades the flare as severe.
	ucSevereCriteriaRequired = 2

	// More than this many stools per day without severe criteria grades
	// the flare as moderate.
	ucModerateStoolsPerDay = 4
)

// UCSeverityParams are the explicit inputs of the simplified
// Truelove & Witts assessment.
type UCSeverityParams struct {
	StoolsPerDay       int     `json:"stools_per_day"`
	BloodInStool       bool    `json:"blood_in_stool"`
	TemperatureCelsius float64 `json:"temperature_celsius"`
	HeartRate          int     `json:"heart_rate"`
	HaemoglobinGdL     float64 `json:"haemoglobin_g_dl"`
	ESRMmHr            int     `json:"esr_mm_hr"`
}

// UCResult is the immutable outcome of a UC severity assessment.
type UCResult struct {
	Severity       domain.UCSeverity `json:"severity"`
	SevereCriteria int               `json:"severe_criteria"` // criteria met, out of six
}

// AssessUCSeverity grades a flare of ulcerative colitis using the simplified
// Truelove & Witts criteria: count the severe criteria met, then band.
func (e *Engine) AssessUCSeverity(p UCSeverityParams) UCResult {
	if p.StoolsPerDay < 0 {
		e.advise("uc_severity", "stools_per_day", p.StoolsPerDay, "negative stool frequency")
	}
	if p.HeartRate < 0 {
		e.advise("uc_severity", "heart_rate", p.HeartRate, "physiologically implausible heart rate")
	}

	criteria := 0
	if p.StoolsPerDay >= ucSevereStoolsPerDay {
		criteria++
	}
	if p.BloodInStool {
		criteria++
	}
	if p.TemperatureCelsius > ucSevereTemperatureAbove {
		criteria++
	}
	if p.HeartRate > ucSevereHeartRateAbove {
		criteria++
	}
	if p.HaemoglobinGdL < ucSevereHaemoglobinBelow {
		criteria++
	}
	if p.ESRMmHr > ucSevereESRAbove {
		criteria++
	}

	var severity domain.UCSeverity
	switch {
	case criteria >= ucSevereCriteriaRequired:
		severity = domain.UC_SEVERE
	case p.StoolsPerDay > ucModerateStoolsPerDay:
		severity = domain.UC_MODERATE
	default:
		severity = domain.UC_MILD
	}

	e.logger.WithFields(logrus.Fields{
		"severe_criteria": criteria,
		"severity":        severity.String(),
	}).Debug("Assessed UC severity")

	return UCResult{Severity: severity, SevereCriteria: criteria}
}
