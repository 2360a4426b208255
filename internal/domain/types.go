// Package domain contains the core clinical entities and closed enumerations
// used by the scoring engine, the decision-graph model and the condition
// builders. Classification outputs and graph edge keys reference the same
// canonical names defined here, so a branch key produced by a builder and a
// classification produced by a scoring function compare equal by plain string
// equality.
//
// The enumerations follow NICE guideline vocabulary (NICE: National Institute
// for Health and Care Excellence, UK).
package domain

import "errors"

// Sex represents patient sex for guideline criteria that depend on it.
type Sex string

const (
	MALE   Sex = "MALE"
	FEMALE Sex = "FEMALE"
)

// ACSType represents the working diagnosis within the acute coronary
// syndrome umbrella.
type ACSType string

const (
	STEMI           ACSType = "STEMI"
	NSTEMI          ACSType = "NSTEMI"
	UNSTABLE_ANGINA ACSType = "UNSTABLE_ANGINA"
)

// KillipClass is the ordinal heart-failure classification after myocardial
// infarction. It is produced by scoring.ClassifyKillip and used as an edge
// discriminant in cardiology plans.
type KillipClass string

const (
	KILLIP_CLASS_I   KillipClass = "CLASS_I"
	KILLIP_CLASS_II  KillipClass = "CLASS_II"
	KILLIP_CLASS_III KillipClass = "CLASS_III"
	KILLIP_CLASS_IV  KillipClass = "CLASS_IV"
)

// HeartFailureSigns is the qualitative sign category that maps onto a Killip
// class. The mapping is total: every category corresponds to exactly one
// class, and an unlisted category is an input-construction error at the
// caller.
type HeartFailureSigns string

const (
	HF_SIGNS_NONE              HeartFailureSigns = "NONE"
	HF_SIGNS_RALES_OR_S3       HeartFailureSigns = "RALES_OR_S3"
	HF_SIGNS_PULMONARY_OEDEMA  HeartFailureSigns = "PULMONARY_OEDEMA"
	HF_SIGNS_CARDIOGENIC_SHOCK HeartFailureSigns = "CARDIOGENIC_SHOCK"
)

// WellsRiskPE is the three-band pre-test probability classification for
// pulmonary embolism derived from the two-level Wells score.
type WellsRiskPE string

const (
	PE_UNLIKELY        WellsRiskPE = "PE_UNLIKELY"
	PE_LIKELY_MODERATE WellsRiskPE = "PE_LIKELY_MODERATE"
	PE_LIKELY_HIGH     WellsRiskPE = "PE_LIKELY_HIGH"
)

// COPDExacerbationSeverity grades an acute exacerbation of COPD.
type COPDExacerbationSeverity string

const (
	COPD_MILD             COPDExacerbationSeverity = "MILD"
	COPD_MODERATE         COPDExacerbationSeverity = "MODERATE"
	COPD_SEVERE           COPDExacerbationSeverity = "SEVERE"
	COPD_LIFE_THREATENING COPDExacerbationSeverity = "LIFE_THREATENING"
)

// DKASeverity grades diabetic ketoacidosis from pH and bicarbonate.
type DKASeverity string

const (
	DKA_MILD     DKASeverity = "MILD"
	DKA_MODERATE DKASeverity = "MODERATE"
	DKA_SEVERE   DKASeverity = "SEVERE"
)

// RAActivityLevel is the disease-activity band derived from a DAS28 score.
type RAActivityLevel string

const (
	RA_ACTIVITY_LOW      RAActivityLevel = "LOW"
	RA_ACTIVITY_MODERATE RAActivityLevel = "MODERATE"
	RA_ACTIVITY_HIGH     RAActivityLevel = "HIGH"
)

// UCExtent describes the anatomical extent of ulcerative colitis.
type UCExtent string

const (
	PROCTITIS          UCExtent = "PROCTITIS"
	PROCTOSIGMOIDITIS  UCExtent = "PROCTOSIGMOIDITIS"
	LEFT_SIDED_COLITIS UCExtent = "LEFT_SIDED_COLITIS"
	EXTENSIVE_COLITIS  UCExtent = "EXTENSIVE_COLITIS"
	PANCOLITIS         UCExtent = "PANCOLITIS"
)

// UCSeverity grades ulcerative colitis activity (Truelove & Witts).
type UCSeverity string

const (
	UC_MILD     UCSeverity = "MILD"
	UC_MODERATE UCSeverity = "MODERATE"
	UC_SEVERE   UCSeverity = "SEVERE"
)

// StrokeType distinguishes ischaemic from haemorrhagic stroke.
type StrokeType string

const (
	ISCHAEMIC    StrokeType = "ISCHAEMIC"
	HAEMORRHAGIC StrokeType = "HAEMORRHAGIC"
)

// ErrInvalidHeartFailureSigns rejects a value outside the HeartFailureSigns
// enumeration. Other enum inputs are validated at the parameter boundary and
// reported as InvalidParameterError directly.
var ErrInvalidHeartFailureSigns = errors.New("invalid heart failure sign category")

// IsValid reports whether the value is a member of the ACSType enumeration.
func (t ACSType) IsValid() bool {
	switch t {
	case STEMI, NSTEMI, UNSTABLE_ANGINA:
		return true
	default:
		return false
	}
}

// String returns the canonical name, which is also the edge-key form.
func (t ACSType) String() string { return string(t) }

// IsValid reports whether the value is one of classes I-IV.
func (k KillipClass) IsValid() bool {
	switch k {
	case KILLIP_CLASS_I, KILLIP_CLASS_II, KILLIP_CLASS_III, KILLIP_CLASS_IV:
		return true
	default:
		return false
	}
}

// String returns the canonical name, which is also the edge-key form.
func (k KillipClass) String() string { return string(k) }

// Description returns a clinician-readable description of the class for
// rendering and reports.
func (k KillipClass) Description() string {
	switch k {
	case KILLIP_CLASS_I:
		return "Class I - No clinical signs of heart failure"
	case KILLIP_CLASS_II:
		return "Class II - Rales in the lungs and/or S3 gallop"
	case KILLIP_CLASS_III:
		return "Class III - Frank acute pulmonary oedema"
	case KILLIP_CLASS_IV:
		return "Class IV - Cardiogenic shock"
	default:
		return "Unknown Killip class"
	}
}

// IsValid reports whether the value is a documented sign category.
func (h HeartFailureSigns) IsValid() bool {
	switch h {
	case HF_SIGNS_NONE, HF_SIGNS_RALES_OR_S3, HF_SIGNS_PULMONARY_OEDEMA, HF_SIGNS_CARDIOGENIC_SHOCK:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (h HeartFailureSigns) String() string { return string(h) }

// IsValid reports whether the value is one of the three Wells PE bands.
func (r WellsRiskPE) IsValid() bool {
	switch r {
	case PE_UNLIKELY, PE_LIKELY_MODERATE, PE_LIKELY_HIGH:
		return true
	default:
		return false
	}
}

// String returns the canonical name, which is also the edge-key form.
func (r WellsRiskPE) String() string { return string(r) }

// IsValid reports whether the value is a member of the enumeration.
func (s COPDExacerbationSeverity) IsValid() bool {
	switch s {
	case COPD_MILD, COPD_MODERATE, COPD_SEVERE, COPD_LIFE_THREATENING:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (s COPDExacerbationSeverity) String() string { return string(s) }

// IsValid reports whether the value is a member of the enumeration.
func (s DKASeverity) IsValid() bool {
	switch s {
	case DKA_MILD, DKA_MODERATE, DKA_SEVERE:
		return true
	default:
		return false
	}
}

// String returns the canonical name, which is also the edge-key form.
func (s DKASeverity) String() string { return string(s) }

// Description returns a clinician-readable description of the grade.
func (s DKASeverity) Description() string {
	switch s {
	case DKA_MILD:
		return "Mild DKA - pH >= 7.3 and bicarbonate >= 15 mmol/L"
	case DKA_MODERATE:
		return "Moderate DKA - pH < 7.3 or bicarbonate < 15 mmol/L"
	case DKA_SEVERE:
		return "Severe DKA - pH < 7.0 or bicarbonate < 5 mmol/L"
	default:
		return "Unknown DKA severity"
	}
}

// IsValid reports whether the value is a member of the enumeration.
func (a RAActivityLevel) IsValid() bool {
	switch a {
	case RA_ACTIVITY_LOW, RA_ACTIVITY_MODERATE, RA_ACTIVITY_HIGH:
		return true
	default:
		return false
	}
}

// String returns the canonical name, which is also the edge-key form.
func (a RAActivityLevel) String() string { return string(a) }

// IsValid reports whether the value is a member of the enumeration.
func (e UCExtent) IsValid() bool {
	switch e {
	case PROCTITIS, PROCTOSIGMOIDITIS, LEFT_SIDED_COLITIS, EXTENSIVE_COLITIS, PANCOLITIS:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (e UCExtent) String() string { return string(e) }

// IsValid reports whether the value is a member of the enumeration.
func (s UCSeverity) IsValid() bool {
	switch s {
	case UC_MILD, UC_MODERATE, UC_SEVERE:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (s UCSeverity) String() string { return string(s) }

// IsValid reports whether the value is a member of the enumeration.
func (t StrokeType) IsValid() bool {
	switch t {
	case ISCHAEMIC, HAEMORRHAGIC:
		return true
	default:
		return false
	}
}

// String returns the canonical name.
func (t StrokeType) String() string { return string(t) }
