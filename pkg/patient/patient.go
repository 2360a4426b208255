// Package patient provides an optional staging aggregate for callers that
// collect clinical values incrementally before invoking a condition
// builder. No builder or scoring function accepts this type: the caller
// destructures it into the explicit named parameters each call requires.
// Keeping the aggregate outside the decision core makes every
// computation's data dependencies visible at the call boundary.
package patient

import "github.com/clinical-pathways-server/internal/domain"

// Patient is a mutable record of whatever has been measured or asked so
// far. Pointer fields distinguish "not recorded" from a recorded zero.
type Patient struct {
	// Demographics
	Age        *int        `json:"age,omitempty"`
	Sex        *domain.Sex `json:"sex,omitempty"`
	WeightKg   *float64    `json:"weight_kg,omitempty"`
	IsPregnant *bool       `json:"is_pregnant,omitempty"`

	// History and clinical state
	Smoker           *bool `json:"smoker,omitempty"`
	Hypertension     *bool `json:"hypertension,omitempty"`
	Diabetes         *bool `json:"diabetes,omitempty"`
	HeartFailure     *bool `json:"heart_failure,omitempty"`
	ActiveInfection  *bool `json:"active_infection,omitempty"`
	Malignancy       *bool `json:"malignancy,omitempty"`
	RenalImpaired    *bool `json:"renal_impaired,omitempty"`
	HighBleedingRisk *bool `json:"high_bleeding_risk,omitempty"`

	// ACS
	ChestPainSuspiciousACS *bool    `json:"chest_pain_suspicious_acs,omitempty"`
	SymptomOnsetHoursACS   *float64 `json:"symptom_onset_hours_acs,omitempty"`

	// PE
	ClinicalSignsDVT              *bool `json:"clinical_signs_dvt,omitempty"`
	PEMostLikelyDiagnosis         *bool `json:"pe_most_likely_diagnosis,omitempty"`
	RecentImmobilisationOrSurgery *bool `json:"recent_immobilisation_or_surgery,omitempty"`
	PreviousDVTOrPE               *bool `json:"previous_dvt_or_pe,omitempty"`
	Haemoptysis                   *bool `json:"haemoptysis,omitempty"`

	// COPD
	KnownCOPD      *bool `json:"known_copd,omitempty"`
	SputumPurulent *bool `json:"sputum_purulent,omitempty"`

	// RA
	DAS28Score   *float64 `json:"das28_score,omitempty"`
	FailedDMARDs *int     `json:"failed_dmards,omitempty"`
	ActiveTB     *bool    `json:"active_tb,omitempty"`

	// UC
	UCExtent   *domain.UCExtent   `json:"uc_extent,omitempty"`
	UCSeverity *domain.UCSeverity `json:"uc_severity,omitempty"`

	// Stroke
	StrokeOnsetHours      *float64 `json:"stroke_onset_hours,omitempty"`
	NIHSSScore            *int     `json:"nihss_score,omitempty"`
	TargetVesselOcclusion *bool    `json:"target_vessel_occlusion,omitempty"`

	// Vitals
	HeartRate          *int                      `json:"heart_rate,omitempty"`
	SystolicBP         *int                      `json:"systolic_bp,omitempty"`
	DiastolicBP        *int                      `json:"diastolic_bp,omitempty"`
	RespiratoryRate    *int                      `json:"respiratory_rate,omitempty"`
	OxygenSaturation   *float64                  `json:"oxygen_saturation,omitempty"`
	TemperatureCelsius *float64                  `json:"temperature_celsius,omitempty"`
	GCS                *int                      `json:"gcs,omitempty"`
	HeartFailureSigns  *domain.HeartFailureSigns `json:"heart_failure_signs,omitempty"`
	CardiacArrest      *bool                     `json:"cardiac_arrest,omitempty"`

	// Labs
	TroponinRaised    *bool    `json:"troponin_raised,omitempty"`
	CreatinineUmolL   *float64 `json:"creatinine_umol_l,omitempty"`
	PotassiumMmolL    *float64 `json:"potassium_mmol_l,omitempty"`
	BloodGlucoseMmolL *float64 `json:"blood_glucose_mmol_l,omitempty"`
	BloodKetonesMmolL *float64 `json:"blood_ketones_mmol_l,omitempty"`
	PH                *float64 `json:"ph,omitempty"`
	BicarbonateMmolL  *float64 `json:"bicarbonate_mmol_l,omitempty"`
	HaemoglobinGdL    *float64 `json:"haemoglobin_g_dl,omitempty"`
	ESRMmHr           *int     `json:"esr_mm_hr,omitempty"`
	StoolsPerDay      *int     `json:"stools_per_day,omitempty"`
	BloodInStool      *bool    `json:"blood_in_stool,omitempty"`

	// ECG
	STElevation       *bool `json:"st_elevation,omitempty"`
	STDepressionOrTWI *bool `json:"st_depression_or_twi,omitempty"`
}

// BoolOr dereferences a staged bool, falling back to def when unrecorded.
func BoolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// IntOr dereferences a staged int, falling back to def when unrecorded.
func IntOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Float64Or dereferences a staged float, falling back to def when
// unrecorded.
func Float64Or(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
