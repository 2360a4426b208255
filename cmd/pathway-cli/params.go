package main

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/scoring"
	"github.com/clinical-pathways-server/pkg/patient"
)

// serviceCapabilities carries site properties that a patient record cannot
// stage. They come from explicit flags so that a reperfusion strategy is
// never chosen on an assumed capability.
type serviceCapabilities struct {
	PCIWithin120Min       bool
	ThrombectomyAvailable bool
}

// paramsFromPatient destructures a staged patient record into the explicit
// parameters of the named pathway. Unrecorded booleans default to absent,
// which is the conservative reading for risk factors; measurements that
// steer the pathway must be present in the record and are never substituted.
func paramsFromPatient(name string, p *patient.Patient, svc serviceCapabilities) (interface{}, error) {
	switch name {
	case "acs/stemi":
		if p.SymptomOnsetHoursACS == nil {
			return nil, fmt.Errorf("patient record is missing symptom_onset_hours_acs")
		}
		signs := domain.HF_SIGNS_NONE
		if p.HeartFailureSigns != nil {
			signs = *p.HeartFailureSigns
		}
		return conditions.STEMIPlanParams{
			SymptomOnsetHours:        *p.SymptomOnsetHoursACS,
			PCIAvailableWithin120Min: svc.PCIWithin120Min,
			HeartFailureSigns:        signs,
		}, nil

	case "acs/nstemi":
		return conditions.NSTEMIPlanParams{
			GraceKnown:       false,
			HighBleedingRisk: patient.BoolOr(p.HighBleedingRisk, false),
		}, nil

	case "pe":
		if p.HeartRate == nil {
			return nil, fmt.Errorf("patient record is missing heart_rate")
		}
		return conditions.PEInvestigationParams{
			Wells: scoring.WellsPEParams{
				ClinicalSignsDVT:              patient.BoolOr(p.ClinicalSignsDVT, false),
				PEMostLikelyDiagnosis:         patient.BoolOr(p.PEMostLikelyDiagnosis, false),
				HeartRate:                     *p.HeartRate,
				RecentImmobilisationOrSurgery: patient.BoolOr(p.RecentImmobilisationOrSurgery, false),
				PreviousDVTOrPE:               patient.BoolOr(p.PreviousDVTOrPE, false),
				Haemoptysis:                   patient.BoolOr(p.Haemoptysis, false),
				Malignancy:                    patient.BoolOr(p.Malignancy, false),
			},
			RenalImpaired: patient.BoolOr(p.RenalImpaired, false),
		}, nil

	case "copd-exacerbation":
		if p.OxygenSaturation == nil {
			return nil, fmt.Errorf("patient record is missing oxygen_saturation")
		}
		ph := patient.Float64Or(p.PH, 7.4)
		return conditions.COPDPlanParams{
			OxygenSaturation:    *p.OxygenSaturation,
			SputumPurulent:      patient.BoolOr(p.SputumPurulent, false),
			RespiratoryAcidosis: p.PH != nil && *p.PH < 7.35,
			PH:                  ph,
		}, nil

	case "dka":
		if p.WeightKg == nil {
			return nil, fmt.Errorf("patient record is missing weight_kg")
		}
		if p.PH == nil || p.BicarbonateMmolL == nil || p.PotassiumMmolL == nil {
			return nil, fmt.Errorf("patient record is missing blood gas values (ph, bicarbonate_mmol_l, potassium_mmol_l)")
		}
		// The systolic pressure selects the fluid regimen, so a missing
		// reading is an error rather than an assumed normal value.
		if p.SystolicBP == nil {
			return nil, fmt.Errorf("patient record is missing systolic_bp")
		}
		return conditions.DKAPlanParams{
			WeightKg:          *p.WeightKg,
			BloodGlucoseMmolL: patient.Float64Or(p.BloodGlucoseMmolL, 0),
			PH:                *p.PH,
			BicarbonateMmolL:  *p.BicarbonateMmolL,
			KetonesMmolL:      patient.Float64Or(p.BloodKetonesMmolL, 0),
			PotassiumMmolL:    *p.PotassiumMmolL,
			SystolicBP:        *p.SystolicBP,
		}, nil

	case "ra":
		return conditions.RAPlanParams{
			DAS28Score:          patient.Float64Or(p.DAS28Score, 0),
			DAS28Known:          p.DAS28Score != nil,
			FailedDMARDs:        patient.IntOr(p.FailedDMARDs, 0),
			TBScreeningNegative: !patient.BoolOr(p.ActiveTB, false),
			ActiveInfection:     patient.BoolOr(p.ActiveInfection, false),
			SevereHeartFailure:  patient.BoolOr(p.HeartFailure, false),
		}, nil

	case "uc":
		if p.UCExtent == nil || p.UCSeverity == nil {
			return nil, fmt.Errorf("patient record is missing uc_extent or uc_severity")
		}
		return conditions.UCInductionParams{
			Extent:   *p.UCExtent,
			Severity: *p.UCSeverity,
		}, nil

	case "stroke":
		if p.StrokeOnsetHours == nil || p.NIHSSScore == nil {
			return nil, fmt.Errorf("patient record is missing stroke_onset_hours or nihss_score")
		}
		return conditions.StrokeReperfusionParams{
			TimeSinceOnsetHours:   *p.StrokeOnsetHours,
			NIHSSScore:            *p.NIHSSScore,
			SystolicBP:            patient.IntOr(p.SystolicBP, 0),
			DiastolicBP:           patient.IntOr(p.DiastolicBP, 0),
			ThrombectomyAvailable: svc.ThrombectomyAvailable,
			TargetVesselOcclusion: patient.BoolOr(p.TargetVesselOcclusion, false),
		}, nil
	}
	return nil, &conditions.UnknownPathwayError{Pathway: name}
}
