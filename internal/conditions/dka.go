package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

// Potassium replacement bands for the fixed-rate insulin infusion (JBDS).
const (
	dkaPotassiumLowMmolL  = 3.5
	dkaPotassiumHighMmolL = 5.5

	// Fixed-rate insulin infusion dose per kilogram per hour.
	dkaInsulinUnitsPerKgHr = 0.1
)

// DiabeticKetoacidosis implements the DKA management pathway.
type DiabeticKetoacidosis struct {
	engine *scoring.Engine
}

// NewDiabeticKetoacidosis creates the DKA condition handler.
func NewDiabeticKetoacidosis(engine *scoring.Engine) *DiabeticKetoacidosis {
	return &DiabeticKetoacidosis{engine: engine}
}

func (c *DiabeticKetoacidosis) Slug() string { return "dka" }
func (c *DiabeticKetoacidosis) Name() string { return "Diabetic Ketoacidosis" }
func (c *DiabeticKetoacidosis) Definition() string {
	return "Life-threatening complication of diabetes: hyperglycaemia, ketonaemia and acidosis."
}
func (c *DiabeticKetoacidosis) Aetiology() []string {
	return []string{"Missed insulin", "Infection", "New type 1 diabetes"}
}
func (c *DiabeticKetoacidosis) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{NonModifiable: []string{"Type 1 diabetes"}}
}
func (c *DiabeticKetoacidosis) SignsSymptoms() []string {
	return []string{"Polyuria/polydipsia", "Nausea/vomiting", "Abdominal pain", "Kussmaul breathing", "Acetone breath"}
}
func (c *DiabeticKetoacidosis) Complications() []string {
	return []string{"Cerebral oedema", "Hypokalaemia", "ARDS", "Thromboembolism"}
}

// DKAPlanParams are the admission biochemistry and observations that the
// management plan is built from. WeightKg drives the insulin infusion rate
// and must be positive; no default weight is ever substituted.
type DKAPlanParams struct {
	WeightKg          float64 `json:"weight_kg"`
	BloodGlucoseMmolL float64 `json:"blood_glucose_mmol_l"`
	PH                float64 `json:"ph"`
	BicarbonateMmolL  float64 `json:"bicarbonate_mmol_l"`
	KetonesMmolL      float64 `json:"ketones_mmol_l"`
	PotassiumMmolL    float64 `json:"potassium_mmol_l"`
	SystolicBP        int     `json:"systolic_bp"`
}

// ManagementPlan builds the DKA management pathway.
func (c *DiabeticKetoacidosis) ManagementPlan(p DKAPlanParams) (*pathway.Plan, error) {
	if p.WeightKg <= 0 {
		return nil, domain.NewInvalidParameter("weight_kg",
			"weight must be positive to dose the insulin infusion", p.WeightKg)
	}
	if p.SystolicBP < 0 {
		return nil, domain.NewInvalidParameter("systolic_bp",
			"systolic blood pressure cannot be negative", p.SystolicBP)
	}

	grade := c.engine.GradeDKASeverity(scoring.DKASeverityParams{
		PH:               p.PH,
		BicarbonateMmolL: p.BicarbonateMmolL,
		KetonesMmolL:     p.KetonesMmolL,
	})

	b := pathway.NewPlanBuilder(c.Name()).StartAt("CONFIRM_INITIAL")

	confirmActions := []domain.ActionRecommendation{
		{Description: "Confirm DKA", Details: "Ketonaemia, hyperglycaemia (or known diabetes) and acidosis"},
	}
	if grade.Severity == domain.DKA_SEVERE {
		confirmActions = append(confirmActions, domain.ActionRecommendation{
			Description: "Severe DKA: involve critical care early",
		})
	}

	b.AddStep(pathway.Step{
		ID:          "CONFIRM_INITIAL",
		Description: "Confirmation and initial actions",
		Details:     grade.Severity.Description(),
		Actions:     confirmActions,
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.ABG, Urgency: domain.URGENCY_IMMEDIATE},
			{Type: domain.BLOOD_KETONES, Urgency: domain.URGENCY_IMMEDIATE},
			{Type: domain.U_AND_E, Urgency: domain.URGENCY_IMMEDIATE},
			{Type: domain.ECG, Urgency: domain.URGENCY_URGENT, Rationale: "Potassium-related arrhythmia risk"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "FLUIDS"},
	})

	fluids := pathway.Step{
		ID:          "FLUIDS",
		Description: "IV fluid replacement",
		Drugs: []domain.DrugRecommendation{
			{Name: "0.9% Sodium Chloride", Route: "IV", Dose: "1 L over 1 hour", Rationale: "Restore circulating volume"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "INSULIN"},
	}
	if p.SystolicBP > 0 && p.SystolicBP < 90 {
		fluids.Drugs[0].Dose = "500 mL over 10-15 minutes"
		fluids.Drugs[0].Warnings = []string{"Hypotensive: rapid bolus, reassess, senior review if not responding"}
	}
	b.AddStep(fluids)

	b.AddStep(pathway.Step{
		ID:          "INSULIN",
		Description: "Fixed-rate intravenous insulin infusion",
		Drugs: []domain.DrugRecommendation{
			{
				Name:  "Soluble insulin (Actrapid)",
				Class: domain.INSULIN,
				Route: "IV",
				Dose:  fmt.Sprintf("%.1f units/hour (%.2g units/kg/hour)", dkaInsulinUnitsPerKgHr*p.WeightKg, dkaInsulinUnitsPerKgHr),
			},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "POTASSIUM"},
	})

	potassium := pathway.Step{
		ID:            "POTASSIUM",
		Description:   "Potassium replacement",
		Details:       fmt.Sprintf("Admission potassium %.1f mmol/L", p.PotassiumMmolL),
		OutgoingEdges: map[string]string{domain.KeyProceed: "MONITOR_RESOLVE"},
	}
	switch {
	case p.PotassiumMmolL < dkaPotassiumLowMmolL:
		potassium.Drugs = []domain.DrugRecommendation{
			{Name: "Potassium Chloride", Route: "IV", Dose: "40 mmol/L of fluid",
				Warnings: []string{"SEVERE HYPOKALAEMIA: seek senior help before starting insulin"}},
		}
	case p.PotassiumMmolL <= dkaPotassiumHighMmolL:
		potassium.Drugs = []domain.DrugRecommendation{
			{Name: "Potassium Chloride", Route: "IV", Dose: "40 mmol/L of fluid"},
		}
	default:
		potassium.Actions = []domain.ActionRecommendation{
			{Description: "No potassium in the first bag", Details: "Recheck with next blood gas"},
		}
	}
	b.AddStep(potassium)

	b.AddStep(pathway.Step{
		ID:          "MONITOR_RESOLVE",
		Description: "Monitoring and resolution check",
		Details:     "Hourly ketones and glucose; resolution when ketones < 0.6 mmol/L and pH > 7.3",
		OutgoingEdges: map[string]string{
			domain.KeyImproved:      "TRANSITION",
			domain.KeyNoImprovement: "MONITOR_RESOLVE",
		},
	})

	b.AddStep(pathway.Step{
		ID:          "TRANSITION",
		Description: "Transition to subcutaneous insulin",
		Actions: []domain.ActionRecommendation{
			{Description: "Restart usual subcutaneous insulin with a meal", Details: "Stop infusion 30-60 minutes after"},
			{Description: "Diabetes specialist team review before discharge"},
		},
	})

	return b.Build()
}
