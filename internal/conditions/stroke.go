package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
)

// Reperfusion time windows for acute ischaemic stroke.
const (
	strokeThrombolysisWindowHours = 4.5
	strokeThrombectomyWindowHours = 24.0

	strokeNIHSSMax = 42
)

// IschaemicStroke implements the acute reperfusion pathway.
type IschaemicStroke struct{}

// NewIschaemicStroke creates the stroke condition handler.
func NewIschaemicStroke() *IschaemicStroke {
	return &IschaemicStroke{}
}

func (c *IschaemicStroke) Slug() string { return "stroke" }
func (c *IschaemicStroke) Name() string { return "Acute Ischaemic Stroke" }
func (c *IschaemicStroke) Definition() string {
	return "Sudden neurological deficit from focal cerebral ischaemia."
}
func (c *IschaemicStroke) Aetiology() []string {
	return []string{"Thrombosis", "Embolism", "Small vessel disease"}
}
func (c *IschaemicStroke) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{
		Modifiable:    []string{"Hypertension", "Smoking", "Diabetes", "Atrial fibrillation"},
		NonModifiable: []string{"Age", "Family history"},
	}
}
func (c *IschaemicStroke) SignsSymptoms() []string {
	return []string{"Unilateral weakness", "Facial droop", "Dysphasia", "Visual field defects"}
}
func (c *IschaemicStroke) Complications() []string {
	return []string{"Haemorrhagic transformation", "Cerebral oedema", "Aspiration"}
}

// StrokeReperfusionParams determine thrombolysis and thrombectomy
// eligibility. The intracranial haemorrhage question is deliberately not a
// parameter: it is answered by imaging during traversal, through the
// ICH_PRESENT/ICH_ABSENT branch keys.
type StrokeReperfusionParams struct {
	TimeSinceOnsetHours         float64 `json:"time_since_onset_hours"`
	NIHSSScore                  int     `json:"nihss_score"`
	SystolicBP                  int     `json:"systolic_bp"`
	DiastolicBP                 int     `json:"diastolic_bp"`
	LargeEstablishedInfarct     bool    `json:"large_established_infarct"`
	ThrombolysisContraindicated bool    `json:"thrombolysis_contraindicated"`
	ThrombectomyAvailable       bool    `json:"thrombectomy_available"`
	TargetVesselOcclusion       bool    `json:"target_vessel_occlusion"`
}

// ReperfusionPlan builds the reperfusion eligibility pathway.
func (c *IschaemicStroke) ReperfusionPlan(p StrokeReperfusionParams) (*pathway.Plan, error) {
	if p.TimeSinceOnsetHours < 0 {
		return nil, domain.NewInvalidParameter("time_since_onset_hours",
			"symptom onset cannot be in the future", p.TimeSinceOnsetHours)
	}
	if p.NIHSSScore < 0 || p.NIHSSScore > strokeNIHSSMax {
		return nil, domain.NewInvalidParameter("nihss_score",
			fmt.Sprintf("NIHSS must be between 0 and %d", strokeNIHSSMax), p.NIHSSScore)
	}

	lysisEligible := p.TimeSinceOnsetHours <= strokeThrombolysisWindowHours &&
		!p.ThrombolysisContraindicated && !p.LargeEstablishedInfarct
	thrombectomyEligible := p.TimeSinceOnsetHours <= strokeThrombectomyWindowHours &&
		p.ThrombectomyAvailable && p.TargetVesselOcclusion

	b := pathway.NewPlanBuilder(c.Name() + " - Reperfusion").StartAt("START")

	b.AddStep(pathway.Step{
		ID:          "START",
		Description: "Assess reperfusion eligibility",
		Details: fmt.Sprintf("Onset %.1f h ago, NIHSS %d, BP %d/%d",
			p.TimeSinceOnsetHours, p.NIHSSScore, p.SystolicBP, p.DiastolicBP),
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.CT_HEAD_NON_CONTRAST, Urgency: domain.URGENCY_IMMEDIATE, Rationale: "Exclude haemorrhage"},
			{Type: domain.CT_ANGIOGRAM, Urgency: domain.URGENCY_IMMEDIATE, Rationale: "Identify target vessel occlusion"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "CHECK_HAEMORRHAGE"},
	})

	b.AddStep(pathway.Step{
		ID:          "CHECK_HAEMORRHAGE",
		Description: "Check for intracranial haemorrhage on CT",
		OutgoingEdges: map[string]string{
			domain.KeyICHPresent: "MANAGE_HAEMORRHAGE",
			domain.KeyICHAbsent:  "THROMBOLYSIS_DECISION",
		},
	})

	b.AddStep(pathway.Step{
		ID:          "MANAGE_HAEMORRHAGE",
		Description: "Manage haemorrhagic stroke",
		Actions: []domain.ActionRecommendation{
			{Description: "Urgent neurosurgical referral"},
			{Description: "Reverse anticoagulation if present"},
		},
	})

	lysisNext := "THROMBECTOMY_DECISION"
	lysisDetails := "Outside 4.5 h window or thrombolysis contraindicated"
	if lysisEligible {
		lysisNext = "OFFER_THROMBOLYSIS"
		lysisDetails = fmt.Sprintf("Within %.1f h window, no contraindication", strokeThrombolysisWindowHours)
	}
	b.AddStep(pathway.Step{
		ID:            "THROMBOLYSIS_DECISION",
		Description:   "Thrombolysis eligibility",
		Details:       lysisDetails,
		OutgoingEdges: map[string]string{domain.KeyProceed: lysisNext},
	})

	if lysisEligible {
		b.AddStep(pathway.Step{
			ID:          "OFFER_THROMBOLYSIS",
			Description: "Offer IV thrombolysis",
			Drugs: []domain.DrugRecommendation{
				{Name: "Alteplase", Class: domain.FIBRINOLYTIC, Route: "IV", Dose: "0.9 mg/kg, max 90 mg",
					Warnings: []string{"Monitor for haemorrhagic transformation"}},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "THROMBECTOMY_DECISION"},
		})
	}

	thrombectomyNext := "NO_REPERFUSION"
	thrombectomyDetails := "No target vessel occlusion, outside window or service unavailable"
	if thrombectomyEligible {
		thrombectomyNext = "OFFER_THROMBECTOMY"
		thrombectomyDetails = "Target vessel occlusion within window at a thrombectomy-capable centre"
	}
	b.AddStep(pathway.Step{
		ID:            "THROMBECTOMY_DECISION",
		Description:   "Thrombectomy eligibility",
		Details:       thrombectomyDetails,
		OutgoingEdges: map[string]string{domain.KeyProceed: thrombectomyNext},
	})

	if thrombectomyEligible {
		b.AddStep(pathway.Step{
			ID:          "OFFER_THROMBECTOMY",
			Description: "Offer mechanical thrombectomy",
			Actions: []domain.ActionRecommendation{
				{Description: "Transfer to neurointerventional suite"},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "POST_REPERFUSION_CARE"},
		})
		b.AddStep(pathway.Step{
			ID:          "POST_REPERFUSION_CARE",
			Description: "Post-reperfusion care",
			Actions: []domain.ActionRecommendation{
				{Description: "Stroke unit admission with neuro observations"},
				{Description: "Repeat CT head at 24 hours before antithrombotics"},
			},
		})
	} else {
		b.AddStep(pathway.Step{
			ID:          "NO_REPERFUSION",
			Description: "No acute reperfusion therapy indicated",
			Drugs: []domain.DrugRecommendation{
				{Name: "Aspirin", Class: domain.ANTIPLATELET, Dose: "300 mg", Route: "PO",
					Rationale: "Once haemorrhage excluded"},
			},
			Actions: []domain.ActionRecommendation{
				{Description: "Stroke unit admission"},
			},
		})
	}

	return b.Build()
}
