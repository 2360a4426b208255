package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
)

// NIV decision thresholds for acute hypercapnic respiratory failure.
const (
	copdNIVPHLower = 7.25
	copdNIVPHUpper = 7.35
)

// COPDExacerbation implements the acute exacerbation of COPD pathway.
type COPDExacerbation struct{}

// NewCOPDExacerbation creates the COPD exacerbation condition handler.
func NewCOPDExacerbation() *COPDExacerbation {
	return &COPDExacerbation{}
}

func (c *COPDExacerbation) Slug() string { return "copd-exacerbation" }
func (c *COPDExacerbation) Name() string { return "Acute Exacerbation of COPD" }
func (c *COPDExacerbation) Definition() string {
	return "Acute worsening of respiratory symptoms requiring a change in regular medication."
}
func (c *COPDExacerbation) Aetiology() []string {
	return []string{"Infection (bacterial or viral)", "Pollution", "Non-adherence"}
}
func (c *COPDExacerbation) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{
		Modifiable:    []string{"Smoking"},
		NonModifiable: []string{"Alpha-1 antitrypsin deficiency", "Age"},
	}
}
func (c *COPDExacerbation) SignsSymptoms() []string {
	return []string{"Increased dyspnoea", "Increased cough", "Sputum change", "Wheeze"}
}
func (c *COPDExacerbation) Complications() []string {
	return []string{"Respiratory failure", "Pneumonia", "Cor pulmonale"}
}

// COPDPlanParams drive the antibiotic and ventilation decisions.
type COPDPlanParams struct {
	OxygenSaturation    float64 `json:"oxygen_saturation"`
	SputumPurulent      bool    `json:"sputum_purulent"`
	RespiratoryAcidosis bool    `json:"respiratory_acidosis"`
	PH                  float64 `json:"ph"`
}

// ManagementPlan builds the exacerbation management pathway. The NIV
// decision is resolved from the blood gas parameters at build time.
func (c *COPDExacerbation) ManagementPlan(p COPDPlanParams) (*pathway.Plan, error) {
	if p.OxygenSaturation < 0 || p.OxygenSaturation > 100 {
		return nil, domain.NewInvalidParameter("oxygen_saturation",
			"saturation must be a percentage between 0 and 100", p.OxygenSaturation)
	}

	b := pathway.NewPlanBuilder(c.Name()).StartAt("INITIAL_ASSESSMENT")

	b.AddStep(pathway.Step{
		ID:          "INITIAL_ASSESSMENT",
		Description: "Initial assessment and controlled oxygen therapy",
		Details:     fmt.Sprintf("SpO2 %.1f%%; target saturations 88-92%%", p.OxygenSaturation),
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.ABG, Urgency: domain.URGENCY_IMMEDIATE, Rationale: "Assess for hypercapnic respiratory failure"},
			{Type: domain.CHEST_XRAY, Urgency: domain.URGENCY_URGENT},
			{Type: domain.FBC, Urgency: domain.URGENCY_URGENT},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "BRONCHODILATORS"},
	})

	b.AddStep(pathway.Step{
		ID:          "BRONCHODILATORS",
		Description: "Bronchodilator therapy",
		Drugs: []domain.DrugRecommendation{
			{Name: "Salbutamol", Class: domain.SABA, Dose: "2.5-5 mg", Route: "Nebulised"},
			{Name: "Ipratropium", Class: domain.SAMA, Dose: "500 micrograms", Route: "Nebulised"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "STEROIDS"},
	})

	b.AddStep(pathway.Step{
		ID:          "STEROIDS",
		Description: "Corticosteroid therapy",
		Drugs: []domain.DrugRecommendation{
			{Name: "Prednisolone", Class: domain.STEROID, Dose: "30 mg", Route: "PO", Duration: "5 days"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ANTIBIOTICS"},
	})

	antibiotics := pathway.Step{
		ID:            "ANTIBIOTICS",
		Description:   "Antibiotic decision",
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_NIV"},
	}
	if p.SputumPurulent {
		antibiotics.Actions = []domain.ActionRecommendation{
			{Description: "Antibiotics indicated", Details: "Purulent sputum"},
		}
		antibiotics.Drugs = []domain.DrugRecommendation{
			{Name: "Amoxicillin / Doxycycline", Class: domain.ANTIBIOTIC, Route: "PO", Duration: "5 days"},
		}
		antibiotics.Investigations = []domain.InvestigationRecommendation{
			{Type: domain.SPUTUM_CULTURE, Urgency: domain.URGENCY_ROUTINE},
		}
	} else {
		antibiotics.Actions = []domain.ActionRecommendation{
			{Description: "Antibiotics not routinely indicated", Details: "No purulent sputum"},
		}
	}
	b.AddStep(antibiotics)

	niv := pathway.Step{
		ID:          "ASSESS_NIV",
		Description: "Assess need for NIV on blood gas",
	}
	escalateID := "CONTINUE_MEDICAL"
	switch {
	case p.RespiratoryAcidosis && p.PH >= copdNIVPHLower && p.PH < copdNIVPHUpper:
		niv.Details = fmt.Sprintf("Respiratory acidosis with pH %.2f: NIV indicated", p.PH)
		niv.Actions = []domain.ActionRecommendation{
			{Description: "Start NIV", Details: "Despite maximal medical therapy within 1 hour"},
		}
	case p.RespiratoryAcidosis && p.PH < copdNIVPHLower:
		niv.Details = fmt.Sprintf("Severe acidosis with pH %.2f", p.PH)
		escalateID = "CONSIDER_ICU"
	default:
		niv.Details = "No respiratory acidosis: continue medical management"
	}
	niv.OutgoingEdges = map[string]string{domain.KeyProceed: escalateID}
	b.AddStep(niv)

	if escalateID == "CONSIDER_ICU" {
		b.AddStep(pathway.Step{
			ID:          "CONSIDER_ICU",
			Description: "Consider invasive ventilation",
			Actions: []domain.ActionRecommendation{
				{Description: "Urgent ICU referral", Details: "Discuss ceilings of care"},
			},
		})
	} else {
		b.AddStep(pathway.Step{
			ID:          "CONTINUE_MEDICAL",
			Description: "Continue medical management",
			Actions: []domain.ActionRecommendation{
				{Description: "Reassess response and wean oxygen as tolerated"},
			},
		})
	}

	return b.Build()
}
