package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
)

// UlcerativeColitis implements the induction-of-remission pathway.
type UlcerativeColitis struct{}

// NewUlcerativeColitis creates the UC condition handler.
func NewUlcerativeColitis() *UlcerativeColitis {
	return &UlcerativeColitis{}
}

func (c *UlcerativeColitis) Slug() string { return "uc" }
func (c *UlcerativeColitis) Name() string { return "Ulcerative Colitis" }
func (c *UlcerativeColitis) Definition() string {
	return "Chronic inflammatory bowel disease affecting the colon and rectum."
}
func (c *UlcerativeColitis) Aetiology() []string {
	return []string{"Unknown"}
}
func (c *UlcerativeColitis) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{NonModifiable: []string{"Family history", "Ethnicity"}}
}
func (c *UlcerativeColitis) SignsSymptoms() []string {
	return []string{"Bloody diarrhoea", "Urgency", "Tenesmus"}
}
func (c *UlcerativeColitis) Complications() []string {
	return []string{"Toxic megacolon", "Perforation", "Colorectal cancer"}
}

// UCInductionParams select the induction pathway. Severity typically comes
// from scoring.AssessUCSeverity; extent comes from endoscopy.
type UCInductionParams struct {
	Extent   domain.UCExtent   `json:"extent"`
	Severity domain.UCSeverity `json:"severity"`
}

// InduceRemissionPlan builds the induction-of-remission pathway for the
// given extent and severity. Severe disease takes the inpatient rescue
// pathway; mild and moderate disease take a stepped 5-ASA pathway whose
// shape depends on extent.
func (c *UlcerativeColitis) InduceRemissionPlan(p UCInductionParams) (*pathway.Plan, error) {
	if !p.Extent.IsValid() {
		return nil, domain.NewInvalidParameter("extent",
			"not a recognized UC disease extent", string(p.Extent))
	}
	if !p.Severity.IsValid() {
		return nil, domain.NewInvalidParameter("severity",
			"not a recognized UC severity", string(p.Severity))
	}

	name := fmt.Sprintf("%s - Induce Remission (%s, %s)", c.Name(), p.Severity, p.Extent)
	b := pathway.NewPlanBuilder(name).StartAt("START")

	b.AddStep(pathway.Step{
		ID:          "CONSIDER_MAINTENANCE",
		Description: "Remission achieved: consider maintenance therapy",
		Drugs: []domain.DrugRecommendation{
			{Name: "Mesalazine", Class: domain.AMINOSALICYLATE, Route: "PO", Rationale: "Maintain remission"},
		},
	})

	if p.Severity == domain.UC_SEVERE {
		c.addSeverePathway(b)
	} else if p.Extent == domain.PROCTITIS {
		c.addProctitisPathway(b)
	} else {
		c.addLeftSidedExtensivePathway(b)
	}

	return b.Build()
}

func (c *UlcerativeColitis) addSeverePathway(b *pathway.PlanBuilder) {
	b.AddStep(pathway.Step{
		ID:            "START",
		Description:   "Severe flare: admit",
		OutgoingEdges: map[string]string{domain.KeyProceed: "ADMIT_SEVERE"},
	})
	b.AddStep(pathway.Step{
		ID:          "ADMIT_SEVERE",
		Description: "Admit to hospital",
		Actions: []domain.ActionRecommendation{
			{Description: "Assess VTE risk and give prophylactic LMWH"},
			{Description: "Joint gastroenterology and surgical care"},
		},
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.SIGMOIDOSCOPY, Urgency: domain.URGENCY_URGENT, Rationale: "Confirm severity, exclude CMV"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "IV_STEROIDS"},
	})
	b.AddStep(pathway.Step{
		ID:          "IV_STEROIDS",
		Description: "IV corticosteroids",
		Drugs: []domain.DrugRecommendation{
			{Name: "Hydrocortisone", Class: domain.STEROID, Route: "IV", Dose: "100 mg QDS"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_SEVERE"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_SEVERE",
		Description: "Assess response after 72 hours",
		OutgoingEdges: map[string]string{
			domain.KeyImproved:      "SWITCH_ORAL_STEROIDS",
			domain.KeyNoImprovement: "SECOND_LINE_SEVERE",
		},
	})
	b.AddStep(pathway.Step{
		ID:          "SWITCH_ORAL_STEROIDS",
		Description: "Switch to oral steroids",
		Drugs: []domain.DrugRecommendation{
			{Name: "Prednisolone", Class: domain.STEROID, Route: "PO", Duration: "Weaning course"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "CONSIDER_MAINTENANCE"},
	})
	b.AddStep(pathway.Step{
		ID:          "SECOND_LINE_SEVERE",
		Description: "Rescue therapy",
		Drugs: []domain.DrugRecommendation{
			{Name: "Ciclosporin", Class: domain.IMMUNOSUPPRESSANT, Route: "IV"},
			{Name: "Infliximab", Class: domain.DMARD_BIOLOGIC_TNF, Route: "IV", Rationale: "Alternative to ciclosporin"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_RESCUE"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_RESCUE",
		Description: "Assess response to rescue therapy (4-7 days)",
		OutgoingEdges: map[string]string{
			domain.KeyImproved:   "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "SURGERY_COLECTOMY",
		},
	})
	b.AddStep(pathway.Step{
		ID:          "SURGERY_COLECTOMY",
		Description: "Consider colectomy",
		Actions: []domain.ActionRecommendation{
			{Description: "Urgent colorectal surgical review"},
		},
	})
}

func (c *UlcerativeColitis) addProctitisPathway(b *pathway.PlanBuilder) {
	b.AddStep(pathway.Step{
		ID:            "START",
		Description:   "Mild/moderate proctitis: topical therapy first",
		OutgoingEdges: map[string]string{domain.KeyProceed: "TOPICAL_ASA"},
	})
	b.AddStep(pathway.Step{
		ID:          "TOPICAL_ASA",
		Description: "Topical 5-ASA",
		Drugs: []domain.DrugRecommendation{
			{Name: "Mesalazine suppository", Class: domain.AMINOSALICYLATE, Route: "PR"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_1"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_1",
		Description: "Assess response (4 weeks)",
		OutgoingEdges: map[string]string{
			domain.KeyRemission:  "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "ADD_ORAL_ASA",
		},
	})
	b.AddStep(pathway.Step{
		ID:          "ADD_ORAL_ASA",
		Description: "Add oral 5-ASA to topical 5-ASA",
		Drugs: []domain.DrugRecommendation{
			{Name: "Mesalazine", Class: domain.AMINOSALICYLATE, Route: "PO"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_2"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_2",
		Description: "Assess response (4 weeks)",
		OutgoingEdges: map[string]string{
			domain.KeyRemission:  "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "ADD_TOPICAL_STEROID",
		},
	})
	b.AddStep(pathway.Step{
		ID:          "ADD_TOPICAL_STEROID",
		Description: "Add topical steroid or switch oral 5-ASA to oral steroid",
		Drugs: []domain.DrugRecommendation{
			{Name: "Budesonide rectal foam", Class: domain.STEROID, Route: "PR"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_3"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_3",
		Description: "Assess response (4 weeks)",
		OutgoingEdges: map[string]string{
			domain.KeyRemission:  "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "SPECIALIST_REFERRAL",
		},
	})
	b.AddStep(specialistReferralStep())
}

func (c *UlcerativeColitis) addLeftSidedExtensivePathway(b *pathway.PlanBuilder) {
	b.AddStep(pathway.Step{
		ID:            "START",
		Description:   "Mild/moderate left-sided or extensive disease",
		OutgoingEdges: map[string]string{domain.KeyProceed: "TOPICAL_ASA"},
	})
	b.AddStep(pathway.Step{
		ID:          "TOPICAL_ASA",
		Description: "Topical 5-ASA",
		Drugs: []domain.DrugRecommendation{
			{Name: "Mesalazine enema", Class: domain.AMINOSALICYLATE, Route: "PR"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ADD_ORAL_ASA"},
	})
	b.AddStep(pathway.Step{
		ID:          "ADD_ORAL_ASA",
		Description: "Add high-dose oral 5-ASA",
		Drugs: []domain.DrugRecommendation{
			{Name: "Mesalazine", Class: domain.AMINOSALICYLATE, Route: "PO", Dose: "High dose"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_1"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_1",
		Description: "Assess response (4 weeks)",
		OutgoingEdges: map[string]string{
			domain.KeyRemission:  "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "ADD_ORAL_STEROID",
		},
	})
	b.AddStep(pathway.Step{
		ID:          "ADD_ORAL_STEROID",
		Description: "Add oral corticosteroid",
		Drugs: []domain.DrugRecommendation{
			{Name: "Prednisolone", Class: domain.STEROID, Route: "PO", Duration: "Weaning course"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_2"},
	})
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_2",
		Description: "Assess response (4 weeks)",
		OutgoingEdges: map[string]string{
			domain.KeyRemission:  "CONSIDER_MAINTENANCE",
			domain.KeyNoResponse: "SPECIALIST_REFERRAL",
		},
	})
	b.AddStep(specialistReferralStep())
}

func specialistReferralStep() pathway.Step {
	return pathway.Step{
		ID:          "SPECIALIST_REFERRAL",
		Description: "Refractory disease: specialist IBD review",
		Actions: []domain.ActionRecommendation{
			{Description: "Refer for consideration of biologic therapy or surgery"},
		},
	}
}
