package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

// Biologic eligibility thresholds for rheumatoid arthritis.
const (
	raBiologicDAS28Above        = 5.1
	raBiologicFailedDMARDsAtMin = 2
)

// RheumatoidArthritis implements the RA treat-to-target pathway.
type RheumatoidArthritis struct{}

// NewRheumatoidArthritis creates the RA condition handler.
func NewRheumatoidArthritis() *RheumatoidArthritis {
	return &RheumatoidArthritis{}
}

func (c *RheumatoidArthritis) Slug() string { return "ra" }
func (c *RheumatoidArthritis) Name() string { return "Rheumatoid Arthritis" }
func (c *RheumatoidArthritis) Definition() string {
	return "Chronic autoimmune disease causing symmetrical inflammatory polyarthritis."
}
func (c *RheumatoidArthritis) Aetiology() []string {
	return []string{"Autoimmune", "Genetics", "Environment"}
}
func (c *RheumatoidArthritis) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{
		Modifiable:    []string{"Smoking"},
		NonModifiable: []string{"Female sex", "Family history"},
	}
}
func (c *RheumatoidArthritis) SignsSymptoms() []string {
	return []string{"Symmetrical polyarthritis", "Morning stiffness"}
}
func (c *RheumatoidArthritis) Complications() []string {
	return []string{"Joint destruction", "Vasculitis", "Lung disease"}
}

// RAPlanParams gate the escalation from conventional DMARDs to biologic
// therapy. DAS28Known is false when the score could not be computed; the
// eligibility test then fails closed (no biologic without a documented
// score).
type RAPlanParams struct {
	DAS28Score          float64 `json:"das28_score"`
	DAS28Known          bool    `json:"das28_known"`
	FailedDMARDs        int     `json:"failed_dmards"`
	FailedTNFInhibitor  bool    `json:"failed_tnf_inhibitor"`
	TBScreeningNegative bool    `json:"tb_screening_negative"`
	ActiveInfection     bool    `json:"active_infection"`
	SevereHeartFailure  bool    `json:"severe_heart_failure"`
}

// ManagementPlan builds the RA escalation pathway. The 3-6 month response
// assessment branches on the DAS28 activity band the caller derives at
// review time; the biologic decision is resolved from the parameters.
func (c *RheumatoidArthritis) ManagementPlan(p RAPlanParams) (*pathway.Plan, error) {
	if p.FailedDMARDs < 0 {
		return nil, domain.NewInvalidParameter("failed_dmards",
			"failed DMARD count cannot be negative", p.FailedDMARDs)
	}

	activity := "DAS28 not recorded"
	if p.DAS28Known {
		activity = fmt.Sprintf("DAS28 %.1f (%s activity)",
			p.DAS28Score, scoring.InterpretDAS28(p.DAS28Score))
	}

	b := pathway.NewPlanBuilder(c.Name()).StartAt("START")

	b.AddStep(pathway.Step{
		ID:          "START",
		Description: "Initial diagnosis and assessment",
		Details:     activity,
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.DAS28_ASSESSMENT, Urgency: domain.URGENCY_ROUTINE, Rationale: "Baseline disease activity"},
			{Type: domain.ESR, Urgency: domain.URGENCY_ROUTINE},
			{Type: domain.CRP, Urgency: domain.URGENCY_ROUTINE},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "FIRST_LINE_DMARD"},
	})

	b.AddStep(pathway.Step{
		ID:          "FIRST_LINE_DMARD",
		Description: "First-line conventional DMARD",
		Drugs: []domain.DrugRecommendation{
			{Name: "Methotrexate", Class: domain.DMARD_CONVENTIONAL, Route: "PO", Dose: "Weekly",
				Warnings: []string{"Co-prescribe folic acid", "Monitor FBC and LFTs"}},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_DMARD"},
	})

	// Branch keys are the DAS28 activity bands the caller derives at the
	// 3-6 month review.
	b.AddStep(pathway.Step{
		ID:          "ASSESS_RESPONSE_DMARD",
		Description: "Assess response after 3-6 months (DAS28)",
		OutgoingEdges: map[string]string{
			domain.RA_ACTIVITY_HIGH.String():     "CONSIDER_BIOLOGIC",
			domain.RA_ACTIVITY_MODERATE.String(): "OPTIMIZE_DMARD",
			domain.RA_ACTIVITY_LOW.String():      "CONTINUE_MONITOR",
		},
	})

	b.AddStep(pathway.Step{
		ID:          "OPTIMIZE_DMARD",
		Description: "Optimise or switch conventional DMARDs",
		Drugs: []domain.DrugRecommendation{
			{Name: "Sulfasalazine / Leflunomide", Class: domain.DMARD_CONVENTIONAL, Rationale: "Add or switch"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_DMARD"},
	})

	eligible := p.DAS28Known && p.DAS28Score > raBiologicDAS28Above &&
		p.FailedDMARDs >= raBiologicFailedDMARDsAtMin
	safeToStart := p.TBScreeningNegative && !p.ActiveInfection

	biologic := pathway.Step{
		ID:          "CONSIDER_BIOLOGIC",
		Description: "Consider biologic or targeted synthetic DMARD",
	}
	switch {
	case !eligible || !safeToStart:
		biologic.Details = "Eligibility or screening criteria not met; stay on conventional DMARDs"
		biologic.OutgoingEdges = map[string]string{domain.KeyProceed: "OPTIMIZE_DMARD"}
	case p.FailedTNFInhibitor:
		biologic.Details = "Prior anti-TNF failure: switch mechanism"
		biologic.OutgoingEdges = map[string]string{domain.KeyProceed: "SWITCH_BIOLOGIC"}
	case p.SevereHeartFailure:
		biologic.Details = "Anti-TNF contraindicated in severe heart failure: alternative biologic or JAK inhibitor"
		biologic.OutgoingEdges = map[string]string{domain.KeyProceed: "SWITCH_BIOLOGIC"}
	default:
		biologic.Details = fmt.Sprintf("DAS28 %.1f with %d failed conventional DMARDs", p.DAS28Score, p.FailedDMARDs)
		biologic.OutgoingEdges = map[string]string{domain.KeyProceed: "ADD_ANTI_TNF"}
	}
	b.AddStep(biologic)

	biologicChosen := false
	switch biologic.OutgoingEdges[domain.KeyProceed] {
	case "ADD_ANTI_TNF":
		biologicChosen = true
		b.AddStep(pathway.Step{
			ID:          "ADD_ANTI_TNF",
			Description: "Add anti-TNF biologic",
			Drugs: []domain.DrugRecommendation{
				{Name: "Adalimumab / Etanercept", Class: domain.DMARD_BIOLOGIC_TNF, Route: "SC"},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_BIOLOGIC"},
		})
	case "SWITCH_BIOLOGIC":
		biologicChosen = true
		b.AddStep(pathway.Step{
			ID:          "SWITCH_BIOLOGIC",
			Description: "Alternative biologic or JAK inhibitor",
			Drugs: []domain.DrugRecommendation{
				{Name: "Rituximab / Tocilizumab", Class: domain.DMARD_BIOLOGIC_OTHER},
				{Name: "Baricitinib", Class: domain.DMARD_JAK_INHIBITOR, Route: "PO"},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "ASSESS_RESPONSE_BIOLOGIC"},
		})
	}

	if biologicChosen {
		b.AddStep(pathway.Step{
			ID:            "ASSESS_RESPONSE_BIOLOGIC",
			Description:   "Assess response to biologic therapy (DAS28 at 6 months)",
			OutgoingEdges: map[string]string{domain.KeyProceed: "CONTINUE_MONITOR"},
		})
	}

	b.AddStep(pathway.Step{
		ID:          "CONTINUE_MONITOR",
		Description: "Continue current therapy and monitor",
		Actions: []domain.ActionRecommendation{
			{Description: "Annual review", Details: "DAS28, comorbidity and drug monitoring"},
		},
	})

	return b.Build()
}
