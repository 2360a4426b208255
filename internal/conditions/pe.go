package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

// PulmonaryEmbolism implements the suspected-PE investigation pathway.
type PulmonaryEmbolism struct {
	engine *scoring.Engine
}

// NewPulmonaryEmbolism creates the PE condition handler.
func NewPulmonaryEmbolism(engine *scoring.Engine) *PulmonaryEmbolism {
	return &PulmonaryEmbolism{engine: engine}
}

func (c *PulmonaryEmbolism) Slug() string { return "pe" }
func (c *PulmonaryEmbolism) Name() string { return "Pulmonary Embolism" }
func (c *PulmonaryEmbolism) Definition() string {
	return "Obstruction of one or more pulmonary arteries, usually by embolised thrombus."
}
func (c *PulmonaryEmbolism) Aetiology() []string {
	return []string{"Deep vein thrombosis (DVT)"}
}
func (c *PulmonaryEmbolism) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{
		Modifiable:    []string{"Immobility", "Surgery", "OCP/HRT"},
		NonModifiable: []string{"Previous VTE", "Malignancy"},
	}
}
func (c *PulmonaryEmbolism) SignsSymptoms() []string {
	return []string{"Dyspnoea", "Pleuritic chest pain", "Tachypnoea", "Tachycardia"}
}
func (c *PulmonaryEmbolism) Complications() []string {
	return []string{"Right heart strain", "Collapse", "Death"}
}

// PEInvestigationParams are the Wells inputs plus the imaging constraints
// that select CTPA versus V/Q scanning.
type PEInvestigationParams struct {
	Wells               scoring.WellsPEParams `json:"wells"`
	RenalImpaired       bool                  `json:"renal_impaired"`
	CTPAContraindicated bool                  `json:"ctpa_contraindicated"`
}

// InvestigationPlan builds the investigation and initial management
// pathway for suspected PE. The start step branches on the Wells risk band
// the caller re-derives (or already holds) for this patient; imaging and
// D-dimer results enter as external-result keys further down.
func (c *PulmonaryEmbolism) InvestigationPlan(p PEInvestigationParams) (*pathway.Plan, error) {
	if p.Wells.HeartRate < 0 {
		return nil, domain.NewInvalidParameter("heart_rate",
			"heart rate cannot be negative", p.Wells.HeartRate)
	}

	wells := c.engine.WellsScorePE(p.Wells)

	imaging := domain.InvestigationRecommendation{
		Type: domain.CTPA, Urgency: domain.URGENCY_IMMEDIATE,
		Rationale: "Definitive imaging for PE",
	}
	if p.CTPAContraindicated || p.RenalImpaired {
		imaging = domain.InvestigationRecommendation{
			Type: domain.VQ_SCAN, Urgency: domain.URGENCY_IMMEDIATE,
			Rationale: "CTPA contraindicated or renal impairment: V/Q scan instead",
		}
	}

	interimAnticoagulation := domain.DrugRecommendation{
		Name: "Apixaban / Rivaroxaban", Class: domain.DOAC, Route: "PO",
		Rationale: "Interim therapeutic anticoagulation while awaiting imaging",
	}

	b := pathway.NewPlanBuilder(c.Name()).StartAt("ASSESS_RISK")

	b.AddStep(pathway.Step{
		ID:          "ASSESS_RISK",
		Description: "Assess pre-test probability (Wells score)",
		Details:     fmt.Sprintf("Score: %.1f, Risk: %s", wells.Score, wells.Risk),
		OutgoingEdges: map[string]string{
			domain.PE_UNLIKELY.String():        "PE_UNLIKELY_PATH",
			domain.PE_LIKELY_MODERATE.String(): "PE_LIKELY_PATH",
			domain.PE_LIKELY_HIGH.String():     "PE_LIKELY_PATH",
		},
	})

	b.AddStep(pathway.Step{
		ID:             "PE_LIKELY_PATH",
		Description:    "PE likely: anticoagulate and image",
		Drugs:          []domain.DrugRecommendation{interimAnticoagulation},
		Investigations: []domain.InvestigationRecommendation{imaging},
		OutgoingEdges:  map[string]string{domain.KeyProceed: "AWAIT_IMAGING"},
	})

	b.AddStep(pathway.Step{
		ID:          "AWAIT_IMAGING",
		Description: "Await imaging result",
		OutgoingEdges: map[string]string{
			domain.KeyImagingPositive: "PE_CONFIRMED",
			domain.KeyImagingNegative: "PE_RULED_OUT_CONSIDER_DVT",
		},
	})

	b.AddStep(pathway.Step{
		ID:          "PE_UNLIKELY_PATH",
		Description: "PE unlikely: D-dimer first",
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.D_DIMER, Urgency: domain.URGENCY_IMMEDIATE},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "AWAIT_D_DIMER"},
	})

	b.AddStep(pathway.Step{
		ID:          "AWAIT_D_DIMER",
		Description: "Await D-dimer result",
		OutgoingEdges: map[string]string{
			domain.KeyDDimerPositive: "D_DIMER_POSITIVE_PATH",
			domain.KeyDDimerNegative: "PE_RULED_OUT",
		},
	})

	b.AddStep(pathway.Step{
		ID:             "D_DIMER_POSITIVE_PATH",
		Description:    "D-dimer positive: proceed as PE likely",
		Drugs:          []domain.DrugRecommendation{interimAnticoagulation},
		Investigations: []domain.InvestigationRecommendation{imaging},
		OutgoingEdges:  map[string]string{domain.KeyProceed: "AWAIT_IMAGING"},
	})

	b.AddStep(pathway.Step{
		ID:          "PE_CONFIRMED",
		Description: "PE confirmed",
		Details:     "Continue or start therapeutic anticoagulation",
	})
	b.AddStep(pathway.Step{
		ID:          "PE_RULED_OUT",
		Description: "PE ruled out",
		Details:     "Stop anticoagulation; consider alternative diagnoses",
	})
	b.AddStep(pathway.Step{
		ID:          "PE_RULED_OUT_CONSIDER_DVT",
		Description: "PE ruled out on imaging, consider DVT",
		Details:     "Stop anticoagulation; proximal leg vein ultrasound if DVT still suspected",
	})

	return b.Build()
}
