package conditions

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

// Reperfusion strategy windows for STEMI.
const (
	stemiReperfusionWindowHours = 12.0

	// A GRACE score above this selects the invasive strategy for NSTEMI/UA.
	// An uncomputed score is treated as high risk, never as low.
	nstemiInvasiveGraceAbove = 3
)

// AcuteCoronarySyndrome covers STEMI, NSTEMI and unstable angina.
type AcuteCoronarySyndrome struct {
	engine *scoring.Engine
}

// NewAcuteCoronarySyndrome creates the ACS condition handler.
func NewAcuteCoronarySyndrome(engine *scoring.Engine) *AcuteCoronarySyndrome {
	return &AcuteCoronarySyndrome{engine: engine}
}

func (c *AcuteCoronarySyndrome) Slug() string { return "acs" }
func (c *AcuteCoronarySyndrome) Name() string { return "Acute Coronary Syndrome" }
func (c *AcuteCoronarySyndrome) Definition() string {
	return "Umbrella term for STEMI, NSTEMI and unstable angina."
}
func (c *AcuteCoronarySyndrome) Aetiology() []string {
	return []string{"Coronary artery disease", "Plaque rupture"}
}
func (c *AcuteCoronarySyndrome) RiskFactors() domain.RiskFactors {
	return domain.RiskFactors{
		Modifiable:    []string{"Smoking", "Hypertension", "Diabetes", "Obesity", "Hypercholesterolaemia"},
		NonModifiable: []string{"Age", "Male sex", "Family history"},
	}
}
func (c *AcuteCoronarySyndrome) SignsSymptoms() []string {
	return []string{"Chest pain (crushing, radiating)", "Dyspnoea", "Sweating", "Nausea"}
}
func (c *AcuteCoronarySyndrome) Complications() []string {
	return []string{"Arrhythmias", "Heart failure", "Cardiogenic shock", "Rupture"}
}

// ACSDiagnosisParams are the ECG and biomarker findings that discriminate
// between the ACS types.
type ACSDiagnosisParams struct {
	STElevation            bool `json:"st_elevation"`
	TroponinRaised         bool `json:"troponin_raised"`
	STDepressionOrTWI      bool `json:"st_depression_or_twi"`
	ChestPainSuspiciousACS bool `json:"chest_pain_suspicious_acs"`
}

// DiagnoseACSType classifies the presentation. The second return value is
// false when the presentation is not consistent with ACS at all.
func (c *AcuteCoronarySyndrome) DiagnoseACSType(p ACSDiagnosisParams) (domain.ACSType, bool) {
	if !p.ChestPainSuspiciousACS {
		return "", false
	}
	if p.STElevation {
		return domain.STEMI, true
	}
	if p.TroponinRaised {
		return domain.NSTEMI, true
	}
	return domain.UNSTABLE_ANGINA, true
}

// STEMIPlanParams select the reperfusion strategy.
type STEMIPlanParams struct {
	SymptomOnsetHours        float64                  `json:"symptom_onset_hours"`
	PCIAvailableWithin120Min bool                     `json:"pci_available_within_120min"`
	HeartFailureSigns        domain.HeartFailureSigns `json:"heart_failure_signs"`
}

// STEMIManagementPlan builds the STEMI management pathway. The reperfusion
// strategy is decided from the parameters, so the plan holds only the
// strategy that applies to this presentation.
func (c *AcuteCoronarySyndrome) STEMIManagementPlan(p STEMIPlanParams) (*pathway.Plan, error) {
	if p.SymptomOnsetHours < 0 {
		return nil, domain.NewInvalidParameter("symptom_onset_hours",
			"symptom onset cannot be in the future", p.SymptomOnsetHours)
	}
	killip, err := c.engine.ClassifyKillip(p.HeartFailureSigns)
	if err != nil {
		return nil, domain.NewInvalidParameter("heart_failure_signs",
			"not a documented heart failure sign category", string(p.HeartFailureSigns))
	}

	var strategyID string
	switch {
	case p.SymptomOnsetHours <= stemiReperfusionWindowHours && p.PCIAvailableWithin120Min:
		strategyID = "PCI"
	case p.SymptomOnsetHours <= stemiReperfusionWindowHours:
		strategyID = "LYSIS"
	default:
		strategyID = "LATE"
	}

	b := pathway.NewPlanBuilder("STEMI").StartAt("INITIAL")

	initialActions := []domain.ActionRecommendation{
		{Description: "Continuous cardiac monitoring"},
	}
	if killip == domain.KILLIP_CLASS_IV {
		initialActions = append(initialActions, domain.ActionRecommendation{
			Description: "Cardiogenic shock: urgent senior cardiology review",
			Details:     "Consider inotropic support and mechanical circulatory support",
		})
	}

	b.AddStep(pathway.Step{
		ID:          "INITIAL",
		Description: "Initial management",
		Details:     killip.Description(),
		Actions:     initialActions,
		Drugs: []domain.DrugRecommendation{
			{Name: "Aspirin", Class: domain.ANTIPLATELET, Dose: "300 mg", Route: "PO", Rationale: "Loading dose"},
			{Name: "GTN", Class: domain.NITRATE, Route: "SL", Rationale: "Symptom relief if SBP adequate"},
			{Name: "Morphine", Class: domain.OPIOID, Route: "IV", Rationale: "Analgesia if pain severe"},
		},
		Investigations: []domain.InvestigationRecommendation{
			{Type: domain.ECG, Urgency: domain.URGENCY_IMMEDIATE, Rationale: "Confirm ST elevation, monitor"},
			{Type: domain.TROPONIN, Urgency: domain.URGENCY_IMMEDIATE},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "REPERFUSION"},
	})

	b.AddStep(pathway.Step{
		ID:          "REPERFUSION",
		Description: "Reperfusion strategy",
		Details: fmt.Sprintf("Symptom onset %.1f h; primary PCI available within 120 min: %t",
			p.SymptomOnsetHours, p.PCIAvailableWithin120Min),
		OutgoingEdges: map[string]string{domain.KeyProceed: strategyID},
	})

	switch strategyID {
	case "PCI":
		b.AddStep(pathway.Step{
			ID:          "PCI",
			Description: "Primary PCI",
			Details:     "Preferred reperfusion: presentation within 12 h and PCI deliverable within 120 min",
			Investigations: []domain.InvestigationRecommendation{
				{Type: domain.CORONARY_ANGIOGRAPHY, Urgency: domain.URGENCY_IMMEDIATE},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "SECONDARY"},
		})
	case "LYSIS":
		b.AddStep(pathway.Step{
			ID:          "LYSIS",
			Description: "Fibrinolysis",
			Details:     "PCI not deliverable within 120 min; give fibrinolytic unless contraindicated",
			Drugs: []domain.DrugRecommendation{
				{Name: "Alteplase / Tenecteplase", Class: domain.FIBRINOLYTIC, Route: "IV"},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "SECONDARY"},
		})
	case "LATE":
		b.AddStep(pathway.Step{
			ID:            "LATE",
			Description:   "Late presentation management",
			Details:       "Presentation beyond 12 h; medical management, angiography if ongoing ischaemia",
			OutgoingEdges: map[string]string{domain.KeyProceed: "SECONDARY"},
		})
	}

	b.AddStep(secondaryPreventionStep())

	return b.Build()
}

// NSTEMIPlanParams select the NSTEMI/unstable angina strategy. GraceKnown
// is false when the GRACE score could not be computed; the plan then takes
// the invasive path, never the conservative one.
type NSTEMIPlanParams struct {
	GraceScore       int  `json:"grace_score"`
	GraceKnown       bool `json:"grace_known"`
	HighBleedingRisk bool `json:"high_bleeding_risk"`
}

// NSTEMIUAManagementPlan builds the NSTEMI/unstable angina pathway.
func (c *AcuteCoronarySyndrome) NSTEMIUAManagementPlan(p NSTEMIPlanParams) (*pathway.Plan, error) {
	invasive := !p.GraceKnown || p.GraceScore > nstemiInvasiveGraceAbove

	anticoagulant := domain.DrugRecommendation{
		Name: "Fondaparinux", Class: domain.ANTICOAGULANT, Route: "SC",
		Rationale: "Unless angiography planned within 24 h",
	}
	if p.HighBleedingRisk {
		anticoagulant = domain.DrugRecommendation{
			Name: "Unfractionated heparin", Class: domain.UFH, Route: "IV",
			Rationale: "Shorter half-life preferred with high bleeding risk",
		}
	}

	b := pathway.NewPlanBuilder("NSTEMI/Unstable Angina").StartAt("INITIAL")

	b.AddStep(pathway.Step{
		ID:          "INITIAL",
		Description: "Initial management",
		Drugs: []domain.DrugRecommendation{
			{Name: "Aspirin", Class: domain.ANTIPLATELET, Dose: "300 mg", Route: "PO"},
			anticoagulant,
			{Name: "GTN", Class: domain.NITRATE, Route: "SL", Rationale: "Anti-anginal"},
		},
		OutgoingEdges: map[string]string{domain.KeyProceed: "RISK_STRAT"},
	})

	strategyID := "CONSERVATIVE"
	details := fmt.Sprintf("GRACE score %d: low risk", p.GraceScore)
	if invasive {
		strategyID = "INVASIVE"
		if p.GraceKnown {
			details = fmt.Sprintf("GRACE score %d: intermediate or high risk", p.GraceScore)
		} else {
			details = "GRACE score not computable: treated as high risk"
		}
	}

	b.AddStep(pathway.Step{
		ID:            "RISK_STRAT",
		Description:   "Risk stratification (GRACE score)",
		Details:       details,
		OutgoingEdges: map[string]string{domain.KeyProceed: strategyID},
	})

	if invasive {
		b.AddStep(pathway.Step{
			ID:          "INVASIVE",
			Description: "Invasive strategy",
			Investigations: []domain.InvestigationRecommendation{
				{Type: domain.CORONARY_ANGIOGRAPHY, Urgency: domain.URGENCY_URGENT, Details: "Within 72 h, sooner if unstable"},
			},
			OutgoingEdges: map[string]string{domain.KeyProceed: "SECONDARY"},
		})
	} else {
		b.AddStep(pathway.Step{
			ID:            "CONSERVATIVE",
			Description:   "Conservative strategy",
			Details:       "Medical management; ischaemia testing before discharge",
			OutgoingEdges: map[string]string{domain.KeyProceed: "SECONDARY"},
		})
	}

	b.AddStep(secondaryPreventionStep())

	return b.Build()
}

func secondaryPreventionStep() pathway.Step {
	return pathway.Step{
		ID:          "SECONDARY",
		Description: "Secondary prevention",
		Drugs: []domain.DrugRecommendation{
			{Name: "Aspirin", Class: domain.ANTIPLATELET, Dose: "75 mg", Route: "PO", Duration: "Lifelong"},
			{Name: "Ticagrelor / Clopidogrel", Class: domain.ANTIPLATELET, Duration: "12 months"},
			{Name: "Atorvastatin", Class: domain.STATIN, Dose: "80 mg", Route: "PO"},
			{Name: "Bisoprolol", Class: domain.BETA_BLOCKER, Route: "PO"},
			{Name: "Ramipril", Class: domain.ACE_INHIBITOR, Route: "PO"},
		},
		Actions: []domain.ActionRecommendation{
			{Description: "Cardiac rehabilitation referral"},
			{Description: "Smoking cessation support"},
		},
	}
}
