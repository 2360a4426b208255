package conditions

import (
	"testing"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

func newACSCondition() *AcuteCoronarySyndrome {
	return NewAcuteCoronarySyndrome(scoring.NewEngine(nil))
}

func TestDiagnoseACSType(t *testing.T) {
	tests := []struct {
		name   string
		params ACSDiagnosisParams
		want   domain.ACSType
		wantOK bool
	}{
		{
			name:   "st elevation is stemi",
			params: ACSDiagnosisParams{STElevation: true, TroponinRaised: true, ChestPainSuspiciousACS: true},
			want:   domain.STEMI,
			wantOK: true,
		},
		{
			name:   "raised troponin without st elevation is nstemi",
			params: ACSDiagnosisParams{TroponinRaised: true, ChestPainSuspiciousACS: true},
			want:   domain.NSTEMI,
			wantOK: true,
		},
		{
			name:   "suspicious pain alone is unstable angina",
			params: ACSDiagnosisParams{ChestPainSuspiciousACS: true},
			want:   domain.UNSTABLE_ANGINA,
			wantOK: true,
		},
		{
			name:   "st depression without troponin is unstable angina",
			params: ACSDiagnosisParams{STDepressionOrTWI: true, ChestPainSuspiciousACS: true},
			want:   domain.UNSTABLE_ANGINA,
			wantOK: true,
		},
		{
			name:   "no suspicious pain is not acs",
			params: ACSDiagnosisParams{STElevation: true},
			wantOK: false,
		},
	}

	c := newACSCondition()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.DiagnoseACSType(tt.params)
			if ok != tt.wantOK {
				t.Fatalf("ok = %t, want %t", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("type = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSTEMIPlanReperfusionStrategy(t *testing.T) {
	tests := []struct {
		name         string
		params       STEMIPlanParams
		wantStrategy string
	}{
		{
			name: "early presentation with pci capacity",
			params: STEMIPlanParams{
				SymptomOnsetHours:        2,
				PCIAvailableWithin120Min: true,
				HeartFailureSigns:        domain.HF_SIGNS_NONE,
			},
			wantStrategy: "PCI",
		},
		{
			name: "early presentation without pci capacity",
			params: STEMIPlanParams{
				SymptomOnsetHours: 2,
				HeartFailureSigns: domain.HF_SIGNS_NONE,
			},
			wantStrategy: "LYSIS",
		},
		{
			name: "late presentation",
			params: STEMIPlanParams{
				SymptomOnsetHours:        20,
				PCIAvailableWithin120Min: true,
				HeartFailureSigns:        domain.HF_SIGNS_NONE,
			},
			wantStrategy: "LATE",
		},
	}

	c := newACSCondition()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := c.STEMIManagementPlan(tt.params)
			if err != nil {
				t.Fatalf("STEMIManagementPlan() failed: %v", err)
			}

			reperfusion, err := plan.Step("REPERFUSION")
			if err != nil {
				t.Fatalf("Step(REPERFUSION) failed: %v", err)
			}
			nextID, err := reperfusion.Next(domain.KeyProceed)
			if err != nil {
				t.Fatalf("Next(PROCEED) failed: %v", err)
			}
			if nextID != tt.wantStrategy {
				t.Errorf("strategy = %s, want %s", nextID, tt.wantStrategy)
			}
			if violations := pathway.Validate(plan); len(violations) != 0 {
				t.Errorf("Validate() = %+v, want none", violations)
			}
		})
	}
}

func TestSTEMIPlanCardiogenicShockEscalation(t *testing.T) {
	c := newACSCondition()
	plan, err := c.STEMIManagementPlan(STEMIPlanParams{
		SymptomOnsetHours:        1,
		PCIAvailableWithin120Min: true,
		HeartFailureSigns:        domain.HF_SIGNS_CARDIOGENIC_SHOCK,
	})
	if err != nil {
		t.Fatalf("STEMIManagementPlan() failed: %v", err)
	}

	initial := plan.Start()
	if initial.Details != domain.KILLIP_CLASS_IV.Description() {
		t.Errorf("details = %q, want Killip class IV description", initial.Details)
	}
	if len(initial.Actions) < 2 {
		t.Errorf("cardiogenic shock should add an escalation action, got %+v", initial.Actions)
	}
}

func TestSTEMIPlanRejectsBadInputs(t *testing.T) {
	c := newACSCondition()

	_, err := c.STEMIManagementPlan(STEMIPlanParams{
		SymptomOnsetHours: -1,
		HeartFailureSigns: domain.HF_SIGNS_NONE,
	})
	if ipe, ok := domain.IsInvalidParameter(err); !ok || ipe.Field != "symptom_onset_hours" {
		t.Errorf("err = %v, want InvalidParameterError on symptom_onset_hours", err)
	}

	_, err = c.STEMIManagementPlan(STEMIPlanParams{
		SymptomOnsetHours: 1,
		HeartFailureSigns: domain.HeartFailureSigns("ORTHOPNOEA"),
	})
	if ipe, ok := domain.IsInvalidParameter(err); !ok || ipe.Field != "heart_failure_signs" {
		t.Errorf("err = %v, want InvalidParameterError on heart_failure_signs", err)
	}
}

func TestNSTEMIPlanRiskStratification(t *testing.T) {
	tests := []struct {
		name         string
		params       NSTEMIPlanParams
		wantStrategy string
	}{
		{
			name:         "high grace score goes invasive",
			params:       NSTEMIPlanParams{GraceScore: 8, GraceKnown: true},
			wantStrategy: "INVASIVE",
		},
		{
			name:         "low grace score goes conservative",
			params:       NSTEMIPlanParams{GraceScore: 2, GraceKnown: true},
			wantStrategy: "CONSERVATIVE",
		},
		{
			name:         "unknown grace score treated as high risk",
			params:       NSTEMIPlanParams{},
			wantStrategy: "INVASIVE",
		},
	}

	c := newACSCondition()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := c.NSTEMIUAManagementPlan(tt.params)
			if err != nil {
				t.Fatalf("NSTEMIUAManagementPlan() failed: %v", err)
			}
			riskStrat, err := plan.Step("RISK_STRAT")
			if err != nil {
				t.Fatalf("Step(RISK_STRAT) failed: %v", err)
			}
			nextID, err := riskStrat.Next(domain.KeyProceed)
			if err != nil {
				t.Fatalf("Next(PROCEED) failed: %v", err)
			}
			if nextID != tt.wantStrategy {
				t.Errorf("strategy = %s, want %s", nextID, tt.wantStrategy)
			}
			if violations := pathway.Validate(plan); len(violations) != 0 {
				t.Errorf("Validate() = %+v, want none", violations)
			}
		})
	}
}

func TestNSTEMIPlanBleedingRiskSwitchesAnticoagulant(t *testing.T) {
	c := newACSCondition()

	plan, err := c.NSTEMIUAManagementPlan(NSTEMIPlanParams{HighBleedingRisk: true})
	if err != nil {
		t.Fatalf("NSTEMIUAManagementPlan() failed: %v", err)
	}
	initial := plan.Start()

	hasUFH := false
	for _, d := range initial.Drugs {
		if d.Class == domain.UFH {
			hasUFH = true
		}
		if d.Name == "Fondaparinux" {
			t.Error("fondaparinux should be replaced when bleeding risk is high")
		}
	}
	if !hasUFH {
		t.Errorf("high bleeding risk should select unfractionated heparin, got %+v", initial.Drugs)
	}
}
