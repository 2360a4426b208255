package conditions

import (
	"testing"

	"github.com/clinical-pathways-server/internal/domain"
)

func TestStrokeReperfusionPlanICHBranch(t *testing.T) {
	c := NewIschaemicStroke()
	plan, err := c.ReperfusionPlan(StrokeReperfusionParams{
		TimeSinceOnsetHours:   3,
		NIHSSScore:            15,
		ThrombectomyAvailable: true,
		TargetVesselOcclusion: true,
	})
	if err != nil {
		t.Fatalf("ReperfusionPlan() failed: %v", err)
	}

	check, err := plan.Step("CHECK_HAEMORRHAGE")
	if err != nil {
		t.Fatalf("Step(CHECK_HAEMORRHAGE) failed: %v", err)
	}

	nextID, err := check.Next(domain.KeyICHPresent)
	if err != nil {
		t.Fatalf("Next(ICH_PRESENT) failed: %v", err)
	}
	haem, err := plan.Step(nextID)
	if err != nil {
		t.Fatalf("Step(%s) failed: %v", nextID, err)
	}
	if !haem.IsTerminal() {
		t.Error("haemorrhage management should end the reperfusion pathway")
	}

	if _, err := check.Next(domain.KeyICHAbsent); err != nil {
		t.Errorf("Next(ICH_ABSENT) failed: %v", err)
	}
}

func TestStrokeReperfusionPlanFullWalk(t *testing.T) {
	c := NewIschaemicStroke()
	plan, err := c.ReperfusionPlan(StrokeReperfusionParams{
		TimeSinceOnsetHours:   2,
		NIHSSScore:            18,
		ThrombectomyAvailable: true,
		TargetVesselOcclusion: true,
	})
	if err != nil {
		t.Fatalf("ReperfusionPlan() failed: %v", err)
	}

	// Eligible for both therapies: lysis then thrombectomy then ward care.
	keys := []string{domain.KeyProceed, domain.KeyICHAbsent, domain.KeyProceed,
		domain.KeyProceed, domain.KeyProceed, domain.KeyProceed}
	wantPath := []string{"CHECK_HAEMORRHAGE", "THROMBOLYSIS_DECISION", "OFFER_THROMBOLYSIS",
		"THROMBECTOMY_DECISION", "OFFER_THROMBECTOMY", "POST_REPERFUSION_CARE"}

	step := plan.Start()
	for i, key := range keys {
		nextID, err := step.Next(key)
		if err != nil {
			t.Fatalf("Next(%s) at %s failed: %v", key, step.ID, err)
		}
		if nextID != wantPath[i] {
			t.Fatalf("step %d: got %s, want %s", i, nextID, wantPath[i])
		}
		step, err = plan.Step(nextID)
		if err != nil {
			t.Fatalf("Step(%s) failed: %v", nextID, err)
		}
	}
	if !step.IsTerminal() {
		t.Error("post-reperfusion care should be terminal")
	}
}

func TestStrokeReperfusionPlanRejectsBadInputs(t *testing.T) {
	c := NewIschaemicStroke()

	_, err := c.ReperfusionPlan(StrokeReperfusionParams{TimeSinceOnsetHours: -2, NIHSSScore: 10})
	if ipe, ok := domain.IsInvalidParameter(err); !ok || ipe.Field != "time_since_onset_hours" {
		t.Errorf("err = %v, want InvalidParameterError on time_since_onset_hours", err)
	}

	_, err = c.ReperfusionPlan(StrokeReperfusionParams{TimeSinceOnsetHours: 2, NIHSSScore: 50})
	if ipe, ok := domain.IsInvalidParameter(err); !ok || ipe.Field != "nihss_score" {
		t.Errorf("err = %v, want InvalidParameterError on nihss_score", err)
	}
}
