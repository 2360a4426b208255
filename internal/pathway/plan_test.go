package pathway

import (
	"errors"
	"testing"

	"github.com/clinical-pathways-server/internal/domain"
)

func twoStepPlan(t *testing.T) *Plan {
	t.Helper()
	plan, err := NewPlanBuilder("Test Condition").
		StartAt("assess").
		AddStep(Step{
			ID:          "assess",
			Description: "Initial assessment",
			OutgoingEdges: map[string]string{
				"IMPROVED":       "discharge",
				"NO_IMPROVEMENT": "assess",
			},
		}).
		AddStep(Step{
			ID:          "discharge",
			Description: "Discharge with safety netting",
			Actions: []domain.ActionRecommendation{
				{Description: "Arrange follow-up"},
			},
		}).
		Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return plan
}

func TestPlanStep(t *testing.T) {
	plan := twoStepPlan(t)

	step, err := plan.Step("discharge")
	if err != nil {
		t.Fatalf("Step(discharge) failed: %v", err)
	}
	if step.Description != "Discharge with safety netting" {
		t.Errorf("unexpected description %q", step.Description)
	}

	_, err = plan.Step("no-such-step")
	if !errors.Is(err, ErrUnknownStep) {
		t.Errorf("Step(no-such-step) = %v, want ErrUnknownStep", err)
	}
}

func TestPlanStart(t *testing.T) {
	plan := twoStepPlan(t)
	if got := plan.Start().ID; got != "assess" {
		t.Errorf("Start().ID = %q, want assess", got)
	}
}

func TestPlanStartPanicsOnHandAssembledPlan(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Start() did not panic on a plan with a missing start step")
		}
	}()
	broken := &Plan{ConditionName: "Broken", StartStepID: "gone", Steps: map[string]Step{}}
	broken.Start()
}

func TestStepNext(t *testing.T) {
	plan := twoStepPlan(t)
	start := plan.Start()

	next, err := start.Next("IMPROVED")
	if err != nil {
		t.Fatalf("Next(IMPROVED) failed: %v", err)
	}
	if next != "discharge" {
		t.Errorf("Next(IMPROVED) = %q, want discharge", next)
	}

	// Guideline loops are legal: a step may route back to itself.
	next, err = start.Next("NO_IMPROVEMENT")
	if err != nil {
		t.Fatalf("Next(NO_IMPROVEMENT) failed: %v", err)
	}
	if next != "assess" {
		t.Errorf("Next(NO_IMPROVEMENT) = %q, want assess", next)
	}
}

func TestStepNextDistinguishesTerminalFromUnknownBranch(t *testing.T) {
	plan := twoStepPlan(t)

	start := plan.Start()
	_, err := start.Next("NOT_A_KEY")
	if !errors.Is(err, ErrUnknownBranch) {
		t.Errorf("unknown key on a branching step = %v, want ErrUnknownBranch", err)
	}
	if errors.Is(err, ErrTerminalStep) {
		t.Error("unknown-branch error must not also match ErrTerminalStep")
	}

	terminal, err := plan.Step("discharge")
	if err != nil {
		t.Fatalf("Step(discharge) failed: %v", err)
	}
	if !terminal.IsTerminal() {
		t.Fatal("discharge step should be terminal")
	}
	_, err = terminal.Next("NOT_A_KEY")
	if !errors.Is(err, ErrTerminalStep) {
		t.Errorf("any key on a terminal step = %v, want ErrTerminalStep", err)
	}
	if errors.Is(err, ErrUnknownBranch) {
		t.Error("terminal-step error must not also match ErrUnknownBranch")
	}
}
