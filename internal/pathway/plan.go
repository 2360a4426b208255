// Package pathway models a clinical guideline as a navigable decision
// graph. A Plan holds uniquely-identified Steps; each Step carries its
// recommendations and a string-keyed map of outgoing edges. The graph never
// evaluates clinical predicates itself: the caller decides which
// discriminant key applies (typically by running a scoring function) and
// advances by key lookup.
package pathway

import (
	"fmt"

	"github.com/clinical-pathways-server/internal/domain"
)

// Step is one node of a decision graph. The discriminant keys of
// OutgoingEdges are the classification names produced by the scoring
// function the builder branched on at this point, or builder-chosen
// condition labels such as CONTRAINDICATED. A terminal step has an empty
// edge map. Steps are value-copied on retrieval and must not be mutated
// after the owning Plan is built.
type Step struct {
	ID             string                               `json:"id"`
	Description    string                               `json:"description"`
	Details        string                               `json:"details,omitempty"`
	Drugs          []domain.DrugRecommendation          `json:"drugs,omitempty"`
	Investigations []domain.InvestigationRecommendation `json:"investigations,omitempty"`
	Actions        []domain.ActionRecommendation        `json:"actions,omitempty"`
	OutgoingEdges  map[string]string                    `json:"outgoing_edges"`
}

// IsTerminal reports whether the step ends the pathway.
func (s Step) IsTerminal() bool {
	return len(s.OutgoingEdges) == 0
}

// Next resolves the target step id for the given discriminant key.
// It returns ErrTerminalStep when the step has no outgoing edges, and
// ErrUnknownBranch when edges exist but none match the key.
func (s Step) Next(key string) (string, error) {
	if s.IsTerminal() {
		return "", fmt.Errorf("step %s: %w", s.ID, ErrTerminalStep)
	}
	target, ok := s.OutgoingEdges[key]
	if !ok {
		return "", fmt.Errorf("step %s has no branch %q: %w", s.ID, key, ErrUnknownBranch)
	}
	return target, nil
}

// Plan is the root of a decision graph produced by a condition builder.
// It is assembled atomically through a PlanBuilder, is immutable after
// Build returns, and is never persisted: each builder invocation yields an
// independent instance.
type Plan struct {
	ConditionName string          `json:"condition_name"`
	StartStepID   string          `json:"start_step_id"`
	Steps         map[string]Step `json:"steps"`
}

// Step returns the step with the given id, or ErrUnknownStep.
func (p *Plan) Step(id string) (Step, error) {
	step, ok := p.Steps[id]
	if !ok {
		return Step{}, fmt.Errorf("plan for %s has no step %q: %w", p.ConditionName, id, ErrUnknownStep)
	}
	return step, nil
}

// Start returns the entry step of the plan. PlanBuilder.Build guarantees
// StartStepID is a member of Steps, so an absent start step means the Plan
// was assembled outside the builder; that is a programming error and Start
// panics rather than deferring the fault to traversal.
func (p *Plan) Start() Step {
	step, ok := p.Steps[p.StartStepID]
	if !ok {
		panic(fmt.Sprintf("plan for %s: start step %q not in plan", p.ConditionName, p.StartStepID))
	}
	return step
}
