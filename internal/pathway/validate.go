package pathway

import (
	"fmt"
	"sort"
)

// ViolationKind labels one class of structural defect.
type ViolationKind string

const (
	ViolationMissingStart  ViolationKind = "MISSING_START_STEP"
	ViolationDuplicateStep ViolationKind = "DUPLICATE_STEP_ID"
	ViolationDanglingEdge  ViolationKind = "DANGLING_EDGE"

	// ViolationUnreachableStep is advisory: an unreachable step is a
	// builder bug, not a structural error, and never fails Build.
	ViolationUnreachableStep ViolationKind = "UNREACHABLE_STEP"
)

// Violation describes one structural defect found in a plan.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	StepID  string        `json:"step_id,omitempty"`
	Key     string        `json:"key,omitempty"`
	Target  string        `json:"target,omitempty"`
	Message string        `json:"message"`
}

// Validate checks a plan's structural invariants and flags unreachable
// steps. It exists for test suites and tooling; production traversal
// relies on PlanBuilder.Build having already enforced the hard invariants
// and never pays for a revalidation.
func Validate(p *Plan) []Violation {
	var violations []Violation

	if _, ok := p.Steps[p.StartStepID]; !ok {
		violations = append(violations, Violation{
			Kind:    ViolationMissingStart,
			StepID:  p.StartStepID,
			Message: fmt.Sprintf("start step %q not in plan", p.StartStepID),
		})
	}

	for id, step := range p.Steps {
		for key, target := range step.OutgoingEdges {
			if _, ok := p.Steps[target]; !ok {
				violations = append(violations, Violation{
					Kind:    ViolationDanglingEdge,
					StepID:  id,
					Key:     key,
					Target:  target,
					Message: fmt.Sprintf("step %q edge %q targets unknown step %q", id, key, target),
				})
			}
		}
	}

	for _, id := range unreachableSteps(p) {
		violations = append(violations, Violation{
			Kind:    ViolationUnreachableStep,
			StepID:  id,
			Message: fmt.Sprintf("step %q is not reachable from %q", id, p.StartStepID),
		})
	}

	sortViolations(violations)
	return violations
}

// unreachableSteps returns the ids of steps that no walk from the start
// step can reach. Cycles are legal, so this is a plain breadth-first
// traversal over the edge maps.
func unreachableSteps(p *Plan) []string {
	seen := make(map[string]bool, len(p.Steps))
	queue := []string{p.StartStepID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if seen[id] {
			continue
		}
		step, ok := p.Steps[id]
		if !ok {
			continue
		}
		seen[id] = true
		for _, target := range step.OutgoingEdges {
			queue = append(queue, target)
		}
	}

	var unreachable []string
	for id := range p.Steps {
		if !seen[id] {
			unreachable = append(unreachable, id)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}

func sortViolations(violations []Violation) {
	sort.Slice(violations, func(i, j int) bool {
		a, b := violations[i], violations[j]
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.StepID != b.StepID {
			return a.StepID < b.StepID
		}
		return a.Key < b.Key
	})
}
