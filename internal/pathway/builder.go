package pathway

import "fmt"

// PlanBuilder assembles a Plan step by step. Build is the only way a
// structurally valid Plan escapes a condition builder: it checks start
// membership, duplicate ids and dangling edges in one pass and refuses to
// return a broken graph.
type PlanBuilder struct {
	conditionName string
	startStepID   string
	order         []string
	steps         map[string]Step
	duplicates    []string
}

// NewPlanBuilder creates a builder for the named condition.
func NewPlanBuilder(conditionName string) *PlanBuilder {
	return &PlanBuilder{
		conditionName: conditionName,
		steps:         make(map[string]Step),
	}
}

// StartAt records the entry step id. The step itself may be added before
// or after this call.
func (b *PlanBuilder) StartAt(id string) *PlanBuilder {
	b.startStepID = id
	return b
}

// AddStep registers a step. A repeated id is recorded and reported as a
// structural violation at Build time rather than silently overwriting.
func (b *PlanBuilder) AddStep(step Step) *PlanBuilder {
	if _, exists := b.steps[step.ID]; exists {
		b.duplicates = append(b.duplicates, step.ID)
		return b
	}
	b.order = append(b.order, step.ID)
	b.steps[step.ID] = step
	return b
}

// Build checks the structural invariants and returns the finished Plan.
// On violation it returns a StructuralViolationError listing everything
// found; no partial Plan is returned.
func (b *PlanBuilder) Build() (*Plan, error) {
	var violations []Violation

	for _, id := range b.duplicates {
		violations = append(violations, Violation{
			Kind:    ViolationDuplicateStep,
			StepID:  id,
			Message: fmt.Sprintf("step id %q added more than once", id),
		})
	}

	if b.startStepID == "" {
		violations = append(violations, Violation{
			Kind:    ViolationMissingStart,
			Message: "no start step declared",
		})
	} else if _, ok := b.steps[b.startStepID]; !ok {
		violations = append(violations, Violation{
			Kind:    ViolationMissingStart,
			StepID:  b.startStepID,
			Message: fmt.Sprintf("start step %q not in plan", b.startStepID),
		})
	}

	// Iterate in insertion order so violation reports are deterministic.
	for _, id := range b.order {
		step := b.steps[id]
		for key, target := range step.OutgoingEdges {
			if _, ok := b.steps[target]; !ok {
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

	if len(violations) > 0 {
		sortViolations(violations)
		return nil, &StructuralViolationError{
			ConditionName: b.conditionName,
			Violations:    violations,
		}
	}

	steps := make(map[string]Step, len(b.steps))
	for id, step := range b.steps {
		steps[id] = step
	}

	return &Plan{
		ConditionName: b.conditionName,
		StartStepID:   b.startStepID,
		Steps:         steps,
	}, nil
}
