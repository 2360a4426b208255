package pathway

import (
	"errors"
	"fmt"
	"strings"
)

// Traversal signals. Callers must be able to tell the end of a plan apart
// from a branch-key mismatch, so the two cases carry distinct sentinels.
var (
	// ErrUnknownStep indicates a step id that is not present in the plan.
	ErrUnknownStep = errors.New("step not found in plan")

	// ErrTerminalStep indicates the step has no outgoing edges at all.
	ErrTerminalStep = errors.New("step is terminal")

	// ErrUnknownBranch indicates the step has outgoing edges but none
	// keyed by the requested discriminant.
	ErrUnknownBranch = errors.New("branch key not recognized for step")
)

// StructuralViolationError is returned by PlanBuilder.Build when the
// assembled plan breaks a structural invariant. It is a builder bug, not
// a runtime condition, and carries every violation found in one pass.
type StructuralViolationError struct {
	ConditionName string
	Violations    []Violation
}

func (e *StructuralViolationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("plan for %s violates structural invariants: %s",
		e.ConditionName, strings.Join(msgs, "; "))
}
