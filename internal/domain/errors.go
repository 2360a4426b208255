package domain

import (
	"errors"
	"fmt"
)

// InvalidParameterError reports a builder or scoring input that fails a
// guideline-meaningful precondition, identifying the offending field. The
// caller recovers by supplying corrected clinical data; no clinical default
// is ever substituted for it.
type InvalidParameterError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Field, e.Message)
}

// NewInvalidParameter creates an InvalidParameterError for the given field.
func NewInvalidParameter(field, message string, value interface{}) *InvalidParameterError {
	return &InvalidParameterError{Field: field, Message: message, Value: value}
}

// UnimplementedScoreError signals that a scoring function's formula is not
// specified by the guideline text. It is distinguishable from a computed
// zero: callers render "score not available" rather than omitting the score.
type UnimplementedScoreError struct {
	Score string `json:"score"`
}

// Error implements the error interface.
func (e *UnimplementedScoreError) Error() string {
	return fmt.Sprintf("score %s is not computable: calculation not specified by guideline text", e.Score)
}

// ErrUnimplementedScore is the sentinel all UnimplementedScoreError values
// match via errors.Is, so callers can test the category without knowing the
// score name.
var ErrUnimplementedScore = errors.New("score not computable")

// Is reports whether target is the unimplemented-score sentinel.
func (e *UnimplementedScoreError) Is(target error) bool {
	return target == ErrUnimplementedScore
}

// IsInvalidParameter reports whether err is an InvalidParameterError and, if
// so, returns it.
func IsInvalidParameter(err error) (*InvalidParameterError, bool) {
	var ipe *InvalidParameterError
	if errors.As(err, &ipe) {
		return ipe, true
	}
	return nil, false
}
