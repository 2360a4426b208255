// Package scoring implements the deterministic clinical classifiers used as
// branch discriminants in decision plans. Every function maps explicit,
// named scalar inputs to a score and/or a classification from a closed
// enumeration; none of them reads shared state or depends on a patient
// record aggregate.
//
// Scores remain computable on physiologically extreme inputs - a negative
// heart rate produces an advisory log line, never a failure. The only error
// conditions are unimplemented formulas (GRACE, DAS28 calculation) and
// undocumented enumeration inputs (Killip sign category), both surfaced as
// distinguishable errors rather than sentinel values.
package scoring

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Engine evaluates guideline scoring functions. It holds no state beyond the
// logger used for implausible-input advisories, so a single Engine is safe
// for concurrent use.
type Engine struct {
	logger *logrus.Logger
}

// NewEngine creates a scoring engine. A nil logger disables advisories.
func NewEngine(logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Engine{logger: logger}
}

// advise emits a non-fatal advisory about physiologically implausible input.
// The score is still computed; the advisory exists so data-entry defects are
// visible without making extreme values unscorable.
func (e *Engine) advise(score, field string, value interface{}, reason string) {
	e.logger.WithFields(logrus.Fields{
		"score": score,
		"field": field,
		"value": value,
	}).Warn(reason)
}
