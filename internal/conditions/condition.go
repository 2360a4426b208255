// Package conditions implements one builder per supported clinical
// condition. Each builder takes explicit scalar parameters, calls the
// scoring engine where a guideline branches on a score, and assembles a
// decision graph. Builders never accept a patient aggregate: the caller
// destructures whatever record it holds into the named parameters a
// builder requires.
package conditions

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/scoring"
)

// ErrUnknownCondition indicates a condition slug with no registered handler.
var ErrUnknownCondition = errors.New("condition not registered")

// Condition is the static, parameter-free surface of a clinical condition:
// identity plus descriptive metadata. Plan construction lives on the
// concrete types because every condition takes different parameters.
type Condition interface {
	Slug() string
	Name() string
	Definition() string
	Aetiology() []string
	RiskFactors() domain.RiskFactors
	SignsSymptoms() []string
	Complications() []string
}

// Metadata is the serializable form of a condition's descriptive surface.
type Metadata struct {
	Slug          string             `json:"slug"`
	Name          string             `json:"name"`
	Definition    string             `json:"definition"`
	Aetiology     []string           `json:"aetiology"`
	RiskFactors   domain.RiskFactors `json:"risk_factors"`
	SignsSymptoms []string           `json:"signs_symptoms"`
	Complications []string           `json:"complications"`
}

// Describe collects a condition's metadata accessors into one value.
func Describe(c Condition) Metadata {
	return Metadata{
		Slug:          c.Slug(),
		Name:          c.Name(),
		Definition:    c.Definition(),
		Aetiology:     c.Aetiology(),
		RiskFactors:   c.RiskFactors(),
		SignsSymptoms: c.SignsSymptoms(),
		Complications: c.Complications(),
	}
}

// Registry holds the supported conditions keyed by slug, preserving
// registration order for listings.
type Registry struct {
	logger *logrus.Logger
	order  []string
	byName map[string]Condition
}

// NewRegistry creates a registry with every supported condition registered.
// The scoring engine is shared by the builders that branch on scores.
func NewRegistry(logger *logrus.Logger, engine *scoring.Engine) *Registry {
	r := &Registry{
		logger: logger,
		byName: make(map[string]Condition),
	}
	r.register(NewAcuteCoronarySyndrome(engine))
	r.register(NewPulmonaryEmbolism(engine))
	r.register(NewCOPDExacerbation())
	r.register(NewDiabeticKetoacidosis(engine))
	r.register(NewRheumatoidArthritis())
	r.register(NewUlcerativeColitis())
	r.register(NewIschaemicStroke())
	return r
}

func (r *Registry) register(c Condition) {
	if _, exists := r.byName[c.Slug()]; exists {
		panic(fmt.Sprintf("condition %q registered twice", c.Slug()))
	}
	r.order = append(r.order, c.Slug())
	r.byName[c.Slug()] = c
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{
			"slug": c.Slug(),
			"name": c.Name(),
		}).Debug("Registered condition")
	}
}

// Get returns the condition registered under slug.
func (r *Registry) Get(slug string) (Condition, error) {
	c, ok := r.byName[slug]
	if !ok {
		return nil, fmt.Errorf("condition %q: %w", slug, ErrUnknownCondition)
	}
	return c, nil
}

// Slugs returns the registered slugs in registration order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// All returns the registered conditions in registration order.
func (r *Registry) All() []Condition {
	out := make([]Condition, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.byName[slug])
	}
	return out
}
