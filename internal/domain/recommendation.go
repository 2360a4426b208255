package domain

// DrugRecommendation describes one drug-level actionable item within a plan
// step. It is an immutable value owned by exactly one step; order within the
// owning slice is clinically meaningful (first-line before second-line).
type DrugRecommendation struct {
	Name      string    `json:"name"`
	Class     DrugClass `json:"class,omitempty"`
	Dose      string    `json:"dose,omitempty"`
	Route     string    `json:"route,omitempty"` // e.g. "PO", "IV", "Nebulised", "SC"
	Rationale string    `json:"rationale,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Warnings  []string  `json:"warnings,omitempty"`
}

// InvestigationRecommendation describes one investigation to perform.
type InvestigationRecommendation struct {
	Type      InvestigationType `json:"type"`
	Details   string            `json:"details,omitempty"`
	Rationale string            `json:"rationale,omitempty"`
	Urgency   Urgency           `json:"urgency,omitempty"`
}

// ActionRecommendation describes a non-drug, non-investigation action such as
// "Admit to hospital" or "Assess VTE risk".
type ActionRecommendation struct {
	Description string `json:"description"`
	Details     string `json:"details,omitempty"`
}

// RiskFactors groups a condition's risk factors by modifiability.
type RiskFactors struct {
	Modifiable    []string `json:"modifiable,omitempty"`
	NonModifiable []string `json:"non_modifiable,omitempty"`
}
