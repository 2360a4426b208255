package domain

// Discriminant keys for edges whose branch selection is a boolean condition
// or external result rather than a scoring classification. The same string is
// used by the builder that writes the edge and by the caller that selects it;
// a mismatch shows up as a failed key lookup, never as a silently wrong
// branch.
const (
	// KeyProceed is the single edge of an unconditional step.
	KeyProceed = "PROCEED"

	KeyContraindicated    = "CONTRAINDICATED"
	KeyNotContraindicated = "NOT_CONTRAINDICATED"

	KeyImproved      = "IMPROVED"
	KeyNoImprovement = "NO_IMPROVEMENT"
	KeyRemission     = "REMISSION"
	KeyNoResponse    = "NO_RESPONSE"

	KeyImagingPositive = "IMAGING_POSITIVE"
	KeyImagingNegative = "IMAGING_NEGATIVE"
	KeyDDimerPositive  = "D_DIMER_POSITIVE"
	KeyDDimerNegative  = "D_DIMER_NEGATIVE"

	KeyICHPresent = "ICH_PRESENT"
	KeyICHAbsent  = "ICH_ABSENT"
)
