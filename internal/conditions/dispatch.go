package conditions

import (
	"encoding/json"
	"fmt"

	"github.com/clinical-pathways-server/internal/pathway"
)

// UnknownPathwayError reports a pathway name no builder is registered for.
type UnknownPathwayError struct {
	Pathway string
}

func (e *UnknownPathwayError) Error() string {
	return fmt.Sprintf("unknown pathway %q", e.Pathway)
}

// PathwayNames lists the names accepted by BuildPlanJSON, in stable order.
func PathwayNames() []string {
	return []string{
		"acs/stemi",
		"acs/nstemi",
		"pe",
		"copd-exacerbation",
		"dka",
		"ra",
		"uc",
		"stroke",
	}
}

// BuildPlanJSON decodes raw parameters and invokes the named plan builder.
// It exists for generic entry points (the interactive walk, the command
// line) that receive parameters as JSON rather than as typed structs.
func (r *Registry) BuildPlanJSON(name string, raw json.RawMessage) (*pathway.Plan, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("pathway %q: params are required", name)
	}

	slug := name
	switch name {
	case "acs/stemi", "acs/nstemi":
		slug = "acs"
	}
	cond, err := r.Get(slug)
	if err != nil {
		return nil, &UnknownPathwayError{Pathway: name}
	}

	switch name {
	case "acs/stemi":
		var p STEMIPlanParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*AcuteCoronarySyndrome).STEMIManagementPlan(p)
	case "acs/nstemi":
		var p NSTEMIPlanParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*AcuteCoronarySyndrome).NSTEMIUAManagementPlan(p)
	case "pe":
		var p PEInvestigationParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*PulmonaryEmbolism).InvestigationPlan(p)
	case "copd-exacerbation":
		var p COPDPlanParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*COPDExacerbation).ManagementPlan(p)
	case "dka":
		var p DKAPlanParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*DiabeticKetoacidosis).ManagementPlan(p)
	case "ra":
		var p RAPlanParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*RheumatoidArthritis).ManagementPlan(p)
	case "uc":
		var p UCInductionParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*UlcerativeColitis).InduceRemissionPlan(p)
	case "stroke":
		var p StrokeReperfusionParams
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, err
		}
		return cond.(*IschaemicStroke).ReperfusionPlan(p)
	}
	return nil, &UnknownPathwayError{Pathway: name}
}
