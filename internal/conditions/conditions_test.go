package conditions

import (
	"errors"
	"testing"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
	"github.com/clinical-pathways-server/internal/scoring"
)

func newTestRegistry() *Registry {
	return NewRegistry(nil, scoring.NewEngine(nil))
}

func TestRegistryGet(t *testing.T) {
	r := newTestRegistry()

	for _, slug := range []string{"acs", "pe", "copd-exacerbation", "dka", "ra", "uc", "stroke"} {
		c, err := r.Get(slug)
		if err != nil {
			t.Errorf("Get(%s) failed: %v", slug, err)
			continue
		}
		if c.Slug() != slug {
			t.Errorf("Get(%s).Slug() = %s", slug, c.Slug())
		}
	}

	_, err := r.Get("gout")
	if !errors.Is(err, ErrUnknownCondition) {
		t.Errorf("Get(gout) = %v, want ErrUnknownCondition", err)
	}
}

func TestRegistryListingsPreserveOrder(t *testing.T) {
	r := newTestRegistry()

	slugs := r.Slugs()
	all := r.All()
	if len(slugs) != 7 || len(all) != 7 {
		t.Fatalf("got %d slugs and %d conditions, want 7 of each", len(slugs), len(all))
	}
	for i, c := range all {
		if c.Slug() != slugs[i] {
			t.Errorf("All()[%d].Slug() = %s, Slugs()[%d] = %s", i, c.Slug(), i, slugs[i])
		}
	}
}

func TestDescribeEveryCondition(t *testing.T) {
	for _, c := range newTestRegistry().All() {
		m := Describe(c)
		if m.Slug == "" || m.Name == "" || m.Definition == "" {
			t.Errorf("%s: incomplete identity in metadata: %+v", c.Slug(), m)
		}
		if len(m.SignsSymptoms) == 0 || len(m.Complications) == 0 {
			t.Errorf("%s: missing clinical metadata", c.Slug())
		}
		if len(m.RiskFactors.Modifiable)+len(m.RiskFactors.NonModifiable) == 0 {
			t.Errorf("%s: no risk factors", c.Slug())
		}
	}
}

// Every builder, across its parameter-dependent shapes, must produce a
// plan with no dangling edges, a member start step and no unreachable
// steps.
func TestAllBuildersProduceValidPlans(t *testing.T) {
	engine := scoring.NewEngine(nil)
	acs := NewAcuteCoronarySyndrome(engine)
	pe := NewPulmonaryEmbolism(engine)
	copd := NewCOPDExacerbation()
	dka := NewDiabeticKetoacidosis(engine)
	ra := NewRheumatoidArthritis()
	uc := NewUlcerativeColitis()
	stroke := NewIschaemicStroke()

	builders := map[string]func() (*pathway.Plan, error){
		"stemi pci": func() (*pathway.Plan, error) {
			return acs.STEMIManagementPlan(STEMIPlanParams{SymptomOnsetHours: 2, PCIAvailableWithin120Min: true, HeartFailureSigns: domain.HF_SIGNS_NONE})
		},
		"stemi lysis": func() (*pathway.Plan, error) {
			return acs.STEMIManagementPlan(STEMIPlanParams{SymptomOnsetHours: 2, HeartFailureSigns: domain.HF_SIGNS_RALES_OR_S3})
		},
		"stemi late": func() (*pathway.Plan, error) {
			return acs.STEMIManagementPlan(STEMIPlanParams{SymptomOnsetHours: 30, HeartFailureSigns: domain.HF_SIGNS_PULMONARY_OEDEMA})
		},
		"nstemi invasive": func() (*pathway.Plan, error) {
			return acs.NSTEMIUAManagementPlan(NSTEMIPlanParams{GraceScore: 9, GraceKnown: true})
		},
		"nstemi conservative": func() (*pathway.Plan, error) {
			return acs.NSTEMIUAManagementPlan(NSTEMIPlanParams{GraceScore: 1, GraceKnown: true, HighBleedingRisk: true})
		},
		"pe unlikely": func() (*pathway.Plan, error) {
			return pe.InvestigationPlan(PEInvestigationParams{})
		},
		"pe likely vq": func() (*pathway.Plan, error) {
			return pe.InvestigationPlan(PEInvestigationParams{
				Wells:               scoring.WellsPEParams{ClinicalSignsDVT: true, PEMostLikelyDiagnosis: true},
				CTPAContraindicated: true,
			})
		},
		"copd niv": func() (*pathway.Plan, error) {
			return copd.ManagementPlan(COPDPlanParams{OxygenSaturation: 88, SputumPurulent: true, RespiratoryAcidosis: true, PH: 7.30})
		},
		"copd icu": func() (*pathway.Plan, error) {
			return copd.ManagementPlan(COPDPlanParams{OxygenSaturation: 82, RespiratoryAcidosis: true, PH: 7.20})
		},
		"copd no acidosis": func() (*pathway.Plan, error) {
			return copd.ManagementPlan(COPDPlanParams{OxygenSaturation: 93, PH: 7.40})
		},
		"dka": func() (*pathway.Plan, error) {
			return dka.ManagementPlan(DKAPlanParams{WeightKg: 80, BloodGlucoseMmolL: 25, PH: 7.2, BicarbonateMmolL: 12, KetonesMmolL: 4, PotassiumMmolL: 5.0, SystolicBP: 110})
		},
		"ra biologic": func() (*pathway.Plan, error) {
			return ra.ManagementPlan(RAPlanParams{DAS28Score: 5.5, DAS28Known: true, FailedDMARDs: 2, TBScreeningNegative: true})
		},
		"ra switch mechanism": func() (*pathway.Plan, error) {
			return ra.ManagementPlan(RAPlanParams{DAS28Score: 5.8, DAS28Known: true, FailedDMARDs: 3, FailedTNFInhibitor: true, TBScreeningNegative: true})
		},
		"ra not eligible": func() (*pathway.Plan, error) {
			return ra.ManagementPlan(RAPlanParams{DAS28Score: 4.0, DAS28Known: true, FailedDMARDs: 1})
		},
		"uc severe": func() (*pathway.Plan, error) {
			return uc.InduceRemissionPlan(UCInductionParams{Extent: domain.PANCOLITIS, Severity: domain.UC_SEVERE})
		},
		"uc proctitis": func() (*pathway.Plan, error) {
			return uc.InduceRemissionPlan(UCInductionParams{Extent: domain.PROCTITIS, Severity: domain.UC_MODERATE})
		},
		"uc left sided": func() (*pathway.Plan, error) {
			return uc.InduceRemissionPlan(UCInductionParams{Extent: domain.LEFT_SIDED_COLITIS, Severity: domain.UC_MILD})
		},
		"stroke full reperfusion": func() (*pathway.Plan, error) {
			return stroke.ReperfusionPlan(StrokeReperfusionParams{TimeSinceOnsetHours: 2, NIHSSScore: 15, SystolicBP: 170, DiastolicBP: 90, ThrombectomyAvailable: true, TargetVesselOcclusion: true})
		},
		"stroke no reperfusion": func() (*pathway.Plan, error) {
			return stroke.ReperfusionPlan(StrokeReperfusionParams{TimeSinceOnsetHours: 30, NIHSSScore: 6})
		},
		"stroke thrombectomy only": func() (*pathway.Plan, error) {
			return stroke.ReperfusionPlan(StrokeReperfusionParams{TimeSinceOnsetHours: 8, NIHSSScore: 20, ThrombectomyAvailable: true, TargetVesselOcclusion: true})
		},
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			plan, err := build()
			if err != nil {
				t.Fatalf("builder failed: %v", err)
			}
			if violations := pathway.Validate(plan); len(violations) != 0 {
				t.Errorf("Validate() = %+v, want none", violations)
			}
			// The start step must be retrievable without panicking.
			if plan.Start().ID != plan.StartStepID {
				t.Errorf("Start().ID = %s, want %s", plan.Start().ID, plan.StartStepID)
			}
		})
	}
}
