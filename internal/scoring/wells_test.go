package scoring

import (
	"testing"

	"github.com/clinical-pathways-server/internal/domain"
)

func TestWellsScorePE(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name      string
		params    WellsPEParams
		wantScore float64
		wantRisk  domain.WellsRiskPE
	}{
		{
			name:      "no risk factors",
			params:    WellsPEParams{HeartRate: 70},
			wantScore: 0.0,
			wantRisk:  domain.PE_UNLIKELY,
		},
		{
			name: "previous VTE only",
			params: WellsPEParams{
				HeartRate:       95,
				PreviousDVTOrPE: true,
			},
			wantScore: 1.5,
			wantRisk:  domain.PE_UNLIKELY,
		},
		{
			name: "all factors present",
			params: WellsPEParams{
				ClinicalSignsDVT:              true,
				PEMostLikelyDiagnosis:         true,
				HeartRate:                     110,
				RecentImmobilisationOrSurgery: true,
				PreviousDVTOrPE:               true,
				Haemoptysis:                   true,
				Malignancy:                    true,
			},
			wantScore: 12.5,
			wantRisk:  domain.PE_LIKELY_HIGH,
		},
		{
			name: "DVT signs with tachycardia and immobilisation",
			params: WellsPEParams{
				ClinicalSignsDVT:              true,
				PEMostLikelyDiagnosis:         true,
				HeartRate:                     110,
				RecentImmobilisationOrSurgery: true,
			},
			wantScore: 9.0,
			wantRisk:  domain.PE_LIKELY_HIGH,
		},
		{
			name: "heart rate at threshold does not score",
			params: WellsPEParams{
				HeartRate:   100,
				Haemoptysis: true,
			},
			wantScore: 1.0,
			wantRisk:  domain.PE_UNLIKELY,
		},
		{
			name: "moderate band lower boundary",
			params: WellsPEParams{
				Haemoptysis: true,
				Malignancy:  true,
			},
			wantScore: 2.0,
			wantRisk:  domain.PE_LIKELY_MODERATE,
		},
		{
			name: "high band lower boundary",
			params: WellsPEParams{
				ClinicalSignsDVT:      true,
				PEMostLikelyDiagnosis: true,
				HeartRate:             80,
			},
			wantScore: 6.0,
			wantRisk:  domain.PE_LIKELY_HIGH,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.WellsScorePE(tt.params)
			if result.Score != tt.wantScore {
				t.Errorf("score = %v, want %v", result.Score, tt.wantScore)
			}
			if result.Risk != tt.wantRisk {
				t.Errorf("risk = %s, want %s", result.Risk, tt.wantRisk)
			}
		})
	}
}

func TestWellsScorePEDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	params := WellsPEParams{
		ClinicalSignsDVT: true,
		HeartRate:        120,
	}

	first := engine.WellsScorePE(params)
	second := engine.WellsScorePE(params)
	if first != second {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestInterpretWellsScorePEBands(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.WellsRiskPE
	}{
		{0.0, domain.PE_UNLIKELY},
		{1.5, domain.PE_UNLIKELY},
		{1.9, domain.PE_UNLIKELY},
		{2.0, domain.PE_LIKELY_MODERATE},
		{4.5, domain.PE_LIKELY_MODERATE},
		{5.5, domain.PE_LIKELY_MODERATE},
		{6.0, domain.PE_LIKELY_HIGH},
		{12.5, domain.PE_LIKELY_HIGH},
	}

	for _, tt := range tests {
		if got := InterpretWellsScorePE(tt.score); got != tt.want {
			t.Errorf("InterpretWellsScorePE(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
