package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clinical-pathways-server/internal/domain"
)

func TestGradeDKASeverity(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name   string
		params DKASeverityParams
		want   domain.DKASeverity
	}{
		{
			name:   "severe by pH",
			params: DKASeverityParams{PH: 6.9, BicarbonateMmolL: 12.0, KetonesMmolL: 6.0},
			want:   domain.DKA_SEVERE,
		},
		{
			name:   "severe by bicarbonate",
			params: DKASeverityParams{PH: 7.2, BicarbonateMmolL: 4.0, KetonesMmolL: 6.0},
			want:   domain.DKA_SEVERE,
		},
		{
			name:   "moderate by pH",
			params: DKASeverityParams{PH: 7.1, BicarbonateMmolL: 16.0, KetonesMmolL: 5.0},
			want:   domain.DKA_MODERATE,
		},
		{
			name:   "moderate by bicarbonate",
			params: DKASeverityParams{PH: 7.35, BicarbonateMmolL: 10.0, KetonesMmolL: 5.0},
			want:   domain.DKA_MODERATE,
		},
		{
			name:   "mild",
			params: DKASeverityParams{PH: 7.32, BicarbonateMmolL: 18.0, KetonesMmolL: 3.5},
			want:   domain.DKA_MILD,
		},
		{
			name: "pH exactly at severe threshold grades moderate",
			// Threshold comparisons are strict: 7.0 is not < 7.0.
			params: DKASeverityParams{PH: 7.0, BicarbonateMmolL: 16.0, KetonesMmolL: 5.0},
			want:   domain.DKA_MODERATE,
		},
		{
			name:   "extreme values remain gradeable",
			params: DKASeverityParams{PH: 6.2, BicarbonateMmolL: -1.0, KetonesMmolL: 0.0},
			want:   domain.DKA_SEVERE,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.GradeDKASeverity(tt.params)
			assert.Equal(t, tt.want, result.Severity)
		})
	}
}
