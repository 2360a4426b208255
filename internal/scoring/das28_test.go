package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-pathways-server/internal/domain"
)

func TestCalculateDAS28IsExplicitlyUnimplemented(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.CalculateDAS28(DAS28Params{
		TenderJointCount28:  6,
		SwollenJointCount28: 4,
		ESRMmHr:             35,
		PatientGlobalVAS:    60,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnimplementedScore),
		"an unimplemented score must be distinguishable from a computed zero")

	var use *domain.UnimplementedScoreError
	require.True(t, errors.As(err, &use))
	assert.Equal(t, "DAS28", use.Score)
}

func TestGraceScoreIsExplicitlyUnimplemented(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.GraceScore(GraceParams{
		Age:         62,
		HeartRate:   88,
		SystolicBP:  135,
		KillipClass: domain.KILLIP_CLASS_I,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnimplementedScore))
}

func TestInterpretDAS28Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.RAActivityLevel
	}{
		{0.0, domain.RA_ACTIVITY_LOW},
		{3.2, domain.RA_ACTIVITY_LOW},
		{3.3, domain.RA_ACTIVITY_MODERATE},
		{5.1, domain.RA_ACTIVITY_MODERATE},
		{5.2, domain.RA_ACTIVITY_HIGH},
		{8.0, domain.RA_ACTIVITY_HIGH},
	}

	for _, tt := range tests {
		if got := InterpretDAS28(tt.score); got != tt.want {
			t.Errorf("InterpretDAS28(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
