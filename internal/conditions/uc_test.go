package conditions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/pathway"
)

func TestUCInductionPlanSeverePathway(t *testing.T) {
	c := NewUlcerativeColitis()
	plan, err := c.InduceRemissionPlan(UCInductionParams{
		Extent:   domain.EXTENSIVE_COLITIS,
		Severity: domain.UC_SEVERE,
	})
	require.NoError(t, err)
	assert.Empty(t, pathway.Validate(plan))

	nextID, err := plan.Start().Next(domain.KeyProceed)
	require.NoError(t, err)
	assert.Equal(t, "ADMIT_SEVERE", nextID)

	// Non-responders at 72 hours escalate to rescue therapy, and rescue
	// failure ends at colectomy.
	assess, err := plan.Step("ASSESS_RESPONSE_SEVERE")
	require.NoError(t, err)
	nextID, err = assess.Next(domain.KeyNoImprovement)
	require.NoError(t, err)
	assert.Equal(t, "SECOND_LINE_SEVERE", nextID)

	rescue, err := plan.Step("ASSESS_RESPONSE_RESCUE")
	require.NoError(t, err)
	nextID, err = rescue.Next(domain.KeyNoResponse)
	require.NoError(t, err)
	surgery, err := plan.Step(nextID)
	require.NoError(t, err)
	assert.True(t, surgery.IsTerminal())
}

func TestUCInductionPlanProctitisPathway(t *testing.T) {
	c := NewUlcerativeColitis()
	plan, err := c.InduceRemissionPlan(UCInductionParams{
		Extent:   domain.PROCTITIS,
		Severity: domain.UC_MILD,
	})
	require.NoError(t, err)
	assert.Empty(t, pathway.Validate(plan))

	nextID, err := plan.Start().Next(domain.KeyProceed)
	require.NoError(t, err)
	topical, err := plan.Step(nextID)
	require.NoError(t, err)
	require.NotEmpty(t, topical.Drugs)
	assert.Equal(t, domain.AMINOSALICYLATE, topical.Drugs[0].Class)
	assert.Equal(t, "PR", topical.Drugs[0].Route)

	// Each 4-week review either reaches maintenance or escalates.
	for _, id := range []string{"ASSESS_RESPONSE_1", "ASSESS_RESPONSE_2", "ASSESS_RESPONSE_3"} {
		step, err := plan.Step(id)
		require.NoError(t, err)
		next, err := step.Next(domain.KeyRemission)
		require.NoError(t, err)
		assert.Equal(t, "CONSIDER_MAINTENANCE", next)
		_, err = step.Next(domain.KeyNoResponse)
		assert.NoError(t, err)
	}
}

func TestUCInductionPlanLeftSidedPathwayAddsOralASA(t *testing.T) {
	c := NewUlcerativeColitis()
	plan, err := c.InduceRemissionPlan(UCInductionParams{
		Extent:   domain.LEFT_SIDED_COLITIS,
		Severity: domain.UC_MODERATE,
	})
	require.NoError(t, err)
	assert.Empty(t, pathway.Validate(plan))

	topical, err := plan.Step("TOPICAL_ASA")
	require.NoError(t, err)
	nextID, err := topical.Next(domain.KeyProceed)
	require.NoError(t, err)
	assert.Equal(t, "ADD_ORAL_ASA", nextID)
}

func TestUCInductionPlanRejectsUnknownEnums(t *testing.T) {
	c := NewUlcerativeColitis()

	_, err := c.InduceRemissionPlan(UCInductionParams{
		Extent:   domain.UCExtent("DUODENAL"),
		Severity: domain.UC_MILD,
	})
	ipe, ok := domain.IsInvalidParameter(err)
	require.True(t, ok)
	assert.Equal(t, "extent", ipe.Field)

	_, err = c.InduceRemissionPlan(UCInductionParams{
		Extent:   domain.PROCTITIS,
		Severity: domain.UCSeverity("FULMINANT"),
	})
	ipe, ok = domain.IsInvalidParameter(err)
	require.True(t, ok)
	assert.Equal(t, "severity", ipe.Field)
}
