package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-pathways-server/internal/conditions"
)

func dialWalk(t *testing.T) *websocket.Conn {
	t.Helper()

	server := httptest.NewServer(newTestServer(t).Router())
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/walk"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func startWalk(t *testing.T, conn *websocket.Conn, pathwayName string, params interface{}) walkStepMessage {
	t.Helper()

	raw, err := json.Marshal(params)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(walkStartRequest{Pathway: pathwayName, Params: raw}))

	var step walkStepMessage
	require.NoError(t, conn.ReadJSON(&step))
	require.Equal(t, "step", step.Type)
	return step
}

func TestWalk_DKAToResolution(t *testing.T) {
	conn := dialWalk(t)

	step := startWalk(t, conn, "dka", conditions.DKAPlanParams{
		WeightKg:          80,
		BloodGlucoseMmolL: 30,
		PH:                7.2,
		BicarbonateMmolL:  12,
		KetonesMmolL:      6,
		PotassiumMmolL:    4.0,
		SystolicBP:        130,
	})
	assert.False(t, step.Terminal)

	// Follow the single outgoing edge until the monitoring decision point.
	for len(step.Step.OutgoingEdges) == 1 {
		var key string
		for k := range step.Step.OutgoingEdges {
			key = k
		}
		require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: key}))
		require.NoError(t, conn.ReadJSON(&step))
		require.Equal(t, "step", step.Type)
	}

	require.Equal(t, "MONITOR_RESOLVE", step.Step.ID)

	// One cycle of no improvement stays on the same step.
	require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: "NO_IMPROVEMENT"}))
	require.NoError(t, conn.ReadJSON(&step))
	assert.Equal(t, "MONITOR_RESOLVE", step.Step.ID)

	// Improvement moves to the transition step.
	require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: "IMPROVED"}))
	require.NoError(t, conn.ReadJSON(&step))
	assert.Equal(t, "TRANSITION", step.Step.ID)
}

func TestWalk_UnknownBranchIsRecoverable(t *testing.T) {
	conn := dialWalk(t)

	step := startWalk(t, conn, "stroke", conditions.StrokeReperfusionParams{
		TimeSinceOnsetHours: 2.0,
		NIHSSScore:          10,
		SystolicBP:          140,
		DiastolicBP:         85,
	})
	require.False(t, step.Terminal)

	// Advance to the imaging decision point.
	for len(step.Step.OutgoingEdges) == 1 {
		var key string
		for k := range step.Step.OutgoingEdges {
			key = k
		}
		require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: key}))
		require.NoError(t, conn.ReadJSON(&step))
	}
	require.Equal(t, "CHECK_HAEMORRHAGE", step.Step.ID)

	// A key the decision point does not offer is rejected but survivable.
	require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: "D_DIMER_POSITIVE"}))
	var errMsg walkErrorMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.True(t, errMsg.Recoverable)

	// The session continues from the same step with a valid key.
	require.NoError(t, conn.WriteJSON(walkMoveRequest{Key: "ICH_PRESENT"}))
	require.NoError(t, conn.ReadJSON(&step))
	assert.Equal(t, "step", step.Type)
	assert.Equal(t, "MANAGE_HAEMORRHAGE", step.Step.ID)
	assert.True(t, step.Terminal)
}

func TestWalk_UnknownPathway(t *testing.T) {
	conn := dialWalk(t)

	require.NoError(t, conn.WriteJSON(walkStartRequest{
		Pathway: "gout",
		Params:  json.RawMessage(`{}`),
	}))

	var errMsg walkErrorMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.Contains(t, errMsg.Error, "unknown pathway")
}

func TestWalk_InvalidParams(t *testing.T) {
	conn := dialWalk(t)

	require.NoError(t, conn.WriteJSON(walkStartRequest{
		Pathway: "dka",
		Params:  json.RawMessage(`{"weight_kg": -1}`),
	}))

	var errMsg walkErrorMessage
	require.NoError(t, conn.ReadJSON(&errMsg))
	assert.Equal(t, "error", errMsg.Type)
	assert.False(t, errMsg.Recoverable)
}
