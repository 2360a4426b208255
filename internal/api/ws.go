package api

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/pathway"
)

// walkStartRequest is the first client message of a walk session: which
// pathway to build and the parameters to build it with.
type walkStartRequest struct {
	Pathway string          `json:"pathway"`
	Params  json.RawMessage `json:"params"`
}

// walkMoveRequest is every subsequent client message: the branch key of the
// clinical finding that resolves the current decision point.
type walkMoveRequest struct {
	Key string `json:"key"`
}

// walkStepMessage is sent after the session starts and after every accepted
// move. Terminal is true on the final step; the server closes after it.
type walkStepMessage struct {
	Type     string       `json:"type"` // "step"
	Step     pathway.Step `json:"step"`
	Terminal bool         `json:"terminal"`
}

// walkErrorMessage reports a rejected start or move. Recoverable errors
// (an unknown branch key) keep the session open at the same step.
type walkErrorMessage struct {
	Type        string `json:"type"` // "error"
	Error       string `json:"error"`
	Recoverable bool   `json:"recoverable"`
}

// handleWalk drives an interactive traversal over a websocket. The server
// holds the plan and the current position; the client supplies one branch
// key per decision point as findings come in.
func (s *Server) handleWalk(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		s.logger.WithError(err).Warn("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	var start walkStartRequest
	if err := conn.ReadJSON(&start); err != nil {
		return
	}

	plan, err := s.buildWalkPlan(start)
	if err != nil {
		conn.WriteJSON(walkErrorMessage{Type: "error", Error: err.Error()})
		return
	}

	s.record(c, audit.KindPlan, "walk:"+start.Pathway, json.RawMessage(start.Params), plan.StartStepID, len(plan.Steps))

	current := plan.Start()
	if err := conn.WriteJSON(walkStepMessage{Type: "step", Step: current, Terminal: current.IsTerminal()}); err != nil {
		return
	}

	for !current.IsTerminal() {
		var move walkMoveRequest
		if err := conn.ReadJSON(&move); err != nil {
			return
		}

		nextID, err := current.Next(move.Key)
		if err != nil {
			recoverable := errors.Is(err, pathway.ErrUnknownBranch)
			if writeErr := conn.WriteJSON(walkErrorMessage{Type: "error", Error: err.Error(), Recoverable: recoverable}); writeErr != nil {
				return
			}
			if recoverable {
				continue
			}
			return
		}

		current, err = plan.Step(nextID)
		if err != nil {
			// Build guarantees edge targets exist, so this is a server bug.
			s.logger.WithError(err).WithField("step_id", nextID).Error("Walk reached a missing step")
			conn.WriteJSON(walkErrorMessage{Type: "error", Error: err.Error()})
			return
		}

		if err := conn.WriteJSON(walkStepMessage{Type: "step", Step: current, Terminal: current.IsTerminal()}); err != nil {
			return
		}
	}
}

// buildWalkPlan dispatches the start request to the matching plan builder.
// Pathway names mirror the POST /plans routes.
func (s *Server) buildWalkPlan(start walkStartRequest) (*pathway.Plan, error) {
	return s.registry.BuildPlanJSON(start.Pathway, start.Params)
}
