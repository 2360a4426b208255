package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/middleware"
	"github.com/clinical-pathways-server/internal/pathway"
)

// errorResponse is the uniform error envelope. Field and Value are only set
// for parameter validation failures.
type errorResponse struct {
	Error         string      `json:"error"`
	Field         string      `json:"field,omitempty"`
	Value         interface{} `json:"value,omitempty"`
	CorrelationID string      `json:"correlation_id,omitempty"`
	Timestamp     string      `json:"timestamp"`
}

// killipRequest wraps the single enum input of the Killip classification.
type killipRequest struct {
	HeartFailureSigns domain.HeartFailureSigns `json:"heart_failure_signs"`
}

// das28InterpretRequest carries an externally computed DAS28 score.
type das28InterpretRequest struct {
	Score float64 `json:"score"`
}

// acsDiagnosisResponse reports the working diagnosis, or consistent=false
// when the presentation does not fit ACS at all.
type acsDiagnosisResponse struct {
	Consistent bool           `json:"consistent"`
	ACSType    domain.ACSType `json:"acs_type,omitempty"`
}

// planResponse wraps a built plan together with any advisory findings from
// structural validation.
type planResponse struct {
	Plan       *pathway.Plan       `json:"plan"`
	Advisories []pathway.Violation `json:"advisories,omitempty"`
}

// writeError maps domain errors onto transport status codes. Parameter
// failures are 422 so clients can distinguish them from malformed JSON (400).
func (s *Server) writeError(c *gin.Context, err error) {
	resp := errorResponse{
		Error:         err.Error(),
		CorrelationID: c.GetString(middleware.CorrelationIDKey),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusInternalServerError
	if ipe, ok := domain.IsInvalidParameter(err); ok {
		status = http.StatusUnprocessableEntity
		resp.Field = ipe.Field
		resp.Value = ipe.Value
	} else if errors.Is(err, domain.ErrUnimplementedScore) {
		status = http.StatusNotImplemented
	} else if errors.Is(err, conditions.ErrUnknownCondition) {
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.WithError(err).Error("Request failed")
	}
	c.JSON(status, resp)
}

// badRequest reports a malformed request body.
func (s *Server) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:         "invalid request body: " + err.Error(),
		CorrelationID: c.GetString(middleware.CorrelationIDKey),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	})
}

// record appends a consult record to the audit trail. Audit failures are
// logged, never surfaced: the clinical answer has already been computed.
func (s *Server) record(c *gin.Context, kind audit.RecordKind, subject string, params interface{}, outcome string, stepCount int) {
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to encode audit params")
		paramsJSON = []byte("{}")
	}

	rec := &audit.ConsultRecord{
		CorrelationID: c.GetString(middleware.CorrelationIDKey),
		Kind:          kind,
		Subject:       subject,
		Params:        string(paramsJSON),
		Outcome:       outcome,
		StepCount:     stepCount,
	}
	if err := s.audits.Save(c.Request.Context(), rec); err != nil {
		s.logger.WithError(err).Warn("Failed to save audit record")
	}
}
