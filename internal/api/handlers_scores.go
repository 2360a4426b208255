package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/domain"
	"github.com/clinical-pathways-server/internal/scoring"
)

func (s *Server) handleWellsPE(c *gin.Context) {
	var params scoring.WellsPEParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	result := s.engine.WellsScorePE(params)
	s.record(c, audit.KindScore, "wells_pe", params, string(result.Risk), 0)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleKillip(c *gin.Context) {
	var req killipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	class, err := s.engine.ClassifyKillip(req.HeartFailureSigns)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidHeartFailureSigns) {
			err = domain.NewInvalidParameter("heart_failure_signs",
				"not a recognized heart-failure sign category", string(req.HeartFailureSigns))
		}
		s.writeError(c, err)
		return
	}

	s.record(c, audit.KindScore, "killip", req, string(class), 0)
	c.JSON(http.StatusOK, gin.H{"killip_class": class})
}

func (s *Server) handleDKASeverity(c *gin.Context) {
	var params scoring.DKASeverityParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	result := s.engine.GradeDKASeverity(params)
	s.record(c, audit.KindScore, "dka_severity", params, string(result.Severity), 0)
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleUCSeverity(c *gin.Context) {
	var params scoring.UCSeverityParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	result := s.engine.AssessUCSeverity(params)
	s.record(c, audit.KindScore, "uc_severity", params, string(result.Severity), 0)
	c.JSON(http.StatusOK, result)
}

// handleDAS28 always reports 501: the composite formula is not part of the
// encoded guideline text, and absence of a score must never read as
// remission.
func (s *Server) handleDAS28(c *gin.Context) {
	var params scoring.DAS28Params
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	score, err := s.engine.CalculateDAS28(params)
	if err != nil {
		s.writeError(c, err)
		return
	}

	level := scoring.InterpretDAS28(score)
	s.record(c, audit.KindScore, "das28", params, string(level), 0)
	c.JSON(http.StatusOK, gin.H{"score": score, "activity_level": level})
}

func (s *Server) handleInterpretDAS28(c *gin.Context) {
	var req das28InterpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, err)
		return
	}

	level := scoring.InterpretDAS28(req.Score)
	s.record(c, audit.KindScore, "das28_interpret", req, string(level), 0)
	c.JSON(http.StatusOK, gin.H{"activity_level": level})
}

// handleGrace always reports 501, for the same reason as handleDAS28.
func (s *Server) handleGrace(c *gin.Context) {
	var params scoring.GraceParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	score, err := s.engine.GraceScore(params)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.record(c, audit.KindScore, "grace", params, "scored", 0)
	c.JSON(http.StatusOK, gin.H{"score": score})
}
