package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinical-pathways-server/internal/audit"
	"github.com/clinical-pathways-server/internal/conditions"
	"github.com/clinical-pathways-server/internal/pathway"
)

func (s *Server) handleListConditions(c *gin.Context) {
	type entry struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	all := s.registry.All()
	entries := make([]entry, 0, len(all))
	for _, cond := range all {
		entries = append(entries, entry{Slug: cond.Slug(), Name: cond.Name()})
	}
	c.JSON(http.StatusOK, gin.H{"conditions": entries})
}

func (s *Server) handleGetCondition(c *gin.Context) {
	slug := c.Param("slug")

	if meta, ok := s.metaCache.Get(slug); ok {
		c.JSON(http.StatusOK, meta)
		return
	}

	cond, err := s.registry.Get(slug)
	if err != nil {
		s.writeError(c, err)
		return
	}

	meta := conditions.Describe(cond)
	s.metaCache.Add(slug, meta)
	c.JSON(http.StatusOK, meta)
}

func (s *Server) handleDiagnoseACS(c *gin.Context) {
	var params conditions.ACSDiagnosisParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	acs, err := s.acsCondition()
	if err != nil {
		s.writeError(c, err)
		return
	}

	acsType, consistent := acs.DiagnoseACSType(params)
	resp := acsDiagnosisResponse{Consistent: consistent, ACSType: acsType}
	outcome := "NOT_ACS"
	if consistent {
		outcome = string(acsType)
	}
	s.record(c, audit.KindScore, "acs_diagnosis", params, outcome, 0)
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSTEMIPlan(c *gin.Context) {
	var params conditions.STEMIPlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	acs, err := s.acsCondition()
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.respondPlan(c, "acs_stemi", params, func() (*pathway.Plan, error) {
		return acs.STEMIManagementPlan(params)
	})
}

func (s *Server) handleNSTEMIPlan(c *gin.Context) {
	var params conditions.NSTEMIPlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	acs, err := s.acsCondition()
	if err != nil {
		s.writeError(c, err)
		return
	}
	s.respondPlan(c, "acs_nstemi", params, func() (*pathway.Plan, error) {
		return acs.NSTEMIUAManagementPlan(params)
	})
}

func (s *Server) handlePEPlan(c *gin.Context) {
	var params conditions.PEInvestigationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("pe")
	if err != nil {
		s.writeError(c, err)
		return
	}
	pe := cond.(*conditions.PulmonaryEmbolism)
	s.respondPlan(c, "pe", params, func() (*pathway.Plan, error) {
		return pe.InvestigationPlan(params)
	})
}

func (s *Server) handleCOPDPlan(c *gin.Context) {
	var params conditions.COPDPlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("copd-exacerbation")
	if err != nil {
		s.writeError(c, err)
		return
	}
	copd := cond.(*conditions.COPDExacerbation)
	s.respondPlan(c, "copd_exacerbation", params, func() (*pathway.Plan, error) {
		return copd.ManagementPlan(params)
	})
}

func (s *Server) handleDKAPlan(c *gin.Context) {
	var params conditions.DKAPlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("dka")
	if err != nil {
		s.writeError(c, err)
		return
	}
	dka := cond.(*conditions.DiabeticKetoacidosis)
	s.respondPlan(c, "dka", params, func() (*pathway.Plan, error) {
		return dka.ManagementPlan(params)
	})
}

func (s *Server) handleRAPlan(c *gin.Context) {
	var params conditions.RAPlanParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("ra")
	if err != nil {
		s.writeError(c, err)
		return
	}
	ra := cond.(*conditions.RheumatoidArthritis)
	s.respondPlan(c, "ra", params, func() (*pathway.Plan, error) {
		return ra.ManagementPlan(params)
	})
}

func (s *Server) handleUCPlan(c *gin.Context) {
	var params conditions.UCInductionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("uc")
	if err != nil {
		s.writeError(c, err)
		return
	}
	uc := cond.(*conditions.UlcerativeColitis)
	s.respondPlan(c, "uc", params, func() (*pathway.Plan, error) {
		return uc.InduceRemissionPlan(params)
	})
}

func (s *Server) handleStrokePlan(c *gin.Context) {
	var params conditions.StrokeReperfusionParams
	if err := c.ShouldBindJSON(&params); err != nil {
		s.badRequest(c, err)
		return
	}

	cond, err := s.registry.Get("stroke")
	if err != nil {
		s.writeError(c, err)
		return
	}
	stroke := cond.(*conditions.IschaemicStroke)
	s.respondPlan(c, "stroke", params, func() (*pathway.Plan, error) {
		return stroke.ReperfusionPlan(params)
	})
}

// respondPlan runs one plan builder, audits the consult and writes the
// response. Validation advisories are returned alongside the plan so a
// client can flag unreachable branches without failing the request.
func (s *Server) respondPlan(c *gin.Context, subject string, params interface{}, build func() (*pathway.Plan, error)) {
	plan, err := build()
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.record(c, audit.KindPlan, subject, params, plan.StartStepID, len(plan.Steps))
	c.JSON(http.StatusOK, planResponse{
		Plan:       plan,
		Advisories: pathway.Validate(plan),
	})
}

func (s *Server) acsCondition() (*conditions.AcuteCoronarySyndrome, error) {
	cond, err := s.registry.Get("acs")
	if err != nil {
		return nil, err
	}
	return cond.(*conditions.AcuteCoronarySyndrome), nil
}
