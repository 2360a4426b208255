package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 500
)

func (s *Server) handleListAudit(c *gin.Context) {
	limit := queryInt(c, "limit", defaultAuditPageSize)
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	offset := queryInt(c, "offset", 0)
	if limit <= 0 || offset < 0 {
		s.badRequest(c, errInvalidPaging)
		return
	}

	records, err := s.audits.List(c.Request.Context(), limit, offset)
	if err != nil {
		s.writeError(c, err)
		return
	}
	total, err := s.audits.Count(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (s *Server) handleExportAudit(c *gin.Context) {
	c.Header("Content-Type", "application/json")
	c.Header("Content-Disposition", `attachment; filename="audit-export.json"`)
	if err := s.audits.ExportJSON(c.Request.Context(), c.Writer); err != nil {
		s.logger.WithError(err).Error("Audit export failed")
	}
}

var errInvalidPaging = errors.New("limit must be positive and offset non-negative")

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
