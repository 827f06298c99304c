// controllers/reports_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ *Srv }

func NewReportController(s *Srv) *ReportController { return &ReportController{Srv: s} }

// Summary serves the circulation dashboard, read-through the Redis cache
// when one is configured.
func (rc *ReportController) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	if rc.ReportCache != nil {
		if s, err := rc.ReportCache.GetSummary(ctx); err == nil && s != nil {
			c.JSON(http.StatusOK, s)
			return
		}
	}

	s, err := rc.Reports.Summarize(ctx)
	if err != nil {
		respondErr(c, err)
		return
	}
	if rc.ReportCache != nil {
		_ = rc.ReportCache.SetSummary(ctx, s)
	}
	c.JSON(http.StatusOK, s)
}
