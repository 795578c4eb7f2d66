package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/covid-briefing/report"
	"github.com/bitmark-inc/covid-briefing/schema"
	"github.com/bitmark-inc/covid-briefing/store"
)

type triggerBriefingParams struct {
	Date  string `json:"date" binding:"required"`
	Force bool   `json:"force"`
}

// triggerBriefing runs the pipeline synchronously for the requested date
// and reports the outcome. A date that was already delivered comes back
// as a conflict unless force is set.
func (s *Server) triggerBriefing(c *gin.Context) {
	var params triggerBriefingParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	target, err := time.Parse(schema.DateFormat, params.Date)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	result, err := s.pipeline.Run(c.Request.Context(), target, params.Force)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, store.ErrBriefingAlreadySent):
		abortWithEncoding(c, http.StatusConflict, errorBriefingAlreadySent)
	case errors.Is(err, report.ErrInvalidPopulation):
		abortWithEncoding(c, http.StatusInternalServerError, errorReportDataQuality, err)
	default:
		shouldInterupt(err, c)
	}
}

// getBriefing returns an archived briefing record by its report date.
func (s *Server) getBriefing(c *gin.Context) {
	reportDate := c.Param("date")
	if _, err := time.Parse(schema.DateFormat, reportDate); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	record, err := s.store.GetBriefingRecord(reportDate)
	if errors.Is(err, store.ErrBriefingNotFound) {
		abortWithEncoding(c, http.StatusNotFound, errorBriefingNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, record)
}
