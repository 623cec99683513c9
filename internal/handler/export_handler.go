package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serdarsalim/timespent-sub000/internal/service"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
	"github.com/serdarsalim/timespent-sub000/pkg/response"
)

// ExportHandler streams downloadable documents.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

func (h *ExportHandler) send(c *gin.Context, data []byte, filename, mime string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, mime, data)
}

// ScheduleCSV godoc
// @Summary Download the schedule as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} response.Envelope
// @Router /exports/schedule.csv [get]
func (h *ExportHandler) ScheduleCSV(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	data, err := h.service.ScheduleCSV(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, data, "schedule.csv", "text/csv")
}

// RatingsCSV godoc
// @Summary Download the ratings as CSV
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 401 {object} response.Envelope
// @Router /exports/ratings.csv [get]
func (h *ExportHandler) RatingsCSV(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	data, err := h.service.RatingsCSV(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, data, "ratings.csv", "text/csv")
}

// WeekReportPDF godoc
// @Summary Download a one-week PDF report
// @Tags Exports
// @Produce application/pdf
// @Param week query string true "ISO week, e.g. 2024-W11"
// @Success 200 {string} string "PDF payload"
// @Failure 400 {object} response.Envelope
// @Router /exports/week-report.pdf [get]
func (h *ExportHandler) WeekReportPDF(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	week := c.Query("week")
	if week == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week query parameter required"))
		return
	}
	data, err := h.service.WeekReportPDF(c.Request.Context(), p, week)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, data, fmt.Sprintf("week-report-%s.pdf", week), "application/pdf")
}

// CalendarICS godoc
// @Summary Download the schedule as an iCalendar feed
// @Tags Exports
// @Produce text/calendar
// @Success 200 {string} string "ICS payload"
// @Failure 401 {object} response.Envelope
// @Router /exports/calendar.ics [get]
func (h *ExportHandler) CalendarICS(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	data, err := h.service.CalendarICS(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.send(c, data, "calendar.ics", "text/calendar")
}
