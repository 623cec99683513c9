package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/service"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
	"github.com/serdarsalim/timespent-sub000/pkg/response"
)

// JournalHandler exposes the flat journal collections. Every PUT
// replaces its collection wholesale.
type JournalHandler struct {
	service *service.JournalService
}

// NewJournalHandler creates a new handler.
func NewJournalHandler(svc *service.JournalService) *JournalHandler {
	return &JournalHandler{service: svc}
}

// Ratings godoc
// @Summary List productivity ratings
// @Tags Journal
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /ratings [get]
func (h *JournalHandler) Ratings(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	out, err := h.service.Ratings(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// PutRatings godoc
// @Summary Replace productivity ratings
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body []models.Rating true "Ratings collection"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /ratings [put]
func (h *JournalHandler) PutRatings(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var ratings []models.Rating
	if err := c.ShouldBindJSON(&ratings); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid ratings payload"))
		return
	}
	if err := h.service.SaveRatings(c.Request.Context(), p, ratings); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// WeeklyNotes godoc
// @Summary List weekly notes
// @Tags Journal
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /weekly-notes [get]
func (h *JournalHandler) WeeklyNotes(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	out, err := h.service.WeeklyNotes(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// PutWeeklyNotes godoc
// @Summary Replace weekly notes
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body []models.WeeklyNote true "Weekly notes collection"
// @Success 204 {object} response.Envelope
// @Router /weekly-notes [put]
func (h *JournalHandler) PutWeeklyNotes(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var notes []models.WeeklyNote
	if err := c.ShouldBindJSON(&notes); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notes payload"))
		return
	}
	if err := h.service.SaveWeeklyNotes(c.Request.Context(), p, notes); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// MonthNotes godoc
// @Summary List month notes
// @Tags Journal
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /month-notes [get]
func (h *JournalHandler) MonthNotes(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	out, err := h.service.MonthNotes(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// PutMonthNotes godoc
// @Summary Replace month notes
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body []models.MonthNote true "Month notes collection"
// @Success 204 {object} response.Envelope
// @Router /month-notes [put]
func (h *JournalHandler) PutMonthNotes(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var notes []models.MonthNote
	if err := c.ShouldBindJSON(&notes); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notes payload"))
		return
	}
	if err := h.service.SaveMonthNotes(c.Request.Context(), p, notes); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// FocusAreas godoc
// @Summary List focus areas
// @Tags Journal
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /focus-areas [get]
func (h *JournalHandler) FocusAreas(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	out, err := h.service.FocusAreas(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// PutFocusAreas godoc
// @Summary Replace focus areas
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body []models.FocusArea true "Focus area collection"
// @Success 204 {object} response.Envelope
// @Router /focus-areas [put]
func (h *JournalHandler) PutFocusAreas(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var areas []models.FocusArea
	if err := c.ShouldBindJSON(&areas); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid focus areas payload"))
		return
	}
	if err := h.service.SaveFocusAreas(c.Request.Context(), p, areas); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DayOffs godoc
// @Summary List day-offs
// @Tags Journal
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /day-offs [get]
func (h *JournalHandler) DayOffs(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	out, err := h.service.DayOffs(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, out)
}

// PutDayOffs godoc
// @Summary Replace day-offs
// @Tags Journal
// @Accept json
// @Produce json
// @Param payload body []models.DayOff true "Day-off collection"
// @Success 204 {object} response.Envelope
// @Router /day-offs [put]
func (h *JournalHandler) PutDayOffs(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var days []models.DayOff
	if err := c.ShouldBindJSON(&days); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid day-offs payload"))
		return
	}
	if err := h.service.SaveDayOffs(c.Request.Context(), p, days); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
