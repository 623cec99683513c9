package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/serdarsalim/timespent-sub000/internal/schedule"
	"github.com/serdarsalim/timespent-sub000/internal/service"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
	"github.com/serdarsalim/timespent-sub000/pkg/response"
)

// ScheduleHandler exposes the schedule document and its derived views.
type ScheduleHandler struct {
	service *service.ScheduleService
}

// NewScheduleHandler creates a new handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Get godoc
// @Summary Get the schedule document
// @Description Return the caller's full schedule keyed by day
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	store, err := h.service.Load(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, store)
}

// Put godoc
// @Summary Replace the schedule document
// @Description Replace the full schedule; the submitted document wins, no merging
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body schedule.Store true "Schedule document"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule [put]
func (h *ScheduleHandler) Put(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var store schedule.Store
	if err := c.ShouldBindJSON(&store); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	if err := h.service.Save(c.Request.Context(), p, store); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Occurrences godoc
// @Summary Expand one day
// @Description List every occurrence landing on the given day, recurring entries included
// @Tags Schedule
// @Produce json
// @Param date query string true "Day key, e.g. 2024-3-4"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule/occurrences [get]
func (h *ScheduleHandler) Occurrences(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date query parameter required"))
		return
	}
	occurrences, err := h.service.OccurrencesOn(c.Request.Context(), p, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, occurrences)
}

// Resolve godoc
// @Summary Mutate one occurrence
// @Description Apply an update or delete to a single occurrence, splitting recurrences by scope
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body service.ResolveRequest true "Mutation payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule/occurrences/resolve [post]
func (h *ScheduleHandler) Resolve(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req service.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid resolve payload"))
		return
	}
	result, err := h.service.Resolve(c.Request.Context(), p, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Weeks godoc
// @Summary Partition a year into weeks
// @Description Return the 7-day blocks of a year aligned to the caller's week start day
// @Tags Schedule
// @Produce json
// @Param year query int true "Calendar year"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /schedule/weeks [get]
func (h *ScheduleHandler) Weeks(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year query parameter required"))
		return
	}
	weeks, err := h.service.Weeks(c.Request.Context(), p, year)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, weeks)
}
