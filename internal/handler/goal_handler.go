package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/serdarsalim/timespent-sub000/internal/models"
	"github.com/serdarsalim/timespent-sub000/internal/service"
	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
	"github.com/serdarsalim/timespent-sub000/pkg/response"
)

// GoalHandler exposes goals with nested key results.
type GoalHandler struct {
	service *service.GoalService
}

// NewGoalHandler creates a new handler.
func NewGoalHandler(svc *service.GoalService) *GoalHandler {
	return &GoalHandler{service: svc}
}

// List godoc
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	goals, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, goals)
}

// Put godoc
// @Summary Replace goals
// @Tags Goals
// @Accept json
// @Produce json
// @Param payload body []models.Goal true "Goal collection"
// @Success 204 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /goals [put]
func (h *GoalHandler) Put(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var goals []models.Goal
	if err := c.ShouldBindJSON(&goals); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid goals payload"))
		return
	}
	if err := h.service.Save(c.Request.Context(), p, goals); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
