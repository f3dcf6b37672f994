package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

const maxRecentActivity = 100

type ActivityHandler struct {
	svc *application.ActivityService
}

func NewActivityHandler(svc *application.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// ListTicketActivity godoc
// @Summary Ticket history
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {array} activity.Activity
// @Router /tickets/{id}/activity [get]
func (h *ActivityHandler) ListTicketActivity(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	list, err := h.svc.ListByTicket(uid, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListRecentActivity godoc
// @Summary Recent activity across visible tickets
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries (default 20, max 100)"
// @Success 200 {array} activity.Activity
// @Router /activity/recent [get]
func (h *ActivityHandler) ListRecentActivity(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	limit, err := utils.ParseIntDefault(c, "limit", 20)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if limit < 1 || limit > maxRecentActivity {
		limit = 20
	}
	list, err := h.svc.ListRecent(uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
