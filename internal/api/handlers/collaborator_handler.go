package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

type CollaboratorHandler struct {
	svc *application.CollaboratorService
}

func NewCollaboratorHandler(svc *application.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

// ListCollaborators godoc
// @Summary List collaborators on a ticket
// @Tags collaborators
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.Collaborator
// @Router /tickets/{id}/collaborators [get]
func (h *CollaboratorHandler) ListCollaborators(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	list, err := h.svc.ListCollaborators(uid, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddCollaborator godoc
// @Summary Add a collaborator
// @Tags collaborators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body ticket.AddCollaboratorDTO true "User to add"
// @Success 201 {object} ticket.Collaborator
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already a collaborator"
// @Router /tickets/{id}/collaborators [post]
func (h *CollaboratorHandler) AddCollaborator(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	var input ticket.AddCollaboratorDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	col, err := h.svc.AddCollaborator(uid, ticketID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

// RemoveCollaborator godoc
// @Summary Remove a collaborator
// @Tags collaborators
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param user_id path int true "User ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/collaborators/{user_id} [delete]
func (h *CollaboratorHandler) RemoveCollaborator(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	userID, err := utils.ParseIDParam(c, "user_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.RemoveCollaborator(uid, ticketID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
