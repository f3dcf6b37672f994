package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// ticketScope reads the caller and the :id ticket parameter shared by nested routes.
func ticketScope(c *gin.Context) (uid, ticketID uint, ok bool) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, 0, false
	}
	ticketID, err = utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return 0, 0, false
	}
	return uid, ticketID, true
}

// ListComments godoc
// @Summary List comments on a ticket
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.Comment
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	list, err := h.svc.ListComments(uid, ticketID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// AddComment godoc
// @Summary Comment on a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body ticket.CreateCommentDTO true "Comment"
// @Success 201 {object} ticket.Comment
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /tickets/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	var input ticket.CreateCommentDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	cm, err := h.svc.AddComment(uid, ticketID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// DeleteComment godoc
// @Summary Delete a comment (author or admin)
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/comments/{comment_id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ticketID, ok := ticketScope(c)
	if !ok {
		return
	}
	commentID, err := utils.ParseIDParam(c, "comment_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.DeleteComment(uid, ticketID, commentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
