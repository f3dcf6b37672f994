package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// parseTicketFilter reads the listing query string.
func parseTicketFilter(c *gin.Context) (ticket.Filter, error) {
	var f ticket.Filter
	for _, raw := range utils.SplitCSV(c.Query("status")) {
		st := ticket.Status(raw)
		if !st.Valid() {
			return f, errors.New("invalid status: " + raw)
		}
		f.Statuses = append(f.Statuses, st)
	}

	if p := strings.TrimSpace(c.Query("priority")); p != "" {
		if !ticket.Priority(p).Valid() {
			return f, errors.New("invalid priority: " + p)
		}
		f.Priority = p
	}

	var err error
	if f.DepartmentID, err = utils.ParseOptionalUint(c, "department_id"); err != nil {
		return f, err
	}
	if f.ProductID, err = utils.ParseOptionalUint(c, "product_id"); err != nil {
		return f, err
	}
	if f.AssigneeID, err = utils.ParseOptionalUint(c, "assignee_id"); err != nil {
		return f, err
	}
	if f.RequesterID, err = utils.ParseOptionalUint(c, "requester_id"); err != nil {
		return f, err
	}

	switch scope := ticket.Scope(c.Query("scope")); scope {
	case ticket.ScopeAll, ticket.ScopeMine, ticket.ScopeAssigned, ticket.ScopeApprovals, ticket.ScopeWatching:
		f.Scope = scope
	default:
		return f, errors.New("invalid scope: " + string(scope))
	}

	f.Q = strings.TrimSpace(c.Query("q"))
	f.Sort = c.Query("sort")
	f.Order = strings.ToLower(c.Query("order"))
	if f.Page, err = utils.ParseIntDefault(c, "page", 1); err != nil {
		return f, err
	}
	if f.Limit, err = utils.ParseIntDefault(c, "limit", ticket.DefaultLimit); err != nil {
		return f, err
	}
	return f, nil
}

// respondTicketError writes a 409 carrying the current ticket on version conflicts.
func respondTicketError(c *gin.Context, current ticket.Detail, err error) {
	if errors.Is(err, application.ErrVersionConflict) && current.Ticket != nil {
		c.JSON(http.StatusConflict, response.ConflictResponse{Error: err.Error(), Current: current})
		return
	}
	respondError(c, err)
}

// CreateTicket godoc
// @Summary Submit a request
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body ticket.CreateTicketDTO true "Request"
// @Success 201 {object} ticket.Detail
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Department or product not found"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	var input ticket.CreateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	d, err := h.svc.CreateTicket(uid, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListTickets godoc
// @Summary List tickets visible to the caller
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Comma separated statuses"
// @Param priority query string false "low, medium, high or urgent"
// @Param department_id query int false "Department"
// @Param product_id query int false "Product"
// @Param assignee_id query int false "Assignee"
// @Param requester_id query int false "Requester"
// @Param q query string false "Search title and description"
// @Param scope query string false "mine, assigned, approvals or watching"
// @Param sort query string false "created_at, updated_at, due_date or priority"
// @Param order query string false "asc or desc"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {object} response.PageResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	f, err := parseTicketFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	page, err := h.svc.ListTickets(uid, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.PageResponse{Items: page.Items, Total: page.Total, Page: page.Page, Limit: page.Limit})
}

// GetTicket godoc
// @Summary Get a ticket with comments, attachments and collaborators
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 200 {object} ticket.Detail
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	d, err := h.svc.GetTicket(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateTicket godoc
// @Summary Edit a ticket
// @Description The body must carry the version the client last saw. A stale version returns 409 with the current ticket.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketDTO true "Fields to change"
// @Success 200 {object} ticket.Detail
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ConflictResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input ticket.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	d, err := h.svc.UpdateTicket(uid, id, input)
	if err != nil {
		respondTicketError(c, d, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteTicket godoc
// @Summary Delete a ticket (admin)
// @Tags tickets
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.DeleteTicket(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyAction godoc
// @Summary Move a ticket through the workflow
// @Description action is one of approve, reject, resubmit, assign, start, submit, request_changes, complete, reopen, cancel.
// @Tags workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ticket ID"
// @Param action path string true "Workflow action"
// @Param input body ticket.ActionDTO false "reason for reject, assignee_id for assign, optional version"
// @Success 200 {object} ticket.Detail
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Invalid transition or stale version"
// @Router /tickets/{id}/{action} [post]
func (h *TicketHandler) ApplyAction(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	action, err := ticket.ParseAction(c.Param("action"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input ticket.ActionDTO
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			badRequest(c, err)
			return
		}
	}

	d, err := h.svc.ApplyAction(uid, id, action, input)
	if err != nil {
		respondTicketError(c, d, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
