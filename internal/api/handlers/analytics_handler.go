package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/analytics"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

type AnalyticsHandler struct {
	svc *application.AnalyticsService
}

func NewAnalyticsHandler(svc *application.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func parseRange(c *gin.Context) (analytics.Range, error) {
	var rg analytics.Range
	var err error
	if rg.From, err = utils.ParseOptionalTime(c, "from"); err != nil {
		return rg, err
	}
	if rg.To, err = utils.ParseOptionalTime(c, "to"); err != nil {
		return rg, err
	}
	if rg.DepartmentID, err = utils.ParseOptionalUint(c, "department_id"); err != nil {
		return rg, err
	}
	return rg, nil
}

// ranged adapts a range based service call into a handler.
func ranged[T any](fn func(uid uint, rg analytics.Range) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}
		rg, err := parseRange(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		out, err := fn(uid, rg)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// Summary godoc
// @Summary Headline numbers
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Param department_id query int false "Department (admins only; managers are pinned to theirs)"
// @Success 200 {object} analytics.Summary
// @Failure 403 {object} response.ErrorResponse
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	ranged(h.svc.Summary)(c)
}

// ByStatus godoc
// @Summary Ticket counts per status
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Param department_id query int false "Department"
// @Success 200 {array} analytics.Bucket
// @Router /analytics/by-status [get]
func (h *AnalyticsHandler) ByStatus(c *gin.Context) {
	ranged(h.svc.ByStatus)(c)
}

// ByPriority godoc
// @Summary Ticket counts per priority
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Param department_id query int false "Department"
// @Success 200 {array} analytics.Bucket
// @Router /analytics/by-priority [get]
func (h *AnalyticsHandler) ByPriority(c *gin.Context) {
	ranged(h.svc.ByPriority)(c)
}

// ByDepartment godoc
// @Summary Ticket counts per department
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {array} analytics.Bucket
// @Router /analytics/by-department [get]
func (h *AnalyticsHandler) ByDepartment(c *gin.Context) {
	ranged(h.svc.ByDepartment)(c)
}

// ByProduct godoc
// @Summary Ticket counts per product
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param from query string false "RFC3339 or YYYY-MM-DD"
// @Param to query string false "RFC3339 or YYYY-MM-DD"
// @Param department_id query int false "Department"
// @Success 200 {array} analytics.Bucket
// @Router /analytics/by-product [get]
func (h *AnalyticsHandler) ByProduct(c *gin.Context) {
	ranged(h.svc.ByProduct)(c)
}

// Workload godoc
// @Summary Open tickets per assignee
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Department"
// @Success 200 {array} analytics.WorkloadItem
// @Router /analytics/workload [get]
func (h *AnalyticsHandler) Workload(c *gin.Context) {
	ranged(h.svc.Workload)(c)
}

// Trend godoc
// @Summary Created and completed tickets per day
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param days query int false "Window in days (default 30, max 365)"
// @Param department_id query int false "Department"
// @Success 200 {array} analytics.TrendPoint
// @Router /analytics/trend [get]
func (h *AnalyticsHandler) Trend(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	days, err := utils.ParseIntDefault(c, "days", application.DefaultTrendDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	deptID, err := utils.ParseOptionalUint(c, "department_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	points, err := h.svc.Trend(uid, days, deptID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, points)
}

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard godoc
// @Summary Home screen counters and recent activity
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} analytics.Dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	d, err := h.svc.GetDashboard(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, d)
}
