package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/creative-desk/internal/application"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/pkg/response"
	"github.com/linskybing/creative-desk/pkg/utils"
)

// includeInactive honours ?include_inactive=true for managers and admins only.
func includeInactive(c *gin.Context) bool {
	if !utils.ParseBoolQuery(c, "include_inactive") {
		return false
	}
	claims, err := utils.GetClaimsFromContext(c)
	return err == nil && claims.IsElevated()
}

type DepartmentHandler struct {
	svc *application.DepartmentService
}

func NewDepartmentHandler(svc *application.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{svc: svc}
}

// ListDepartments godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include inactive departments (elevated only)"
// @Success 200 {array} department.Department
// @Router /departments [get]
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	list, err := h.svc.ListDepartments(includeInactive(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetDepartment godoc
// @Summary Get a department with its products
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} department.Department
// @Failure 404 {object} response.ErrorResponse
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	d, err := h.svc.GetDepartment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CreateDepartment godoc
// @Summary Create a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body department.CreateDepartmentDTO true "Department"
// @Success 201 {object} department.Department
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var input department.CreateDepartmentDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	d, err := h.svc.CreateDepartment(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// UpdateDepartment godoc
// @Summary Update a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param input body department.UpdateDepartmentDTO true "Fields to change"
// @Success 200 {object} department.Department
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input department.UpdateDepartmentDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	d, err := h.svc.UpdateDepartment(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DeleteDepartment godoc
// @Summary Delete a department and its products (admin)
// @Tags departments
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Referenced by tickets"
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.RemoveDepartment(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ProductHandler struct {
	svc *application.ProductService
}

func NewProductHandler(svc *application.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by department"
// @Param include_inactive query bool false "Include inactive products (elevated only)"
// @Success 200 {array} product.Product
// @Failure 400 {object} response.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	deptID, err := utils.ParseOptionalUint(c, "department_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	list, err := h.svc.ListProducts(deptID, includeInactive(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	p, err := h.svc.GetProduct(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProduct godoc
// @Summary Create a product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body product.CreateProductDTO true "Product"
// @Success 201 {object} product.Product
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Department not found"
// @Failure 409 {object} response.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input product.CreateProductDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.CreateProduct(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct godoc
// @Summary Update a product (admin)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param input body product.UpdateProductDTO true "Fields to change"
// @Success 200 {object} product.Product
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	var input product.UpdateProductDTO
	if err := c.ShouldBind(&input); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.UpdateProduct(id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProduct godoc
// @Summary Delete a product (admin)
// @Tags products
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Referenced by tickets"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	if err := h.svc.RemoveProduct(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
