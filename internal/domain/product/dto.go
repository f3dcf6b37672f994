package product

type CreateProductDTO struct {
	DepartmentID uint   `json:"department_id" form:"department_id" binding:"required"`
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Description  string `json:"description" form:"description"`
}

type UpdateProductDTO struct {
	DepartmentID *uint   `json:"department_id" form:"department_id"`
	Name         *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Description  *string `json:"description" form:"description"`
	Active       *bool   `json:"active" form:"active"`
}
