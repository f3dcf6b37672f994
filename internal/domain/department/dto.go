package department

type CreateDepartmentDTO struct {
	Name        string `json:"name" form:"name" binding:"required,max=100"`
	Description string `json:"description" form:"description"`
}

type UpdateDepartmentDTO struct {
	Name        *string `json:"name" form:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" form:"description"`
	Active      *bool   `json:"active" form:"active"`
}
