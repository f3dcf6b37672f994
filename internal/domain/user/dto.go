package user

type CreateUserInput struct {
	Username     string  `json:"username" form:"username" binding:"required,min=3,max=50" example:"johndoe"`
	Password     string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Email        *string `json:"email" form:"email" binding:"omitempty,email" example:"user@example.com"`
	FullName     *string `json:"full_name" form:"full_name" example:"John Doe"`
	Role         *string `json:"role" form:"role" binding:"omitempty,oneof=admin manager user" example:"user"`
	DepartmentID *uint   `json:"department_id" form:"department_id"`
}

type UpdateUserInput struct {
	OldPassword  *string `json:"old_password" form:"old_password" example:"oldPass123"`
	Password     *string `json:"password" form:"password" binding:"omitempty,min=6" example:"newPass123"`
	Email        *string `json:"email" form:"email" binding:"omitempty,email" example:"user@example.com"`
	FullName     *string `json:"full_name" form:"full_name" example:"John Doe"`
	Role         *string `json:"role" form:"role" binding:"omitempty,oneof=admin manager user" example:"manager"`
	DepartmentID *uint   `json:"department_id" form:"department_id"`
	Active       *bool   `json:"active" form:"active"`
}

// TouchesPrivilegedFields reports whether the update needs admin rights.
func (in UpdateUserInput) TouchesPrivilegedFields() bool {
	return in.Role != nil || in.DepartmentID != nil || in.Active != nil
}

type LoginInput struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
