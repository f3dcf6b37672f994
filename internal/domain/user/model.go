package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleUser    Role = "user"
)

type User struct {
	UID          uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Username     string    `gorm:"size:50;not null;unique" json:"username"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Email        *string   `gorm:"size:100" json:"email"`
	FullName     *string   `gorm:"size:100" json:"full_name"`
	Role         string    `gorm:"type:user_role;default:'user';not null" json:"role"`
	DepartmentID *uint     `gorm:"index" json:"department_id"`
	Active       bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt    time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

func (u *User) IsElevated() bool {
	return u.Role == string(RoleAdmin) || u.Role == string(RoleManager)
}
