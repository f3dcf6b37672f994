package product

import "time"

// Product is a deliverable line within a department (e.g. "Newsletter").
type Product struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DepartmentID uint      `gorm:"not null;uniqueIndex:idx_product_department_name" json:"department_id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex:idx_product_department_name" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Active       bool      `gorm:"default:true;not null" json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
