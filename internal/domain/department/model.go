package department

import (
	"time"

	"github.com/linskybing/creative-desk/internal/domain/product"
)

// Department is an organisational unit that owns products and receives requests.
type Department struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	Active      bool              `gorm:"default:true;not null" json:"active"`
	Products    []product.Product `gorm:"foreignKey:DepartmentID" json:"products,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
