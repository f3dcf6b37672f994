package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

type ProductRepo interface {
	ListProducts(departmentID *uint, includeInactive bool) ([]product.Product, error)
	GetProductByID(id uint) (product.Product, error)
	GetProductByName(departmentID uint, name string) (product.Product, error)
	CreateProduct(p *product.Product) error
	UpdateProduct(p *product.Product) error
	DeleteProduct(id uint) error
	CountTicketsByProduct(id uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepo
}

type DBProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *DBProductRepo {
	return &DBProductRepo{db: db}
}

func (r *DBProductRepo) ListProducts(departmentID *uint, includeInactive bool) ([]product.Product, error) {
	var list []product.Product
	q := r.db.Order("name asc")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *DBProductRepo) GetProductByID(id uint) (product.Product, error) {
	var p product.Product
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProductRepo) GetProductByName(departmentID uint, name string) (product.Product, error) {
	var p product.Product
	err := r.db.Where("department_id = ? AND name = ?", departmentID, name).First(&p).Error
	return p, err
}

func (r *DBProductRepo) CreateProduct(p *product.Product) error {
	return r.db.Create(p).Error
}

func (r *DBProductRepo) UpdateProduct(p *product.Product) error {
	return r.db.Save(p).Error
}

func (r *DBProductRepo) DeleteProduct(id uint) error {
	return r.db.Delete(&product.Product{}, id).Error
}

func (r *DBProductRepo) CountTicketsByProduct(id uint) (int64, error) {
	var n int64
	err := r.db.Unscoped().Model(&ticket.Ticket{}).Where("product_id = ?", id).Count(&n).Error
	return n, err
}

func (r *DBProductRepo) WithTx(tx *gorm.DB) ProductRepo {
	if tx == nil {
		return r
	}
	return &DBProductRepo{db: tx}
}
