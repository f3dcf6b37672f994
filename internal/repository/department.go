package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"gorm.io/gorm"
)

type DepartmentRepo interface {
	ListDepartments(includeInactive bool) ([]department.Department, error)
	GetDepartmentByID(id uint) (department.Department, error)
	GetDepartmentByName(name string) (department.Department, error)
	CreateDepartment(d *department.Department) error
	UpdateDepartment(d *department.Department) error
	DeleteDepartment(id uint) error
	CountDepartments() (int64, error)
	CountTicketsByDepartment(id uint) (int64, error)
	DetachUsers(id uint) error
	WithTx(tx *gorm.DB) DepartmentRepo
}

type DBDepartmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) *DBDepartmentRepo {
	return &DBDepartmentRepo{db: db}
}

func (r *DBDepartmentRepo) ListDepartments(includeInactive bool) ([]department.Department, error) {
	var list []department.Department
	q := r.db.Order("name asc")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *DBDepartmentRepo) GetDepartmentByID(id uint) (department.Department, error) {
	var d department.Department
	err := r.db.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("name asc")
	}).First(&d, id).Error
	return d, err
}

func (r *DBDepartmentRepo) GetDepartmentByName(name string) (department.Department, error) {
	var d department.Department
	err := r.db.Where("name = ?", name).First(&d).Error
	return d, err
}

func (r *DBDepartmentRepo) CreateDepartment(d *department.Department) error {
	return r.db.Create(d).Error
}

func (r *DBDepartmentRepo) UpdateDepartment(d *department.Department) error {
	return r.db.Omit("Products").Save(d).Error
}

func (r *DBDepartmentRepo) DeleteDepartment(id uint) error {
	return r.db.Delete(&department.Department{}, id).Error
}

func (r *DBDepartmentRepo) CountDepartments() (int64, error) {
	var n int64
	err := r.db.Model(&department.Department{}).Count(&n).Error
	return n, err
}

func (r *DBDepartmentRepo) CountTicketsByDepartment(id uint) (int64, error) {
	var n int64
	err := r.db.Unscoped().Model(&ticket.Ticket{}).Where("department_id = ?", id).Count(&n).Error
	return n, err
}

// DetachUsers clears department_id on every user that belongs to the department.
func (r *DBDepartmentRepo) DetachUsers(id uint) error {
	return r.db.Model(&user.User{}).Where("department_id = ?", id).Update("department_id", nil).Error
}

func (r *DBDepartmentRepo) WithTx(tx *gorm.DB) DepartmentRepo {
	if tx == nil {
		return r
	}
	return &DBDepartmentRepo{db: tx}
}
