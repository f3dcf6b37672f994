package application

import (
	"errors"
	"strings"

	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product name already exists in this department")
	ErrProductInUse    = errors.New("product is referenced by tickets")
)

type ProductService struct {
	Repos *repository.Repos
}

func NewProductService(repos *repository.Repos) *ProductService {
	return &ProductService{Repos: repos}
}

func (s *ProductService) ListProducts(departmentID *uint, includeInactive bool) ([]product.Product, error) {
	return s.Repos.Product.ListProducts(departmentID, includeInactive)
}

func (s *ProductService) GetProduct(id uint) (product.Product, error) {
	p, err := s.Repos.Product.GetProductByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return product.Product{}, ErrProductNotFound
		}
		return product.Product{}, err
	}
	return p, nil
}

func (s *ProductService) checkDepartment(id uint) error {
	if _, err := s.Repos.Department.GetDepartmentByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

func (s *ProductService) nameTaken(departmentID uint, name string, exceptID uint) (bool, error) {
	existing, err := s.Repos.Product.GetProductByName(departmentID, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *ProductService) CreateProduct(input product.CreateProductDTO) (product.Product, error) {
	if err := s.checkDepartment(input.DepartmentID); err != nil {
		return product.Product{}, err
	}
	name := strings.TrimSpace(input.Name)
	taken, err := s.nameTaken(input.DepartmentID, name, 0)
	if err != nil {
		return product.Product{}, err
	}
	if taken {
		return product.Product{}, ErrProductExists
	}

	p := product.Product{DepartmentID: input.DepartmentID, Name: name, Description: input.Description, Active: true}
	if err := s.Repos.Product.CreateProduct(&p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (s *ProductService) UpdateProduct(id uint, input product.UpdateProductDTO) (product.Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return product.Product{}, err
	}

	deptID, name := p.DepartmentID, p.Name
	if input.DepartmentID != nil && *input.DepartmentID != p.DepartmentID {
		if err := s.checkDepartment(*input.DepartmentID); err != nil {
			return product.Product{}, err
		}
		deptID = *input.DepartmentID
	}
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if deptID != p.DepartmentID || name != p.Name {
		taken, err := s.nameTaken(deptID, name, id)
		if err != nil {
			return product.Product{}, err
		}
		if taken {
			return product.Product{}, ErrProductExists
		}
	}

	p.DepartmentID, p.Name = deptID, name
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Active != nil {
		p.Active = *input.Active
	}

	if err := s.Repos.Product.UpdateProduct(&p); err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (s *ProductService) RemoveProduct(id uint) error {
	if _, err := s.GetProduct(id); err != nil {
		return err
	}
	n, err := s.Repos.Product.CountTicketsByProduct(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrProductInUse
	}
	return s.Repos.Product.DeleteProduct(id)
}
