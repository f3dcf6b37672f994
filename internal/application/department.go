package application

import (
	"errors"
	"strings"

	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department name already exists")
	ErrDepartmentInUse    = errors.New("department is referenced by tickets")
)

type DepartmentService struct {
	Repos *repository.Repos
}

func NewDepartmentService(repos *repository.Repos) *DepartmentService {
	return &DepartmentService{Repos: repos}
}

func (s *DepartmentService) ListDepartments(includeInactive bool) ([]department.Department, error) {
	return s.Repos.Department.ListDepartments(includeInactive)
}

func (s *DepartmentService) GetDepartment(id uint) (department.Department, error) {
	d, err := s.Repos.Department.GetDepartmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return department.Department{}, ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return d, nil
}

func (s *DepartmentService) nameTaken(name string, exceptID uint) (bool, error) {
	existing, err := s.Repos.Department.GetDepartmentByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *DepartmentService) CreateDepartment(input department.CreateDepartmentDTO) (department.Department, error) {
	name := strings.TrimSpace(input.Name)
	taken, err := s.nameTaken(name, 0)
	if err != nil {
		return department.Department{}, err
	}
	if taken {
		return department.Department{}, ErrDepartmentExists
	}

	d := department.Department{Name: name, Description: input.Description, Active: true}
	if err := s.Repos.Department.CreateDepartment(&d); err != nil {
		return department.Department{}, err
	}
	return d, nil
}

func (s *DepartmentService) UpdateDepartment(id uint, input department.UpdateDepartmentDTO) (department.Department, error) {
	d, err := s.GetDepartment(id)
	if err != nil {
		return department.Department{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		taken, err := s.nameTaken(name, id)
		if err != nil {
			return department.Department{}, err
		}
		if taken {
			return department.Department{}, ErrDepartmentExists
		}
		d.Name = name
	}
	if input.Description != nil {
		d.Description = *input.Description
	}
	if input.Active != nil {
		d.Active = *input.Active
	}

	if err := s.Repos.Department.UpdateDepartment(&d); err != nil {
		return department.Department{}, err
	}
	return d, nil
}

// RemoveDepartment deletes a department and its products, refusing when tickets reference it.
func (s *DepartmentService) RemoveDepartment(id uint) error {
	if _, err := s.GetDepartment(id); err != nil {
		return err
	}

	n, err := s.Repos.Department.CountTicketsByDepartment(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrDepartmentInUse
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		products, err := r.Product.ListProducts(&id, true)
		if err != nil {
			return err
		}
		for _, p := range products {
			if err := r.Product.DeleteProduct(p.ID); err != nil {
				return err
			}
		}
		if err := r.Department.DetachUsers(id); err != nil {
			return err
		}
		return r.Department.DeleteDepartment(id)
	})
}
