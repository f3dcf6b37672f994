package application

import (
	"fmt"
	"strings"

	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
)

type BootstrapService struct {
	Repos *repository.Repos
	users *UserService
}

func NewBootstrapService(repos *repository.Repos, users *UserService) *BootstrapService {
	return &BootstrapService{Repos: repos, users: users}
}

// Run ensures the reserved admin exists and seeds the catalogue into an empty database.
func (s *BootstrapService) Run(adminUsername, adminPassword string, seed *config.Seed) error {
	if err := s.users.EnsureAdmin(adminUsername, adminPassword); err != nil {
		return err
	}
	if seed == nil || len(seed.Departments) == 0 {
		return nil
	}

	n, err := s.Repos.Department.CountDepartments()
	if err != nil {
		return fmt.Errorf("count departments: %w", err)
	}
	if n > 0 {
		logger.Log.Debug().Int64("departments", n).Msg("catalogue present, skipping seed")
		return nil
	}

	products := 0
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		for _, sd := range seed.Departments {
			d := department.Department{Name: strings.TrimSpace(sd.Name), Description: sd.Description, Active: true}
			if err := r.Department.CreateDepartment(&d); err != nil {
				return fmt.Errorf("seed department %s: %w", sd.Name, err)
			}
			for _, sp := range sd.Products {
				p := product.Product{DepartmentID: d.ID, Name: strings.TrimSpace(sp.Name), Description: sp.Description, Active: true}
				if err := r.Product.CreateProduct(&p); err != nil {
					return fmt.Errorf("seed product %s/%s: %w", sd.Name, sp.Name, err)
				}
				products++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	logger.Log.Info().Int("departments", len(seed.Departments)).Int("products", products).Msg("seeded catalogue")
	return nil
}
