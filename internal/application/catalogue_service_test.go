package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/creative-desk/internal/domain/department"
	"github.com/linskybing/creative-desk/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Departments ---------------------
func TestCreateDepartment_NameTaken(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByName("Marketing").Return(department.Department{ID: 1, Name: "Marketing"}, nil)

	_, err := svc.CreateDepartment(department.CreateDepartmentDTO{Name: " Marketing "})
	assert.ErrorIs(t, err, ErrDepartmentExists)
}

func TestCreateDepartment_Success(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByName("Marketing").Return(department.Department{}, gorm.ErrRecordNotFound)
	m.Department.EXPECT().CreateDepartment(gomock.Any()).DoAndReturn(func(d *department.Department) error {
		d.ID = 3
		return nil
	})

	d, err := svc.CreateDepartment(department.CreateDepartmentDTO{Name: "Marketing", Description: "brand"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), d.ID)
	assert.True(t, d.Active)
}

func TestUpdateDepartment_RenameToOwnNameAllowed(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByID(uint(3)).Return(department.Department{ID: 3, Name: "Marketing", Active: true}, nil)
	m.Department.EXPECT().GetDepartmentByName("Marketing").Return(department.Department{ID: 3, Name: "Marketing"}, nil)
	m.Department.EXPECT().UpdateDepartment(gomock.Any()).Return(nil)

	d, err := svc.UpdateDepartment(3, department.UpdateDepartmentDTO{Name: ptrString("Marketing"), Active: ptrBool(false)})
	require.NoError(t, err)
	assert.False(t, d.Active)
}

func TestRemoveDepartment_InUse(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByID(uint(3)).Return(department.Department{ID: 3}, nil)
	m.Department.EXPECT().CountTicketsByDepartment(uint(3)).Return(int64(2), nil)

	assert.ErrorIs(t, svc.RemoveDepartment(3), ErrDepartmentInUse)
}

func TestRemoveDepartment_DeletesProducts(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByID(uint(3)).Return(department.Department{ID: 3}, nil)
	m.Department.EXPECT().CountTicketsByDepartment(uint(3)).Return(int64(0), nil)
	m.Product.EXPECT().ListProducts(gomock.Any(), true).Return([]product.Product{{ID: 5}, {ID: 6}}, nil)
	m.Product.EXPECT().DeleteProduct(uint(5)).Return(nil)
	m.Product.EXPECT().DeleteProduct(uint(6)).Return(nil)
	m.Department.EXPECT().DetachUsers(uint(3)).Return(nil)
	m.Department.EXPECT().DeleteDepartment(uint(3)).Return(nil)

	assert.NoError(t, svc.RemoveDepartment(3))
}

func TestRemoveDepartment_DetachFails(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)

	m.Department.EXPECT().GetDepartmentByID(uint(3)).Return(department.Department{ID: 3}, nil)
	m.Department.EXPECT().CountTicketsByDepartment(uint(3)).Return(int64(0), nil)
	m.Product.EXPECT().ListProducts(gomock.Any(), true).Return(nil, nil)
	m.Department.EXPECT().DetachUsers(uint(3)).Return(errors.New("db down"))
	m.Department.EXPECT().DeleteDepartment(gomock.Any()).Times(0)

	assert.EqualError(t, svc.RemoveDepartment(3), "db down")
}

func TestGetDepartment_NotFound(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewDepartmentService(repos)
	m.Department.EXPECT().GetDepartmentByID(uint(9)).Return(department.Department{}, gorm.ErrRecordNotFound)

	_, err := svc.GetDepartment(9)
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

// --------------------- Products ---------------------
func TestCreateProduct_DepartmentMissing(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProductService(repos)
	m.Department.EXPECT().GetDepartmentByID(uint(9)).Return(department.Department{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateProduct(product.CreateProductDTO{DepartmentID: 9, Name: "Poster"})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestCreateProduct_DuplicateInDepartment(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProductService(repos)
	m.Department.EXPECT().GetDepartmentByID(uint(10)).Return(department.Department{ID: 10}, nil)
	m.Product.EXPECT().GetProductByName(uint(10), "Poster").Return(product.Product{ID: 1}, nil)

	_, err := svc.CreateProduct(product.CreateProductDTO{DepartmentID: 10, Name: "Poster"})
	assert.ErrorIs(t, err, ErrProductExists)
}

func TestUpdateProduct_MoveDepartmentChecksName(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProductService(repos)
	m.Product.EXPECT().GetProductByID(uint(5)).Return(product.Product{ID: 5, DepartmentID: 10, Name: "Poster"}, nil)
	m.Department.EXPECT().GetDepartmentByID(uint(11)).Return(department.Department{ID: 11}, nil)
	m.Product.EXPECT().GetProductByName(uint(11), "Poster").Return(product.Product{}, gorm.ErrRecordNotFound)
	m.Product.EXPECT().UpdateProduct(gomock.Any()).Return(nil)

	p, err := svc.UpdateProduct(5, product.UpdateProductDTO{DepartmentID: ptrUint(11)})
	require.NoError(t, err)
	assert.Equal(t, uint(11), p.DepartmentID)
}

func TestRemoveProduct_InUse(t *testing.T) {
	repos, m := setupRepoMocks(t)
	svc := NewProductService(repos)
	m.Product.EXPECT().GetProductByID(uint(5)).Return(product.Product{ID: 5}, nil)
	m.Product.EXPECT().CountTicketsByProduct(uint(5)).Return(int64(1), nil)

	assert.ErrorIs(t, svc.RemoveProduct(5), ErrProductInUse)
}
