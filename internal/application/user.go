package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/linskybing/creative-desk/internal/api/middleware"
	"github.com/linskybing/creative-desk/internal/config"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"github.com/linskybing/creative-desk/internal/repository"
	"github.com/linskybing/creative-desk/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserInactive        = errors.New("user account is disabled")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrMissingOldPassword  = errors.New("old password is required to change password")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrReservedAdminUser   = errors.New("cannot delete, disable or downgrade the reserved admin user")
	ErrUserInUse           = errors.New("user is referenced by tickets, deactivate the account instead")
	ErrForbidden           = errors.New("permission denied")
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func hashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrPasswordHashFailure
	}
	return string(hashed), nil
}

func (s *UserService) ensureUsernameFree(username string) error {
	_, err := s.Repos.User.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		return ErrUsernameTaken
	}
	return nil
}

func (s *UserService) ensureDepartment(id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.Repos.Department.GetDepartmentByID(*id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}
	return nil
}

// RegisterUser is self sign-up: the account always starts as an active regular user.
func (s *UserService) RegisterUser(input user.CreateUserInput) (user.User, error) {
	if err := s.ensureUsernameFree(input.Username); err != nil {
		return user.User{}, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return user.User{}, err
	}

	usr := user.User{
		Username: input.Username,
		Password: hashed,
		Email:    input.Email,
		FullName: input.FullName,
		Role:     string(user.RoleUser),
		Active:   true,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

// CreateUser is the admin path; role and department may be chosen.
func (s *UserService) CreateUser(input user.CreateUserInput) (user.User, error) {
	if err := s.ensureUsernameFree(input.Username); err != nil {
		return user.User{}, err
	}
	if err := s.ensureDepartment(input.DepartmentID); err != nil {
		return user.User{}, err
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return user.User{}, err
	}

	usr := user.User{
		Username:     input.Username,
		Password:     hashed,
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         string(user.RoleUser),
		DepartmentID: input.DepartmentID,
		Active:       true,
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) LoginUser(username, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.Active {
		return user.User{}, "", ErrUserInactive
	}

	ttl := time.Duration(config.TokenTTLHours) * time.Hour
	token, err := middleware.GenerateToken(usr.UID, usr.Username, usr.Role, ttl)
	if err != nil {
		return user.User{}, "", err
	}

	return usr, token, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.GetAllUsers()
}

func (s *UserService) ListUserByPaging(page, limit int) ([]user.User, int64, error) {
	return s.Repos.User.ListUsersPaging(page, limit)
}

func (s *UserService) FindUserByID(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

// UpdateUserAs resolves the caller from the database and applies UpdateUser with the
// caller's current privileges. Only admins may edit other accounts.
func (s *UserService) UpdateUserAs(actorID, id uint, input user.UpdateUserInput) (user.User, error) {
	actor, _, err := loadActor(s.Repos, actorID)
	if err != nil {
		return user.User{}, err
	}
	if actorID != id && !actor.IsAdmin() {
		return user.User{}, ErrForbidden
	}
	return s.UpdateUser(id, input, actor.IsAdmin())
}

// UpdateUser applies a partial update. Non-admins may only edit their own profile fields
// and must present the old password to change it.
func (s *UserService) UpdateUser(id uint, input user.UpdateUserInput, byAdmin bool) (user.User, error) {
	if !byAdmin && input.TouchesPrivilegedFields() {
		return user.User{}, ErrForbidden
	}

	usr, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}

	if usr.Username == config.ReservedAdminUsername {
		if input.Role != nil && *input.Role != string(user.RoleAdmin) {
			return user.User{}, ErrReservedAdminUser
		}
		if input.Active != nil && !*input.Active {
			return user.User{}, ErrReservedAdminUser
		}
	}

	if input.Password != nil {
		if !byAdmin {
			if input.OldPassword == nil {
				return user.User{}, ErrMissingOldPassword
			}
			if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(*input.OldPassword)); err != nil {
				return user.User{}, ErrIncorrectPassword
			}
		}
		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return user.User{}, err
		}
		usr.Password = hashed
	}

	if input.DepartmentID != nil {
		if *input.DepartmentID == 0 {
			usr.DepartmentID = nil
		} else {
			if err := s.ensureDepartment(input.DepartmentID); err != nil {
				return user.User{}, err
			}
			usr.DepartmentID = input.DepartmentID
		}
	}
	if input.Role != nil {
		usr.Role = *input.Role
	}
	if input.Active != nil {
		usr.Active = *input.Active
	}
	if input.Email != nil {
		usr.Email = input.Email
	}
	if input.FullName != nil {
		usr.FullName = input.FullName
	}

	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (s *UserService) RemoveUser(id uint) error {
	usr, err := s.FindUserByID(id)
	if err != nil {
		return err
	}

	if usr.Username == config.ReservedAdminUsername {
		return ErrReservedAdminUser
	}

	n, err := s.Repos.User.CountUserReferences(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrUserInUse
	}
	return s.Repos.User.DeleteUser(id)
}

// EnsureAdmin creates the reserved admin account, or restores its role if it drifted.
func (s *UserService) EnsureAdmin(username, password string) error {
	usr, err := s.Repos.User.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	if err == nil {
		if usr.Role == string(user.RoleAdmin) && usr.Active {
			return nil
		}
		usr.Role = string(user.RoleAdmin)
		usr.Active = true
		logger.Log.Warn().Str("username", username).Msg("restoring reserved admin role")
		return s.Repos.User.SaveUser(&usr)
	}

	hashed, err := hashPassword(password)
	if err != nil {
		return err
	}
	usr = user.User{
		Username: username,
		Password: hashed,
		Role:     string(user.RoleAdmin),
		Active:   true,
	}
	if err := s.Repos.User.SaveUser(&usr); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	logger.Log.Info().Str("username", username).Msg("reserved admin user created")
	return nil
}
