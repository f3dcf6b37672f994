package repository

import (
	"strings"

	"github.com/linskybing/creative-desk/internal/domain/activity"
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"github.com/linskybing/creative-desk/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetAllUsers() ([]user.User, error)
	ListUsersPaging(page int, limit int) ([]user.User, int64, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	ListUsersByIDs(ids []uint) ([]user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	CountUserReferences(id uint) (int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetAllUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("username asc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersPaging(page int, limit int) ([]user.User, int64, error) {
	var users []user.User
	var total int64

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	if err := r.db.Model(&user.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.Order("u_id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, "u_id = ?", id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) ListUsersByIDs(ids []uint) ([]user.User, error) {
	var users []user.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.Where("u_id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, "u_id = ?", id).Error
}

// CountUserReferences counts rows that point at the user, soft deleted tickets included.
func (r *DBUserRepo) CountUserReferences(id uint) (int64, error) {
	refs := []struct {
		model any
		where string
	}{
		{&ticket.Ticket{}, "requester_id = ? OR assignee_id = ? OR approved_by_id = ?"},
		{&ticket.Comment{}, "author_id = ?"},
		{&ticket.Attachment{}, "uploader_id = ?"},
		{&ticket.Collaborator{}, "user_id = ? OR added_by_id = ?"},
		{&activity.Activity{}, "actor_id = ?"},
	}

	var total int64
	for _, ref := range refs {
		args := make([]any, strings.Count(ref.where, "?"))
		for i := range args {
			args[i] = id
		}
		var n int64
		if err := r.db.Unscoped().Model(ref.model).Where(ref.where, args...).Count(&n).Error; err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
