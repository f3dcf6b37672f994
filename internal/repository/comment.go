package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

type CommentRepo interface {
	ListComments(ticketID uint) ([]ticket.Comment, error)
	GetComment(id uint) (ticket.Comment, error)
	CreateComment(c *ticket.Comment) error
	DeleteComment(id uint) error
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) ListComments(ticketID uint) ([]ticket.Comment, error) {
	var msgs []ticket.Comment
	err := r.db.Where("ticket_id = ?", ticketID).Preload("Author").Order("created_at asc").Find(&msgs).Error
	return msgs, err
}

func (r *DBCommentRepo) GetComment(id uint) (ticket.Comment, error) {
	var c ticket.Comment
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBCommentRepo) CreateComment(c *ticket.Comment) error {
	return r.db.Omit("Author").Create(c).Error
}

func (r *DBCommentRepo) DeleteComment(id uint) error {
	return r.db.Delete(&ticket.Comment{}, id).Error
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
