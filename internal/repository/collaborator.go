package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

type CollaboratorRepo interface {
	ListCollaborators(ticketID uint) ([]ticket.Collaborator, error)
	IsCollaborator(ticketID uint, userID uint) (bool, error)
	AddCollaborator(c *ticket.Collaborator) error
	RemoveCollaborator(ticketID uint, userID uint) (bool, error)
	WithTx(tx *gorm.DB) CollaboratorRepo
}

type DBCollaboratorRepo struct {
	db *gorm.DB
}

func NewCollaboratorRepo(db *gorm.DB) *DBCollaboratorRepo {
	return &DBCollaboratorRepo{db: db}
}

func (r *DBCollaboratorRepo) ListCollaborators(ticketID uint) ([]ticket.Collaborator, error) {
	var list []ticket.Collaborator
	err := r.db.Where("ticket_id = ?", ticketID).Preload("User").Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *DBCollaboratorRepo) IsCollaborator(ticketID uint, userID uint) (bool, error) {
	var n int64
	err := r.db.Model(&ticket.Collaborator{}).Where("ticket_id = ? AND user_id = ?", ticketID, userID).Count(&n).Error
	return n > 0, err
}

func (r *DBCollaboratorRepo) AddCollaborator(c *ticket.Collaborator) error {
	return r.db.Omit("User").Create(c).Error
}

// RemoveCollaborator reports whether a row was actually removed.
func (r *DBCollaboratorRepo) RemoveCollaborator(ticketID uint, userID uint) (bool, error) {
	res := r.db.Where("ticket_id = ? AND user_id = ?", ticketID, userID).Delete(&ticket.Collaborator{})
	return res.RowsAffected > 0, res.Error
}

func (r *DBCollaboratorRepo) WithTx(tx *gorm.DB) CollaboratorRepo {
	if tx == nil {
		return r
	}
	return &DBCollaboratorRepo{db: tx}
}
