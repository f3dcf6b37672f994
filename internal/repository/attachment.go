package repository

import (
	"github.com/linskybing/creative-desk/internal/domain/ticket"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	ListAttachments(ticketID uint) ([]ticket.Attachment, error)
	GetAttachment(id uint) (ticket.Attachment, error)
	CreateAttachment(a *ticket.Attachment) error
	DeleteAttachment(id uint) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) ListAttachments(ticketID uint) ([]ticket.Attachment, error) {
	var list []ticket.Attachment
	err := r.db.Where("ticket_id = ?", ticketID).Preload("Uploader").Order("created_at asc").Find(&list).Error
	return list, err
}

func (r *DBAttachmentRepo) GetAttachment(id uint) (ticket.Attachment, error) {
	var a ticket.Attachment
	err := r.db.First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) CreateAttachment(a *ticket.Attachment) error {
	return r.db.Omit("Uploader").Create(a).Error
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&ticket.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
