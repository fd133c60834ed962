package repository

import (
	"gorm.io/gorm"

	"pixelpaw/backend/internal/models"
)

// MessageRepository archives transcript messages, append-only.
type MessageRepository interface {
	Create(record *models.MessageRecord) error
	GetByPet(petName string, limit int) ([]models.MessageRecord, error)
}

type GormMessageRepository struct {
	db *gorm.DB
}

func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

func (r *GormMessageRepository) Create(record *models.MessageRecord) error {
	return r.db.Create(record).Error
}

func (r *GormMessageRepository) GetByPet(petName string, limit int) ([]models.MessageRecord, error) {
	var records []models.MessageRecord
	err := r.db.Where("pet_name = ?", petName).
		Order("timestamp ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
