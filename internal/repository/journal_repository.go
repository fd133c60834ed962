package repository

import (
	"gorm.io/gorm"

	"pixelpaw/backend/internal/models"
)

// JournalRepository is the persistence contract for journal entries.
type JournalRepository interface {
	Create(entry *models.JournalEntry) error
	List(limit int) ([]models.JournalEntry, error)
	Count() (int64, error)
}

type GormJournalRepository struct {
	db *gorm.DB
}

func NewGormJournalRepository(db *gorm.DB) *GormJournalRepository {
	return &GormJournalRepository{db: db}
}

func (r *GormJournalRepository) Create(entry *models.JournalEntry) error {
	return r.db.Create(entry).Error
}

// List returns entries newest-first.
func (r *GormJournalRepository) List(limit int) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.Order("date DESC").Limit(limit).Find(&entries).Error
	if entries == nil {
		entries = []models.JournalEntry{}
	}
	return entries, err
}

func (r *GormJournalRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.JournalEntry{}).Count(&count).Error
	return count, err
}
