package repository

import (
	"gorm.io/gorm"

	"pixelpaw/backend/internal/models"
)

// MeditationRepository tracks completed meditation sessions.
type MeditationRepository interface {
	Create(session *models.MeditationSession) error
	List(limit int) ([]models.MeditationSession, error)
	Count() (int64, error)
}

type GormMeditationRepository struct {
	db *gorm.DB
}

func NewGormMeditationRepository(db *gorm.DB) *GormMeditationRepository {
	return &GormMeditationRepository{db: db}
}

func (r *GormMeditationRepository) Create(session *models.MeditationSession) error {
	return r.db.Create(session).Error
}

func (r *GormMeditationRepository) List(limit int) ([]models.MeditationSession, error) {
	var sessions []models.MeditationSession
	err := r.db.Order("completed_at DESC").Limit(limit).Find(&sessions).Error
	if sessions == nil {
		sessions = []models.MeditationSession{}
	}
	return sessions, err
}

func (r *GormMeditationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.MeditationSession{}).Count(&count).Error
	return count, err
}
