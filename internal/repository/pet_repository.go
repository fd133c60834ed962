package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pixelpaw/backend/internal/models"
)

// PetRepository is the persistence contract for per-pet stats rows.
type PetRepository interface {
	GetByName(name string) (*models.PetRecord, error)
	Upsert(record *models.PetRecord) error
}

type GormPetRepository struct {
	db *gorm.DB
}

func NewGormPetRepository(db *gorm.DB) *GormPetRepository {
	return &GormPetRepository{db: db}
}

// GetByName returns the stats row for the named pet, or nil when the
// pet has no row yet.
func (r *GormPetRepository) GetByName(name string) (*models.PetRecord, error) {
	var record models.PetRecord
	err := r.db.Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert writes the stats row, creating it on first interaction.
func (r *GormPetRepository) Upsert(record *models.PetRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"type", "stats", "last_updated", "updated_at"}),
	}).Create(record).Error
}
