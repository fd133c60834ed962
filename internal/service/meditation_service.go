package service

import (
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/repository"
)

// MeditationService logs completed guided sessions. The lifetime count
// feeds reward evaluation.
type MeditationService struct {
	repo repository.MeditationRepository
}

func NewMeditationService(repo repository.MeditationRepository) *MeditationService {
	return &MeditationService{repo: repo}
}

// Record stores one completed session.
func (s *MeditationService) Record(duration time.Duration, completedAt time.Time) error {
	return s.repo.Create(&models.MeditationSession{
		Duration:    duration,
		CompletedAt: completedAt,
	})
}

// Count returns the total number of completed sessions.
func (s *MeditationService) Count() (int64, error) {
	return s.repo.Count()
}

// Recent returns the latest sessions, newest first.
func (s *MeditationService) Recent(limit int) ([]models.MeditationSession, error) {
	return s.repo.List(limit)
}
