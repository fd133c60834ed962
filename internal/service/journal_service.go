package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/repository"
)

// journalListLimit matches the upstream API page size.
const journalListLimit = 50

// JournalService is the journal store: dated entries, newest-first.
type JournalService struct {
	repo repository.JournalRepository
}

func NewJournalService(repo repository.JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

// Append stores a new entry and returns it with its assigned id.
func (s *JournalService) Append(content, mood string, date time.Time, tags []string) (*models.JournalEntry, error) {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	entry := &models.JournalEntry{
		ExternalID: uuid.New().String(),
		Date:       date,
		Content:    content,
		Mood:       mood,
		Tags:       strings.Join(tags, ","),
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the most recent entries, newest first.
func (s *JournalService) List() ([]models.JournalEntry, error) {
	return s.repo.List(journalListLimit)
}

// Count returns the total number of entries ever written.
func (s *JournalService) Count() (int64, error) {
	return s.repo.Count()
}
