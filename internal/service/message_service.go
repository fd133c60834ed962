package service

import (
	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/repository"
)

// MessageService archives transcript messages to Postgres. The KV
// gateway keeps the working transcript; this archive keeps everything
// for history queries.
type MessageService struct {
	repo repository.MessageRepository
}

func NewMessageService(repo repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

// Archive appends one message to the pet's history.
func (s *MessageService) Archive(petName string, msg models.Message) error {
	return s.repo.Create(&models.MessageRecord{
		ExternalID: msg.ID,
		PetName:    petName,
		Role:       msg.Role,
		Content:    msg.Content,
		Mood:       string(msg.Mood),
		Timestamp:  msg.Timestamp,
	})
}

// History returns archived messages for a pet, oldest first.
func (s *MessageService) History(petName string, limit int) ([]models.MessageRecord, error) {
	return s.repo.GetByPet(petName, limit)
}
