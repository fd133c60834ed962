package service

import (
	"encoding/json"
	"fmt"
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/repository"
	"pixelpaw/backend/pkg/cache"
	"pixelpaw/backend/pkg/logger"
)

// PetService is the stats store: per-pet stat snapshots in Postgres
// with a read-through cache. Reads never fail; a missing row or a DB
// error yields the default snapshot, matching the defaulted-on-failure
// contract of the upstream stats API.
type PetService struct {
	repo  repository.PetRepository
	cache *cache.Cache
	log   *logger.Logger
}

func NewPetService(repo repository.PetRepository, c *cache.Cache, log *logger.Logger) *PetService {
	return &PetService{repo: repo, cache: c, log: log}
}

func statsCacheKey(name string) string {
	return "pet-stats:" + name
}

// GetStats returns the stored snapshot for the named pet, defaulted
// when absent or unreadable.
func (s *PetService) GetStats(name string) progression.Stats {
	if s.cache != nil {
		if v, ok := s.cache.Get(statsCacheKey(name)); ok {
			if stats, ok := v.(progression.Stats); ok {
				return stats
			}
		}
	}

	record, err := s.repo.GetByName(name)
	if err != nil {
		s.log.LogError(err, "failed to read pet stats, serving defaults", "pet", name)
		return progression.DefaultStats()
	}
	if record == nil {
		return progression.DefaultStats()
	}

	var stats progression.Stats
	if err := json.Unmarshal([]byte(record.Stats), &stats); err != nil {
		s.log.Warn("malformed stats payload, serving defaults", "pet", name, "error", err.Error())
		return progression.DefaultStats()
	}

	stats = progression.Normalize(stats)
	if s.cache != nil {
		s.cache.Set(statsCacheKey(name), stats)
	}
	return stats
}

// PutStats overwrites the stored snapshot for the named pet.
func (s *PetService) PutStats(name string, petType models.Archetype, stats progression.Stats) error {
	stats = progression.Normalize(stats)

	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling stats for %s: %w", name, err)
	}

	record := &models.PetRecord{
		Name:        name,
		Type:        string(petType),
		Stats:       string(payload),
		LastUpdated: time.Now().UTC(),
	}
	if err := s.repo.Upsert(record); err != nil {
		return fmt.Errorf("writing stats for %s: %w", name, err)
	}

	if s.cache != nil {
		s.cache.Set(statsCacheKey(name), stats)
	}
	return nil
}
