package pet

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/rules"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PetService interface {
		GetPets(ctx context.Context, req domain.PetQueryRequest) ([]*domain.PetRow, int64, error)
		OverridePetStats(ctx context.Context, req domain.OverridePetStatsRequest) (*domain.PetRow, error)
	}

	petService struct {
		petRepository PetRepository
		ruleTables    *rules.Tables
	}
)

func NewPetService(petRepository PetRepository, ruleTables *rules.Tables) PetService {
	return &petService{
		petRepository: petRepository,
		ruleTables:    ruleTables,
	}
}

func (s *petService) toRow(p *entities.Pet) *domain.PetRow {
	row := &domain.PetRow{
		ID:           p.ID.String(),
		Name:         p.Name,
		Skin:         p.Skin,
		Background:   p.Background,
		Level:        p.Level,
		Experience:   p.Experience,
		NextLevelExp: s.ruleTables.NextLevelExp(p.Level),
		Health:       p.Health,
		Hunger:       p.Hunger,
		Mood:         p.Mood,
		Stamina:      p.Stamina,
		Cleanliness:  p.Cleanliness,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.User != nil {
		row.OwnerName = p.User.DisplayName
	}
	return row
}

func (s *petService) GetPets(ctx context.Context, req domain.PetQueryRequest) ([]*domain.PetRow, int64, error) {
	pets, count, err := s.petRepository.GetPets(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.PetRow, 0, len(pets))
	for _, p := range pets {
		result = append(result, s.toRow(p))
	}

	return result, count, nil
}

func (s *petService) OverridePetStats(ctx context.Context, req domain.OverridePetStatsRequest) (*domain.PetRow, error) {
	petUUID, err := uuid.Parse(req.PetID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	pet, err := s.petRepository.GetPetByID(ctx, petUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, domain.ErrPetNotFound)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	if req.Name != "" {
		pet.Name = req.Name
	}
	if req.Level != nil {
		pet.Level = *req.Level
	}
	if req.Experience != nil {
		pet.Experience = *req.Experience
	}
	if req.Health != nil {
		pet.Health = *req.Health
	}
	if req.Hunger != nil {
		pet.Hunger = *req.Hunger
	}
	if req.Mood != nil {
		pet.Mood = *req.Mood
	}
	if req.Stamina != nil {
		pet.Stamina = *req.Stamina
	}
	if req.Cleanliness != nil {
		pet.Cleanliness = *req.Cleanliness
	}

	if err := s.petRepository.UpdatePet(ctx, pet); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	return s.toRow(pet), nil
}
