package pet

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/paging"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PetRepository interface {
		GetPetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error)
		GetPets(ctx context.Context, req domain.PetQueryRequest) ([]*entities.Pet, int64, error)
		UpdatePet(ctx context.Context, pet *entities.Pet) error
	}

	petRepository struct {
		db *gorm.DB
	}
)

var petSort = paging.SortSpec{
	Columns: map[string][]string{
		// The pet's natural "value" is level with experience as refinement.
		"level":      {"pets.level", "pets.experience"},
		"name":       {"pets.name"},
		"updated_at": {"pets.updated_at"},
	},
	Default:  "level",
	TieBreak: "pets.id ASC",
}

func NewPetRepository(db *gorm.DB) PetRepository {
	return &petRepository{db: db}
}

func (r *petRepository) GetPetByID(ctx context.Context, id uuid.UUID) (*entities.Pet, error) {
	var pet entities.Pet
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) GetPets(ctx context.Context, req domain.PetQueryRequest) ([]*entities.Pet, int64, error) {
	var pets []*entities.Pet
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Pet{}).
		Select("pets.*").
		Joins("JOIN users ON users.id = pets.user_id").
		Scopes(paging.IntRange("pets.level", req.MinLevel, req.MaxLevel))

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where("LOWER(users.display_name) LIKE LOWER(?) OR LOWER(pets.name) LIKE LOWER(?)", pattern, pattern)
	}
	if req.UserID != "" {
		query = query.Where("pets.user_id = ?", req.UserID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Order(petSort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&pets).Error; err != nil {
		return nil, 0, err
	}

	return pets, count, nil
}

func (r *petRepository) UpdatePet(ctx context.Context, pet *entities.Pet) error {
	return r.db.WithContext(ctx).Save(pet).Error
}
