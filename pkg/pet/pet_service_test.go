package pet

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/internal/testdb"
	"Petopia-Admin/pkg/rules"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPet(t *testing.T, db *gorm.DB, user *entities.User, name string, level int, exp int64) *entities.Pet {
	t.Helper()

	now := time.Now()
	pet := &entities.Pet{
		ID:          uuid.New(),
		UserID:      user.ID,
		Name:        name,
		Level:       level,
		Experience:  exp,
		Health:      80,
		Hunger:      70,
		Mood:        90,
		Stamina:     60,
		Cleanliness: 50,
		Timestamp:   entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

func TestGetPetsDefaultSort(t *testing.T) {
	db := testdb.Open(t)
	service := NewPetService(NewPetRepository(db), rules.Default())
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Alice", "alice@example.com")
	newPet(t, db, user, "Mochi", 2, 150)
	newPet(t, db, user, "Taro", 5, 900)
	newPet(t, db, user, "Kiki", 5, 1200)

	rows, count, err := service.GetPets(ctx, domain.PetQueryRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, rows, 3)

	// highest level first, experience breaks level ties
	assert.Equal(t, "Kiki", rows[0].Name)
	assert.Equal(t, "Taro", rows[1].Name)
	assert.Equal(t, "Mochi", rows[2].Name)
}

func TestGetPetsLevelRangeAndSearch(t *testing.T) {
	db := testdb.Open(t)
	service := NewPetService(NewPetRepository(db), rules.Default())
	ctx := context.Background()

	alice := testdb.NewUser(t, db, "Alice", "alice@example.com")
	bob := testdb.NewUser(t, db, "Bob", "bob@example.com")
	newPet(t, db, alice, "Mochi", 2, 150)
	newPet(t, db, alice, "Taro", 6, 900)
	newPet(t, db, bob, "Momo", 4, 400)

	minLevel, maxLevel := 3, 6
	rows, count, err := service.GetPets(ctx, domain.PetQueryRequest{
		MinLevel: &minLevel,
		MaxLevel: &maxLevel,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	require.Len(t, rows, 2)

	rows, count, err = service.GetPets(ctx, domain.PetQueryRequest{
		Search:   "Mo",
		UserID:   bob.ID.String(),
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, rows, 1)
	assert.Equal(t, "Momo", rows[0].Name)
	assert.Equal(t, "Bob", rows[0].OwnerName)
}

func TestGetPetsNextLevelExp(t *testing.T) {
	db := testdb.Open(t)
	tables := rules.Default()
	service := NewPetService(NewPetRepository(db), tables)
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Carol", "carol@example.com")
	newPet(t, db, user, "Mochi", 3, 500)

	rows, _, err := service.GetPets(ctx, domain.PetQueryRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, tables.NextLevelExp(3), rows[0].NextLevelExp)
}

func TestOverridePetStats(t *testing.T) {
	db := testdb.Open(t)
	service := NewPetService(NewPetRepository(db), rules.Default())
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Dave", "dave@example.com")
	pet := newPet(t, db, user, "Mochi", 2, 150)

	health := 100
	level := 4
	row, err := service.OverridePetStats(ctx, domain.OverridePetStatsRequest{
		PetID:  pet.ID.String(),
		Health: &health,
		Level:  &level,
	})
	require.NoError(t, err)

	// only the given fields change
	assert.Equal(t, 100, row.Health)
	assert.Equal(t, 4, row.Level)
	assert.Equal(t, 70, row.Hunger)
	assert.Equal(t, int64(150), row.Experience)
	assert.Equal(t, "Mochi", row.Name)

	var stored entities.Pet
	require.NoError(t, db.First(&stored, "id = ?", pet.ID).Error)
	assert.Equal(t, 100, stored.Health)
	assert.Equal(t, 4, stored.Level)
	assert.Equal(t, 70, stored.Hunger)
}

func TestOverridePetStatsNotFound(t *testing.T) {
	db := testdb.Open(t)
	service := NewPetService(NewPetRepository(db), rules.Default())

	_, err := service.OverridePetStats(context.Background(), domain.OverridePetStatsRequest{
		PetID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = service.OverridePetStats(context.Background(), domain.OverridePetStatsRequest{
		PetID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}
