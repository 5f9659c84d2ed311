package signin

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/internal/testdb"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSignIn(t *testing.T, db *gorm.DB, user *entities.User, at time.Time, points, exp int64) {
	t.Helper()

	record := &entities.SignInRecord{
		ID:               uuid.New(),
		UserID:           user.ID,
		SignedAt:         at,
		PointsGained:     points,
		ExperienceGained: exp,
		Timestamp:        entities.Timestamp{CreatedAt: at, UpdatedAt: at},
	}
	require.NoError(t, db.Create(record).Error)
}

func TestGetStatisticsWindows(t *testing.T) {
	db := testdb.Open(t)
	repo := NewSignInRepository(db)
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Alice", "alice@example.com")

	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	newSignIn(t, db, user, now.Add(-2*time.Hour), 10, 5)                 // today
	newSignIn(t, db, user, now.AddDate(0, 0, -3), 20, 10)               // this week
	newSignIn(t, db, user, time.Date(2026, 9, 2, 8, 0, 0, 0, time.UTC), 30, 15) // this month, outside the week
	newSignIn(t, db, user, time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC), 40, 20) // last month

	stats, err := repo.GetStatistics(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalCount)
	assert.Equal(t, int64(1), stats.TodayCount)
	assert.Equal(t, int64(2), stats.LastSevenDays)
	assert.Equal(t, int64(3), stats.ThisMonthCount)
	assert.Equal(t, int64(100), stats.TotalPoints)
	assert.Equal(t, int64(50), stats.TotalExperience)
}

func TestGetStatisticsEmpty(t *testing.T) {
	db := testdb.Open(t)
	service := NewSignInService(NewSignInRepository(db))

	stats, err := service.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCount)
	assert.Zero(t, stats.TodayCount)
	assert.Zero(t, stats.TotalPoints)
	assert.Zero(t, stats.TotalExperience)
}

func TestGetSignInsFilters(t *testing.T) {
	db := testdb.Open(t)
	service := NewSignInService(NewSignInRepository(db))
	ctx := context.Background()

	alice := testdb.NewUser(t, db, "Alice", "alice@example.com")
	bob := testdb.NewUser(t, db, "Bob", "bob@example.com")

	newSignIn(t, db, alice, time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC), 10, 5)
	newSignIn(t, db, alice, time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC), 50, 25)
	newSignIn(t, db, bob, time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC), 50, 25)

	minPoints := int64(20)
	rows, count, err := service.GetSignIns(ctx, domain.SignInQueryRequest{
		UserID:    alice.ID.String(),
		MinPoints: &minPoints,
		Page:      1,
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(50), rows[0].PointsGained)
	assert.Equal(t, "Alice", rows[0].OwnerName)
}

func TestGetSignInsDateRangeInclusive(t *testing.T) {
	db := testdb.Open(t)
	service := NewSignInService(NewSignInRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Carol", "carol@example.com")
	newSignIn(t, db, user, time.Date(2026, 9, 10, 23, 30, 0, 0, time.UTC), 10, 5)
	newSignIn(t, db, user, time.Date(2026, 9, 11, 0, 30, 0, 0, time.UTC), 10, 5)

	// date_to covers the whole named day
	_, count, err := service.GetSignIns(ctx, domain.SignInQueryRequest{
		DateFrom: "2026-09-10",
		DateTo:   "2026-09-10",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGetSignInsDefaultSortNewestFirst(t *testing.T) {
	db := testdb.Open(t)
	service := NewSignInService(NewSignInRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Dave", "dave@example.com")
	newSignIn(t, db, user, time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), 10, 5)
	newSignIn(t, db, user, time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC), 20, 10)

	rows, _, err := service.GetSignIns(ctx, domain.SignInQueryRequest{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].SignedAt.After(rows[1].SignedAt))
}
