package signin

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/paging"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	SignInRepository interface {
		GetSignIns(ctx context.Context, req domain.SignInQueryRequest) ([]*entities.SignInRecord, int64, error)
		GetStatistics(ctx context.Context, now time.Time) (*domain.SignInStatistics, error)
	}

	signInRepository struct {
		db *gorm.DB
	}
)

var signInSort = paging.SortSpec{
	Columns: map[string][]string{
		"signed_at": {"signed_at"},
		"points":    {"points_gained"},
	},
	Default: "signed_at",
}

func NewSignInRepository(db *gorm.DB) SignInRepository {
	return &signInRepository{db: db}
}

func (r *signInRepository) GetSignIns(ctx context.Context, req domain.SignInQueryRequest) ([]*entities.SignInRecord, int64, error) {
	var records []*entities.SignInRecord
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.SignInRecord{}).
		Scopes(
			paging.DateRange("signed_at", req.DateFrom, req.DateTo),
			paging.Int64Range("points_gained", req.MinPoints, req.MaxPoints),
		)

	if req.UserID != "" {
		query = query.Where("user_id = ?", req.UserID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Order(signInSort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

func (r *signInRepository) GetStatistics(ctx context.Context, now time.Time) (*domain.SignInStatistics, error) {
	stats := &domain.SignInStatistics{}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&entities.SignInRecord{})
	}

	if err := model().Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("signed_at >= ?", today).Count(&stats.TodayCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("signed_at >= ?", weekAgo).Count(&stats.LastSevenDays).Error; err != nil {
		return nil, err
	}
	if err := model().Where("signed_at >= ?", monthStart).Count(&stats.ThisMonthCount).Error; err != nil {
		return nil, err
	}

	var sums struct {
		Points     int64
		Experience int64
	}
	if err := model().
		Select("COALESCE(SUM(points_gained), 0) AS points, COALESCE(SUM(experience_gained), 0) AS experience").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	stats.TotalPoints = sums.Points
	stats.TotalExperience = sums.Experience

	return stats, nil
}
