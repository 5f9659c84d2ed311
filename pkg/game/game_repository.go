package game

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/paging"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	GameRepository interface {
		GetGamePlays(ctx context.Context, req domain.GamePlayQueryRequest) ([]*entities.GamePlay, int64, error)
		GetStatistics(ctx context.Context, now time.Time) (*domain.GameStatistics, error)
	}

	gameRepository struct {
		db *gorm.DB
	}
)

var gamePlaySort = paging.SortSpec{
	Columns: map[string][]string{
		"started_at": {"started_at"},
		"level":      {"level"},
		"points":     {"points_reward"},
	},
	Default: "started_at",
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) GetGamePlays(ctx context.Context, req domain.GamePlayQueryRequest) ([]*entities.GamePlay, int64, error) {
	var plays []*entities.GamePlay
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.GamePlay{}).
		Scopes(paging.DateRange("started_at", req.DateFrom, req.DateTo))

	if req.UserID != "" {
		query = query.Where("user_id = ?", req.UserID)
	}
	if req.PetID != "" {
		query = query.Where("pet_id = ?", req.PetID)
	}
	if req.Result != "" {
		query = query.Where("result = ?", req.Result)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Preload("Pet").
		Order(gamePlaySort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&plays).Error; err != nil {
		return nil, 0, err
	}

	return plays, count, nil
}

func (r *gameRepository) GetStatistics(ctx context.Context, now time.Time) (*domain.GameStatistics, error) {
	stats := &domain.GameStatistics{}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := today.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&entities.GamePlay{})
	}

	if err := model().Count(&stats.TotalCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("started_at >= ?", today).Count(&stats.TodayCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("started_at >= ?", weekAgo).Count(&stats.LastSevenDays).Error; err != nil {
		return nil, err
	}
	if err := model().Where("started_at >= ?", monthStart).Count(&stats.ThisMonthCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("result = ?", domain.GameResultWin).Count(&stats.WinCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("result = ?", domain.GameResultLose).Count(&stats.LoseCount).Error; err != nil {
		return nil, err
	}
	if err := model().Where("result = ?", domain.GameResultAbort).Count(&stats.AbortCount).Error; err != nil {
		return nil, err
	}

	if stats.TotalCount > 0 {
		stats.WinRate = float64(stats.WinCount) / float64(stats.TotalCount) * 100
	}

	var sums struct {
		Points     int64
		Experience int64
	}
	if err := model().
		Select("COALESCE(SUM(points_reward), 0) AS points, COALESCE(SUM(experience_reward), 0) AS experience").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	stats.TotalPoints = sums.Points
	stats.TotalExperience = sums.Experience

	// Average duration only covers rounds with an end time; rounds still in
	// progress or aborted without one would skew it.
	var spans []struct {
		StartedAt time.Time
		EndedAt   time.Time
	}
	if err := model().
		Select("started_at, ended_at").
		Where("ended_at IS NOT NULL").
		Scan(&spans).Error; err != nil {
		return nil, err
	}
	if len(spans) > 0 {
		var total float64
		for _, s := range spans {
			total += s.EndedAt.Sub(s.StartedAt).Seconds()
		}
		stats.AverageDuration = total / float64(len(spans))
	}

	return stats, nil
}
