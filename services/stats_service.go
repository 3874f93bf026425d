package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
	"golang.org/x/sync/errgroup"
)

// WeeklyStatsCache - кеш агрегатов перед пересчётом (реализация в cache/).
type WeeklyStatsCache interface {
	Get(ctx context.Context, teamID, year, week int) (*models.WeeklyTeamStats, error)
	Set(ctx context.Context, stats *models.WeeklyTeamStats) error
}

type StatsService interface {
	WeeklyTeamStats(ctx context.Context, teamID, year, week int) (*models.WeeklyTeamStats, error)
}

type statsService struct {
	matchRepo     repositories.MatchRepository
	gameEventRepo repositories.GameEventRepository
	cache         WeeklyStatsCache
}

func NewStatsService(
	matchRepo repositories.MatchRepository,
	gameEventRepo repositories.GameEventRepository,
	cache WeeklyStatsCache,
) StatsService {
	return &statsService{
		matchRepo:     matchRepo,
		gameEventRepo: gameEventRepo,
		cache:         cache,
	}
}

// WeeklyTeamStats агрегирует события команды за ISO-неделю. Сначала
// пробует кеш; при промахе считает по матчам недели и кладёт результат
// обратно. Ошибки кеша не фатальны - статистику всё равно считаем.
func (s *statsService) WeeklyTeamStats(ctx context.Context, teamID, year, week int) (*models.WeeklyTeamStats, error) {
	if week < 1 || week > 53 {
		return nil, ErrStatsWeekInvalid
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, teamID, year, week); err == nil && cached != nil {
			return cached, nil
		}
	}

	from, to := isoWeekInterval(year, week)
	matches, err := s.matchRepo.ListByTeamBetween(ctx, teamID,
		from.Format(time.RFC3339), to.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for team %d: %w", teamID, err)
	}

	stats := &models.WeeklyTeamStats{
		TeamID:      teamID,
		Year:        year,
		Week:        week,
		Matches:     len(matches),
		ShotsByZone: make(map[string]int),
	}

	var mu sync.Mutex
	g, gCtx := errgroup.WithContext(ctx)
	for _, match := range matches {
		match := match
		g.Go(func() error {
			events, err := s.gameEventRepo.ListByMatch(gCtx, match.ID)
			if err != nil {
				return fmt.Errorf("failed to list events for match %d: %w", match.ID, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, event := range events {
				if event.TeamID != teamID {
					continue
				}
				switch event.Type {
				case models.GameEventShot:
					stats.Shots++
					if event.IsGoal() {
						stats.Goals++
					}
					if event.Zone != nil {
						stats.ShotsByZone[*event.Zone]++
					}
				case models.GameEventTurnover:
					stats.Turnovers++
				case models.GameEventSanction:
					stats.Sanctions++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, stats)
	}

	return stats, nil
}

// isoWeekInterval возвращает [понедельник недели, понедельник следующей).
func isoWeekInterval(year, week int) (time.Time, time.Time) {
	// 4 января всегда в первой ISO-неделе года.
	anchor := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(anchor.Weekday())
	if weekday == 0 { // воскресенье
		weekday = 7
	}
	firstMonday := anchor.AddDate(0, 0, 1-weekday)
	from := firstMonday.AddDate(0, 0, (week-1)*7)
	return from, from.AddDate(0, 0, 7)
}
