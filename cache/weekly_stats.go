package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/redis/go-redis/v9"
)

// Недельная статистика пересчитывается из событий, кеш только
// ускоряет повторные чтения.
const weeklyStatsTTL = 15 * time.Minute

// WeeklyStatsCache хранит недельные агрегаты команды в Redis.
type WeeklyStatsCache struct {
	client *redis.Client
}

func NewWeeklyStatsCache(client *redis.Client) *WeeklyStatsCache {
	return &WeeklyStatsCache{client: client}
}

func weeklyStatsKey(teamID, year, week int) string {
	return fmt.Sprintf("team:%d:stats:%d-W%02d", teamID, year, week)
}

func (c *WeeklyStatsCache) Get(ctx context.Context, teamID, year, week int) (*models.WeeklyTeamStats, error) {
	data, err := c.client.Get(ctx, weeklyStatsKey(teamID, year, week)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weekly stats from cache: %w", err)
	}

	stats := &models.WeeklyTeamStats{}
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached weekly stats: %w", err)
	}
	return stats, nil
}

func (c *WeeklyStatsCache) Set(ctx context.Context, stats *models.WeeklyTeamStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal weekly stats: %w", err)
	}

	key := weeklyStatsKey(stats.TeamID, stats.Year, stats.Week)
	return c.client.Set(ctx, key, data, weeklyStatsTTL).Err()
}
