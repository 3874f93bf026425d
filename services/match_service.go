package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/handball-club-system/live"
	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
)

// MatchService - административные операции над матчем: калибровка
// часов (живая и видео), блокировки сторон, завершение, ручная
// корректировка счёта. Счёт по событиям ведёт GameEventService.
type MatchService interface {
	Create(ctx context.Context, input CreateMatchInput) (*models.Match, error)
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListBySeason(ctx context.Context, seasonID int) ([]*models.Match, error)
	MarkHalfStart(ctx context.Context, id, half int, at *int64) (*models.Match, error)
	MarkHalfEnd(ctx context.Context, id, half int, at *int64) (*models.Match, error)
	SetVideoCalibration(ctx context.Context, id int, input VideoCalibrationInput) (*models.Match, error)
	SetEventLocks(ctx context.Context, id int, input EventLocksInput) (*models.Match, error)
	Finish(ctx context.Context, id int) (*models.Match, error)
	CorrectScore(ctx context.Context, id, homeScore, awayScore int) (*models.Match, error)
	Delete(ctx context.Context, id int) error
}

type CreateMatchInput struct {
	SeasonID   int       `json:"season_id"`
	HomeTeamID int       `json:"home_team_id"`
	AwayTeamID int       `json:"away_team_id"`
	Date       time.Time `json:"date"`
}

type VideoCalibrationInput struct {
	FirstHalfVideoStart  *int `json:"firstHalfVideoStart"`
	SecondHalfVideoStart *int `json:"secondHalfVideoStart"`
}

// Nil-поле оставляет блокировку стороны без изменений.
type EventLocksInput struct {
	HomeEventsLocked *bool `json:"homeEventsLocked"`
	AwayEventsLocked *bool `json:"awayEventsLocked"`
}

type matchService struct {
	matchRepo repositories.MatchRepository
	locker    *MatchLocker
	hub       *live.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, locker *MatchLocker, hub *live.Hub) MatchService {
	return &matchService{
		matchRepo: matchRepo,
		locker:    locker,
		hub:       hub,
	}
}

func (s *matchService) Create(ctx context.Context, input CreateMatchInput) (*models.Match, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, ErrMatchTeamsEqual
	}

	// Матч рождается пустым: 0-0, без блокировок, без калибровки.
	match := &models.Match{
		SeasonID:   input.SeasonID,
		HomeTeamID: input.HomeTeamID,
		AwayTeamID: input.AwayTeamID,
		Date:       input.Date,
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchSeasonInvalid) {
			return nil, ErrSeasonNotFound
		}
		if errors.Is(err, repositories.ErrMatchTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	return match, nil
}

func (s *matchService) GetByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", id, err)
	}
	return match, nil
}

func (s *matchService) ListBySeason(ctx context.Context, seasonID int) ([]*models.Match, error) {
	matches, err := s.matchRepo.ListBySeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches for season %d: %w", seasonID, err)
	}
	if matches == nil {
		return []*models.Match{}, nil
	}
	return matches, nil
}

// MarkHalfStart фиксирует живое начало тайма. at - epoch-миллисекунды;
// nil означает "сейчас".
func (s *matchService) MarkHalfStart(ctx context.Context, id, half int, at *int64) (*models.Match, error) {
	return s.updateLiveClock(ctx, id, half, true, at)
}

func (s *matchService) MarkHalfEnd(ctx context.Context, id, half int, at *int64) (*models.Match, error) {
	return s.updateLiveClock(ctx, id, half, false, at)
}

func (s *matchService) updateLiveClock(ctx context.Context, id, half int, start bool, at *int64) (*models.Match, error) {
	if half != 1 && half != 2 {
		return nil, ErrMatchHalfInvalid
	}

	mu := s.locker.Lock(id)
	defer mu.Unlock()

	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moment := time.Now().UnixMilli()
	if at != nil {
		moment = *at
	}

	switch {
	case half == 1 && start:
		match.RealTimeFirstHalfStart = &moment
	case half == 1 && !start:
		match.RealTimeFirstHalfEnd = &moment
	case half == 2 && start:
		match.RealTimeSecondHalfStart = &moment
	case half == 2 && !start:
		match.RealTimeSecondHalfEnd = &moment
	}

	err = s.matchRepo.UpdateLiveClock(ctx, id,
		match.RealTimeFirstHalfStart,
		match.RealTimeFirstHalfEnd,
		match.RealTimeSecondHalfStart,
		match.RealTimeSecondHalfEnd,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update live clock for match %d: %w", id, err)
	}

	s.broadcastMatch(match, "MATCH_CLOCK_UPDATED")

	return match, nil
}

func (s *matchService) SetVideoCalibration(ctx context.Context, id int, input VideoCalibrationInput) (*models.Match, error) {
	mu := s.locker.Lock(id)
	defer mu.Unlock()

	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.FirstHalfVideoStart = input.FirstHalfVideoStart
	match.SecondHalfVideoStart = input.SecondHalfVideoStart

	err = s.matchRepo.UpdateVideoCalibration(ctx, id, match.FirstHalfVideoStart, match.SecondHalfVideoStart)
	if err != nil {
		return nil, fmt.Errorf("failed to update video calibration for match %d: %w", id, err)
	}

	s.broadcastMatch(match, "MATCH_CLOCK_UPDATED")

	return match, nil
}

func (s *matchService) SetEventLocks(ctx context.Context, id int, input EventLocksInput) (*models.Match, error) {
	mu := s.locker.Lock(id)
	defer mu.Unlock()

	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.HomeEventsLocked != nil {
		match.HomeEventsLocked = *input.HomeEventsLocked
	}
	if input.AwayEventsLocked != nil {
		match.AwayEventsLocked = *input.AwayEventsLocked
	}

	err = s.matchRepo.UpdateLocks(ctx, id, match.HomeEventsLocked, match.AwayEventsLocked)
	if err != nil {
		return nil, fmt.Errorf("failed to update locks for match %d: %w", id, err)
	}

	return match, nil
}

func (s *matchService) Finish(ctx context.Context, id int) (*models.Match, error) {
	mu := s.locker.Lock(id)
	defer mu.Unlock()

	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.SetFinished(ctx, id, true); err != nil {
		return nil, fmt.Errorf("failed to finish match %d: %w", id, err)
	}
	match.IsFinished = true

	s.broadcastMatch(match, "MATCH_FINISHED")

	return match, nil
}

// CorrectScore выставляет счёт вручную. Значения авторитетны и не
// пересчитываются по событиям.
func (s *matchService) CorrectScore(ctx context.Context, id, homeScore, awayScore int) (*models.Match, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, ErrMatchScoreNegative
	}

	mu := s.locker.Lock(id)
	defer mu.Unlock()

	match, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.UpdateScore(ctx, id, homeScore, awayScore); err != nil {
		return nil, fmt.Errorf("failed to correct score for match %d: %w", id, err)
	}
	match.HomeScore = homeScore
	match.AwayScore = awayScore

	s.broadcastMatch(match, "SCORE_UPDATED")

	return match, nil
}

func (s *matchService) Delete(ctx context.Context, id int) error {
	mu := s.locker.Lock(id)
	defer mu.Unlock()

	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}

	s.locker.Forget(id)
	return nil
}

func (s *matchService) broadcastMatch(match *models.Match, messageType string) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(live.MatchRoom(match.ID), live.Message{
		Type:    messageType,
		Payload: match,
	})
}
