package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
)

var (
	ErrSeasonNameRequired     = errors.New("season name is required")
	ErrSeasonInvalidDateRange = errors.New("season end date must be after start date")
)

type SeasonService interface {
	Create(ctx context.Context, input CreateSeasonInput) (*models.Season, error)
	GetByID(ctx context.Context, id int) (*models.Season, error)
	ListByClub(ctx context.Context, clubID int) ([]*models.Season, error)
	Update(ctx context.Context, id int, input CreateSeasonInput) (*models.Season, error)
	Delete(ctx context.Context, id int) error
}

type CreateSeasonInput struct {
	ClubID    int       `json:"club_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type seasonService struct {
	seasonRepo repositories.SeasonRepository
}

func NewSeasonService(seasonRepo repositories.SeasonRepository) SeasonService {
	return &seasonService{seasonRepo: seasonRepo}
}

func validateSeasonInput(input CreateSeasonInput) error {
	if input.Name == "" {
		return ErrSeasonNameRequired
	}
	if !input.StartDate.Before(input.EndDate) {
		return fmt.Errorf("%w: start %s, end %s", ErrSeasonInvalidDateRange,
			input.StartDate.Format(time.RFC3339), input.EndDate.Format(time.RFC3339))
	}
	return nil
}

func (s *seasonService) Create(ctx context.Context, input CreateSeasonInput) (*models.Season, error) {
	if err := validateSeasonInput(input); err != nil {
		return nil, err
	}

	season := &models.Season{
		ClubID:    input.ClubID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	if err := s.seasonRepo.Create(ctx, season); err != nil {
		if errors.Is(err, repositories.ErrSeasonClubInvalid) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	return season, nil
}

func (s *seasonService) GetByID(ctx context.Context, id int) (*models.Season, error) {
	season, err := s.seasonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return nil, ErrSeasonNotFound
		}
		return nil, fmt.Errorf("failed to load season %d: %w", id, err)
	}
	return season, nil
}

func (s *seasonService) ListByClub(ctx context.Context, clubID int) ([]*models.Season, error) {
	seasons, err := s.seasonRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list seasons for club %d: %w", clubID, err)
	}
	if seasons == nil {
		return []*models.Season{}, nil
	}
	return seasons, nil
}

func (s *seasonService) Update(ctx context.Context, id int, input CreateSeasonInput) (*models.Season, error) {
	if err := validateSeasonInput(input); err != nil {
		return nil, err
	}

	season, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	season.Name = input.Name
	season.StartDate = input.StartDate
	season.EndDate = input.EndDate

	if err := s.seasonRepo.Update(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to update season %d: %w", id, err)
	}

	return season, nil
}

func (s *seasonService) Delete(ctx context.Context, id int) error {
	if err := s.seasonRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSeasonNotFound) {
			return ErrSeasonNotFound
		}
		return fmt.Errorf("failed to delete season %d: %w", id, err)
	}
	return nil
}
