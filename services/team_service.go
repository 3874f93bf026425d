package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
)

var ErrTeamNameRequired = errors.New("team name is required")

type TeamService interface {
	Create(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	ListByClub(ctx context.Context, clubID int) ([]*models.Team, error)
	Update(ctx context.Context, id int, input CreateTeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

type CreateTeamInput struct {
	ClubID   int     `json:"club_id"`
	Name     string  `json:"name"`
	Category *string `json:"category,omitempty"`
}

type teamService struct {
	teamRepo repositories.TeamRepository
}

func NewTeamService(teamRepo repositories.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) Create(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		ClubID:   input.ClubID,
		Name:     input.Name,
		Category: input.Category,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNameConflict):
			return nil, ErrTeamNameConflict
		case errors.Is(err, repositories.ErrTeamClubInvalid):
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team %d: %w", id, err)
	}
	return team, nil
}

func (s *teamService) ListByClub(ctx context.Context, clubID int) ([]*models.Team, error) {
	teams, err := s.teamRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for club %d: %w", clubID, err)
	}
	if teams == nil {
		return []*models.Team{}, nil
	}
	return teams, nil
}

func (s *teamService) Update(ctx context.Context, id int, input CreateTeamInput) (*models.Team, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrTeamNameRequired
	}

	team, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	team.Name = input.Name
	team.Category = input.Category

	if err := s.teamRepo.Update(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to update team %d: %w", id, err)
	}

	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	return nil
}
