package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
	"github.com/Dosada05/handball-club-system/storage"
)

var ErrPlayerNameRequired = errors.New("player first and last name are required")

type PlayerService interface {
	Create(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error)
	Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	UploadPhoto(ctx context.Context, id int, contentType string, file io.Reader) (*models.Player, error)
	Delete(ctx context.Context, id int) error
}

type PlayerInput struct {
	TeamID    *int    `json:"team_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Number    *int    `json:"number,omitempty"`
	Position  *string `json:"position,omitempty"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) Create(ctx context.Context, input PlayerInput) (*models.Player, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, ErrPlayerNameRequired
	}

	player := &models.Player{
		TeamID:    input.TeamID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Number:    input.Number,
		Position:  input.Position,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (s *playerService) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %d: %w", id, err)
	}

	populatePlayerPhotoURL(player, s.uploader)
	return player, nil
}

func (s *playerService) ListByTeam(ctx context.Context, teamID int) ([]*models.Player, error) {
	players, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players for team %d: %w", teamID, err)
	}
	for _, player := range players {
		populatePlayerPhotoURL(player, s.uploader)
	}
	if players == nil {
		return []*models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) Update(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, ErrPlayerNameRequired
	}

	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	player.TeamID = input.TeamID
	player.FirstName = input.FirstName
	player.LastName = input.LastName
	player.Number = input.Number
	player.Position = input.Position

	if err := s.playerRepo.Update(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to update player %d: %w", id, err)
	}

	return player, nil
}

func (s *playerService) UploadPhoto(ctx context.Context, id int, contentType string, file io.Reader) (*models.Player, error) {
	player, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("player_photos/%d/photo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload player photo: %w", err)
	}

	if err := s.playerRepo.UpdatePhotoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save player photo key: %w", err)
	}

	player.PhotoKey = &result.Key
	populatePlayerPhotoURL(player, s.uploader)

	return player, nil
}

func (s *playerService) Delete(ctx context.Context, id int) error {
	player, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if player.PhotoKey != nil && *player.PhotoKey != "" {
		_ = s.uploader.Delete(ctx, *player.PhotoKey)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return nil
}
