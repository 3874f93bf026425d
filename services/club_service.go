package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
	"github.com/Dosada05/handball-club-system/storage"
)

var ErrClubNameRequired = errors.New("club name is required")

type ClubService interface {
	Create(ctx context.Context, name string) (*models.Club, error)
	GetByID(ctx context.Context, id int) (*models.Club, error)
	GetAll(ctx context.Context) ([]*models.Club, error)
	Rename(ctx context.Context, id int, name string) (*models.Club, error)
	UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Club, error)
	Delete(ctx context.Context, id int) error
}

type clubService struct {
	clubRepo repositories.ClubRepository
	uploader storage.FileUploader
}

func NewClubService(clubRepo repositories.ClubRepository, uploader storage.FileUploader) ClubService {
	return &clubService{
		clubRepo: clubRepo,
		uploader: uploader,
	}
}

func (s *clubService) Create(ctx context.Context, name string) (*models.Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClubNameRequired
	}

	club := &models.Club{Name: name}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		if errors.Is(err, repositories.ErrClubNameConflict) {
			return nil, ErrClubNameConflict
		}
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	return club, nil
}

func (s *clubService) GetByID(ctx context.Context, id int) (*models.Club, error) {
	club, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to load club %d: %w", id, err)
	}

	populateClubLogoURL(club, s.uploader)
	return club, nil
}

func (s *clubService) GetAll(ctx context.Context) ([]*models.Club, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	for _, club := range clubs {
		populateClubLogoURL(club, s.uploader)
	}
	if clubs == nil {
		return []*models.Club{}, nil
	}
	return clubs, nil
}

func (s *clubService) Rename(ctx context.Context, id int, name string) (*models.Club, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClubNameRequired
	}

	club, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	club.Name = name
	if err := s.clubRepo.Update(ctx, club); err != nil {
		if errors.Is(err, repositories.ErrClubNameConflict) {
			return nil, ErrClubNameConflict
		}
		return nil, fmt.Errorf("failed to update club %d: %w", id, err)
	}

	return club, nil
}

func (s *clubService) UploadLogo(ctx context.Context, id int, contentType string, file io.Reader) (*models.Club, error) {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("club_logos/%d/logo", id)
	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload club logo: %w", err)
	}

	if err := s.clubRepo.UpdateLogoKey(ctx, id, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to save club logo key: %w", err)
	}

	club.LogoKey = &result.Key
	populateClubLogoURL(club, s.uploader)

	return club, nil
}

func (s *clubService) Delete(ctx context.Context, id int) error {
	club, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if club.LogoKey != nil && *club.LogoKey != "" {
		// Потерянный объект в хранилище не критичен, удаление клуба важнее.
		_ = s.uploader.Delete(ctx, *club.LogoKey)
	}

	if err := s.clubRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrClubNotFound) {
			return ErrClubNotFound
		}
		return fmt.Errorf("failed to delete club %d: %w", id, err)
	}
	return nil
}
