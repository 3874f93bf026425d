package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/lib/pq"
)

var (
	ErrClubNotFound     = errors.New("club not found")
	ErrClubNameConflict = errors.New("club name conflict")
)

type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id int) (*models.Club, error)
	GetAll(ctx context.Context) ([]*models.Club, error)
	Update(ctx context.Context, club *models.Club) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string) error
	Delete(ctx context.Context, id int) error
}

type postgresClubRepository struct {
	db *sql.DB
}

func NewPostgresClubRepository(db *sql.DB) ClubRepository {
	return &postgresClubRepository{db: db}
}

func (r *postgresClubRepository) Create(ctx context.Context, club *models.Club) error {
	query := `
		INSERT INTO clubs (name)
		VALUES ($1)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, club.Name).Scan(&club.ID, &club.CreatedAt)
	return r.handleClubError(err)
}

func (r *postgresClubRepository) GetByID(ctx context.Context, id int) (*models.Club, error) {
	query := `SELECT id, name, logo_key, created_at FROM clubs WHERE id = $1`

	club := &models.Club{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&club.ID, &club.Name, &club.LogoKey, &club.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	return club, nil
}

func (r *postgresClubRepository) GetAll(ctx context.Context) ([]*models.Club, error) {
	query := `SELECT id, name, logo_key, created_at FROM clubs ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clubs []*models.Club
	for rows.Next() {
		club := &models.Club{}
		if err := rows.Scan(&club.ID, &club.Name, &club.LogoKey, &club.CreatedAt); err != nil {
			return nil, err
		}
		clubs = append(clubs, club)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clubs, nil
}

func (r *postgresClubRepository) Update(ctx context.Context, club *models.Club) error {
	query := `UPDATE clubs SET name = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, club.Name, club.ID)
	if err != nil {
		return r.handleClubError(err)
	}
	return checkAffectedRows(result, ErrClubNotFound)
}

func (r *postgresClubRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	query := `UPDATE clubs SET logo_key = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, logoKey, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrClubNotFound)
}

func (r *postgresClubRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM clubs WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrClubNotFound)
}

func (r *postgresClubRepository) handleClubError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23505" && pqErr.Constraint == "clubs_name_key" { // unique_violation
			return ErrClubNameConflict
		}
	}
	return err
}
