package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/lib/pq"
)

var (
	ErrSeasonNotFound    = errors.New("season not found")
	ErrSeasonClubInvalid = errors.New("season club conflict or invalid")
)

type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	GetByID(ctx context.Context, id int) (*models.Season, error)
	ListByClub(ctx context.Context, clubID int) ([]*models.Season, error)
	Update(ctx context.Context, season *models.Season) error
	Delete(ctx context.Context, id int) error
}

type postgresSeasonRepository struct {
	db *sql.DB
}

func NewPostgresSeasonRepository(db *sql.DB) SeasonRepository {
	return &postgresSeasonRepository{db: db}
}

func (r *postgresSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	query := `
		INSERT INTO seasons (club_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		season.ClubID,
		season.Name,
		season.StartDate,
		season.EndDate,
	).Scan(&season.ID, &season.CreatedAt)

	return r.handleSeasonError(err)
}

func (r *postgresSeasonRepository) GetByID(ctx context.Context, id int) (*models.Season, error) {
	query := `SELECT id, club_id, name, start_date, end_date, created_at FROM seasons WHERE id = $1`

	season := &models.Season{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&season.ID,
		&season.ClubID,
		&season.Name,
		&season.StartDate,
		&season.EndDate,
		&season.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeasonNotFound
		}
		return nil, err
	}

	return season, nil
}

func (r *postgresSeasonRepository) ListByClub(ctx context.Context, clubID int) ([]*models.Season, error) {
	query := `
		SELECT id, club_id, name, start_date, end_date, created_at
		FROM seasons
		WHERE club_id = $1
		ORDER BY start_date DESC`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seasons []*models.Season
	for rows.Next() {
		season := &models.Season{}
		if err := rows.Scan(
			&season.ID,
			&season.ClubID,
			&season.Name,
			&season.StartDate,
			&season.EndDate,
			&season.CreatedAt,
		); err != nil {
			return nil, err
		}
		seasons = append(seasons, season)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return seasons, nil
}

func (r *postgresSeasonRepository) Update(ctx context.Context, season *models.Season) error {
	query := `UPDATE seasons SET name = $1, start_date = $2, end_date = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		season.Name,
		season.StartDate,
		season.EndDate,
		season.ID,
	)
	if err != nil {
		return r.handleSeasonError(err)
	}
	return checkAffectedRows(result, ErrSeasonNotFound)
}

func (r *postgresSeasonRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM seasons WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSeasonNotFound)
}

func (r *postgresSeasonRepository) handleSeasonError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" && pqErr.Constraint == "seasons_club_id_fkey" {
			return ErrSeasonClubInvalid
		}
	}
	return err
}
