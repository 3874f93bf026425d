package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/lib/pq"
)

var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchSeasonInvalid = errors.New("match season conflict or invalid")
	ErrMatchTeamInvalid   = errors.New("match team conflict or invalid")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	ListBySeason(ctx context.Context, seasonID int) ([]*models.Match, error)
	ListByTeamBetween(ctx context.Context, teamID int, from, to string) ([]*models.Match, error)
	UpdateScore(ctx context.Context, id int, homeScore, awayScore int) error
	UpdateLiveClock(ctx context.Context, id int, firstStart, firstEnd, secondStart, secondEnd *int64) error
	UpdateVideoCalibration(ctx context.Context, id int, firstStart, secondStart *int) error
	UpdateLocks(ctx context.Context, id int, homeLocked, awayLocked bool) error
	SetFinished(ctx context.Context, id int, finished bool) error
	Delete(ctx context.Context, id int) error
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

const matchColumns = `
	id, season_id, home_team_id, away_team_id,
	home_score, away_score, is_finished,
	home_events_locked, away_events_locked,
	real_time_first_half_start, real_time_first_half_end,
	real_time_second_half_start, real_time_second_half_end,
	first_half_video_start, second_half_video_start,
	match_date, created_at`

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches
			(season_id, home_team_id, away_team_id, match_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, home_score, away_score, is_finished, home_events_locked, away_events_locked, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.SeasonID,
		match.HomeTeamID,
		match.AwayTeamID,
		match.Date,
	).Scan(
		&match.ID,
		&match.HomeScore,
		&match.AwayScore,
		&match.IsFinished,
		&match.HomeEventsLocked,
		&match.AwayEventsLocked,
		&match.CreatedAt,
	)

	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `SELECT` + matchColumns + ` FROM matches WHERE id = $1`

	match := &models.Match{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(scanMatchFields(match)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	return match, nil
}

func (r *postgresMatchRepository) ListBySeason(ctx context.Context, seasonID int) ([]*models.Match, error) {
	query := `SELECT` + matchColumns + ` FROM matches WHERE season_id = $1 ORDER BY match_date`

	rows, err := r.db.QueryContext(ctx, query, seasonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMatches(rows)
}

// ListByTeamBetween возвращает матчи команды (дома или в гостях) в интервале
// [from, to). Границы передаются строками формата RFC3339.
func (r *postgresMatchRepository) ListByTeamBetween(ctx context.Context, teamID int, from, to string) ([]*models.Match, error) {
	query := `SELECT` + matchColumns + `
		FROM matches
		WHERE (home_team_id = $1 OR away_team_id = $1)
		  AND match_date >= $2 AND match_date < $3
		ORDER BY match_date`

	rows, err := r.db.QueryContext(ctx, query, teamID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMatches(rows)
}

func (r *postgresMatchRepository) UpdateScore(ctx context.Context, id int, homeScore, awayScore int) error {
	query := `UPDATE matches SET home_score = $1, away_score = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, homeScore, awayScore, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateLiveClock(ctx context.Context, id int, firstStart, firstEnd, secondStart, secondEnd *int64) error {
	query := `
		UPDATE matches
		SET real_time_first_half_start = $1,
		    real_time_first_half_end = $2,
		    real_time_second_half_start = $3,
		    real_time_second_half_end = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, firstStart, firstEnd, secondStart, secondEnd, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateVideoCalibration(ctx context.Context, id int, firstStart, secondStart *int) error {
	query := `
		UPDATE matches
		SET first_half_video_start = $1, second_half_video_start = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, firstStart, secondStart, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) UpdateLocks(ctx context.Context, id int, homeLocked, awayLocked bool) error {
	query := `UPDATE matches SET home_events_locked = $1, away_events_locked = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, homeLocked, awayLocked, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) SetFinished(ctx context.Context, id int, finished bool) error {
	query := `UPDATE matches SET is_finished = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, finished, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func scanMatchFields(match *models.Match) []interface{} {
	return []interface{}{
		&match.ID,
		&match.SeasonID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.HomeScore,
		&match.AwayScore,
		&match.IsFinished,
		&match.HomeEventsLocked,
		&match.AwayEventsLocked,
		&match.RealTimeFirstHalfStart,
		&match.RealTimeFirstHalfEnd,
		&match.RealTimeSecondHalfStart,
		&match.RealTimeSecondHalfEnd,
		&match.FirstHalfVideoStart,
		&match.SecondHalfVideoStart,
		&match.Date,
		&match.CreatedAt,
	}
}

func collectMatches(rows *sql.Rows) ([]*models.Match, error) {
	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		if err := rows.Scan(scanMatchFields(match)...); err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" { // foreign_key_violation
			switch pqErr.Constraint {
			case "matches_season_id_fkey":
				return ErrMatchSeasonInvalid
			case "matches_home_team_id_fkey", "matches_away_team_id_fkey":
				return ErrMatchTeamInvalid
			}
		}
	}
	return err
}
