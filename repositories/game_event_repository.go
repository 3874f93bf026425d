package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/lib/pq"
)

var (
	ErrGameEventNotFound      = errors.New("game event not found")
	ErrGameEventMatchInvalid  = errors.New("game event match conflict or invalid")
	ErrGameEventTeamInvalid   = errors.New("game event team conflict or invalid")
	ErrGameEventPlayerInvalid = errors.New("game event player conflict or invalid")
)

type GameEventRepository interface {
	Create(ctx context.Context, event *models.GameEvent) error
	GetByID(ctx context.Context, id int) (*models.GameEvent, error)
	ListByMatch(ctx context.Context, matchID int) ([]*models.GameEvent, error)
	Update(ctx context.Context, event *models.GameEvent) error
	Delete(ctx context.Context, id int) error
}

type postgresGameEventRepository struct {
	db *sql.DB
}

func NewPostgresGameEventRepository(db *sql.DB) GameEventRepository {
	return &postgresGameEventRepository{db: db}
}

const gameEventColumns = `
	id, match_id, team_id, player_id, event_timestamp, event_type, subtype,
	position, distance, zone, goal_zone,
	is_collective, has_opposition, is_counter_attack,
	sanction_type, video_timestamp, active_goalkeeper_id, created_at`

func (r *postgresGameEventRepository) Create(ctx context.Context, event *models.GameEvent) error {
	query := `
		INSERT INTO game_events
			(match_id, team_id, player_id, event_timestamp, event_type, subtype,
			 position, distance, zone, goal_zone,
			 is_collective, has_opposition, is_counter_attack,
			 sanction_type, video_timestamp, active_goalkeeper_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		event.MatchID,
		event.TeamID,
		event.PlayerID,
		event.Timestamp,
		event.Type,
		event.Subtype,
		event.Position,
		event.Distance,
		event.Zone,
		event.GoalZone,
		event.IsCollective,
		event.HasOpposition,
		event.IsCounterAttack,
		event.SanctionType,
		event.VideoTimestamp,
		event.ActiveGoalkeeperID,
	).Scan(&event.ID, &event.CreatedAt)

	return r.handleGameEventError(err)
}

func (r *postgresGameEventRepository) GetByID(ctx context.Context, id int) (*models.GameEvent, error) {
	query := `SELECT` + gameEventColumns + ` FROM game_events WHERE id = $1`

	event := &models.GameEvent{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(scanGameEventFields(event)...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// ListByMatch возвращает события матча по возрастанию игрового времени.
func (r *postgresGameEventRepository) ListByMatch(ctx context.Context, matchID int) ([]*models.GameEvent, error) {
	query := `SELECT` + gameEventColumns + `
		FROM game_events
		WHERE match_id = $1
		ORDER BY event_timestamp ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.GameEvent
	for rows.Next() {
		event := &models.GameEvent{}
		if err := rows.Scan(scanGameEventFields(event)...); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Update перезаписывает изменяемые поля события. match_id и team_id
// неизменяемы после принятия события и в запрос не входят.
func (r *postgresGameEventRepository) Update(ctx context.Context, event *models.GameEvent) error {
	query := `
		UPDATE game_events
		SET player_id = $1, event_timestamp = $2, event_type = $3, subtype = $4,
		    position = $5, distance = $6, zone = $7, goal_zone = $8,
		    is_collective = $9, has_opposition = $10, is_counter_attack = $11,
		    sanction_type = $12, video_timestamp = $13, active_goalkeeper_id = $14
		WHERE id = $15`

	result, err := r.db.ExecContext(ctx, query,
		event.PlayerID,
		event.Timestamp,
		event.Type,
		event.Subtype,
		event.Position,
		event.Distance,
		event.Zone,
		event.GoalZone,
		event.IsCollective,
		event.HasOpposition,
		event.IsCounterAttack,
		event.SanctionType,
		event.VideoTimestamp,
		event.ActiveGoalkeeperID,
		event.ID,
	)
	if err != nil {
		return r.handleGameEventError(err)
	}
	return checkAffectedRows(result, ErrGameEventNotFound)
}

func (r *postgresGameEventRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM game_events WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGameEventNotFound)
}

func scanGameEventFields(event *models.GameEvent) []interface{} {
	return []interface{}{
		&event.ID,
		&event.MatchID,
		&event.TeamID,
		&event.PlayerID,
		&event.Timestamp,
		&event.Type,
		&event.Subtype,
		&event.Position,
		&event.Distance,
		&event.Zone,
		&event.GoalZone,
		&event.IsCollective,
		&event.HasOpposition,
		&event.IsCounterAttack,
		&event.SanctionType,
		&event.VideoTimestamp,
		&event.ActiveGoalkeeperID,
		&event.CreatedAt,
	}
}

func (r *postgresGameEventRepository) handleGameEventError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok {
		if pqErr.Code == "23503" { // foreign_key_violation
			switch pqErr.Constraint {
			case "game_events_match_id_fkey":
				return ErrGameEventMatchInvalid
			case "game_events_team_id_fkey":
				return ErrGameEventTeamInvalid
			case "game_events_player_id_fkey", "game_events_active_goalkeeper_id_fkey":
				return ErrGameEventPlayerInvalid
			}
		}
	}
	return err
}
