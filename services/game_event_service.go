package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/handball-club-system/live"
	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
)

// Единственная точка входа для событий матча: напрямую через
// репозиторий события не создаются, иначе счёт разъедется.
type GameEventService interface {
	Create(ctx context.Context, input CreateGameEventInput) (*models.GameEvent, error)
	Update(ctx context.Context, id int, input UpdateGameEventInput) (*models.GameEvent, error)
	Delete(ctx context.Context, id int) error
	ListByMatch(ctx context.Context, matchID int) ([]*models.GameEvent, error)
}

type CreateGameEventInput struct {
	MatchID            int                  `json:"matchId"`
	TeamID             int                  `json:"teamId"`
	PlayerID           *int                 `json:"playerId,omitempty"`
	Timestamp          int                  `json:"timestamp"`
	Type               models.GameEventType `json:"type"`
	Subtype            *string              `json:"subtype,omitempty"`
	Position           *string              `json:"position,omitempty"`
	Distance           *string              `json:"distance,omitempty"`
	GoalZone           *string              `json:"goalZone,omitempty"`
	IsCollective       *bool                `json:"isCollective,omitempty"`
	HasOpposition      *bool                `json:"hasOpposition,omitempty"`
	IsCounterAttack    *bool                `json:"isCounterAttack,omitempty"`
	SanctionType       *string              `json:"sanctionType,omitempty"`
	VideoTimestamp     *int                 `json:"videoTimestamp,omitempty"`
	ActiveGoalkeeperID *int                 `json:"activeGoalkeeperId,omitempty"`
}

// UpdateGameEventInput - частичное обновление. matchId и teamId
// неизменяемы и в патч не входят; zone пересчитывается по объединённым
// значениям distance и position и отдельно не патчится.
type UpdateGameEventInput struct {
	PlayerID           *int                  `json:"playerId,omitempty"`
	Timestamp          *int                  `json:"timestamp,omitempty"`
	Type               *models.GameEventType `json:"type,omitempty"`
	Subtype            *string               `json:"subtype,omitempty"`
	Position           *string               `json:"position,omitempty"`
	Distance           *string               `json:"distance,omitempty"`
	GoalZone           *string               `json:"goalZone,omitempty"`
	IsCollective       *bool                 `json:"isCollective,omitempty"`
	HasOpposition      *bool                 `json:"hasOpposition,omitempty"`
	IsCounterAttack    *bool                 `json:"isCounterAttack,omitempty"`
	SanctionType       *string               `json:"sanctionType,omitempty"`
	VideoTimestamp     *int                  `json:"videoTimestamp,omitempty"`
	ActiveGoalkeeperID *int                  `json:"activeGoalkeeperId,omitempty"`
}

type gameEventService struct {
	gameEventRepo repositories.GameEventRepository
	matchRepo     repositories.MatchRepository
	locker        *MatchLocker
	hub           *live.Hub
}

func NewGameEventService(
	gameEventRepo repositories.GameEventRepository,
	matchRepo repositories.MatchRepository,
	locker *MatchLocker,
	hub *live.Hub,
) GameEventService {
	return &gameEventService{
		gameEventRepo: gameEventRepo,
		matchRepo:     matchRepo,
		locker:        locker,
		hub:           hub,
	}
}

var validSubtypes = map[models.GameEventType][]string{
	models.GameEventShot: {
		models.ShotSubtypeGoal,
		models.ShotSubtypeSave,
		models.ShotSubtypePost,
		models.ShotSubtypeMiss,
		models.ShotSubtypeBlock,
	},
	models.GameEventTurnover: {
		models.TurnoverSubtypePass,
		models.TurnoverSubtypeSteal,
		models.TurnoverSubtypeSteps,
		models.TurnoverSubtypeOffensive,
		models.TurnoverSubtypeZone,
	},
	models.GameEventSanction: {
		models.SanctionSubtypeYellowCard,
		models.SanctionSubtypeTwoMinutes,
		models.SanctionSubtypeRedCard,
		models.SanctionSubtypeBlueCard,
	},
}

func validateTypeSubtype(eventType models.GameEventType, subtype *string) error {
	allowed, ok := validSubtypes[eventType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEventTypeInvalid, eventType)
	}
	if subtype == nil {
		return nil
	}
	for _, s := range allowed {
		if s == *subtype {
			return nil
		}
	}
	return fmt.Errorf("%w: %q for type %q", ErrEventSubtypeInvalid, *subtype, eventType)
}

func (s *gameEventService) Create(ctx context.Context, input CreateGameEventInput) (*models.GameEvent, error) {
	if input.Timestamp < 0 {
		return nil, ErrEventTimestampInvalid
	}
	if err := validateTypeSubtype(input.Type, input.Subtype); err != nil {
		return nil, err
	}

	mu := s.locker.Lock(input.MatchID)
	defer mu.Unlock()

	match, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", input.MatchID, err)
	}

	if input.TeamID != match.HomeTeamID && input.TeamID != match.AwayTeamID {
		return nil, ErrEventTeamInvalid
	}

	if err := ValidateEventCreate(match, input.TeamID, input.Timestamp); err != nil {
		return nil, err
	}

	event := &models.GameEvent{
		MatchID:            input.MatchID,
		TeamID:             input.TeamID,
		PlayerID:           input.PlayerID,
		Timestamp:          input.Timestamp,
		Type:               input.Type,
		Subtype:            input.Subtype,
		Position:           input.Position,
		Distance:           input.Distance,
		Zone:               ResolveZone(input.Distance, input.Position),
		GoalZone:           input.GoalZone,
		IsCollective:       input.IsCollective,
		HasOpposition:      input.HasOpposition,
		IsCounterAttack:    input.IsCounterAttack,
		SanctionType:       input.SanctionType,
		VideoTimestamp:     input.VideoTimestamp,
		ActiveGoalkeeperID: input.ActiveGoalkeeperID,
	}

	if err := s.gameEventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create game event: %w", err)
	}

	// Завершённость проверяется в момент мутации: после финального
	// свистка события пишутся в протокол, но счёт не трогают.
	if !match.IsFinished {
		if err := s.applyScorePatch(ctx, match, event, +1); err != nil {
			return nil, err
		}
	}

	s.broadcastEvent(match.ID, "GAME_EVENT_CREATED", event)

	return event, nil
}

func (s *gameEventService) Update(ctx context.Context, id int, input UpdateGameEventInput) (*models.GameEvent, error) {
	event, err := s.gameEventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameEventNotFound) {
			return nil, ErrGameEventNotFound
		}
		return nil, fmt.Errorf("failed to load game event %d: %w", id, err)
	}

	mu := s.locker.Lock(event.MatchID)
	defer mu.Unlock()

	match, err := s.matchRepo.GetByID(ctx, event.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", event.MatchID, err)
	}

	// Блокировка стороны запрещает и правки её событий. Временной гейтинг
	// (старт, граница тайма) при правках не повторяется.
	if event.TeamID == match.HomeTeamID && match.HomeEventsLocked {
		return nil, ErrTeamEventsLocked
	}
	if event.TeamID == match.AwayTeamID && match.AwayEventsLocked {
		return nil, ErrTeamEventsLocked
	}

	if input.Type != nil {
		event.Type = *input.Type
	}
	if input.Subtype != nil {
		event.Subtype = input.Subtype
	}
	if err := validateTypeSubtype(event.Type, event.Subtype); err != nil {
		return nil, err
	}

	if input.Timestamp != nil {
		if *input.Timestamp < 0 {
			return nil, ErrEventTimestampInvalid
		}
		event.Timestamp = *input.Timestamp
	}
	if input.PlayerID != nil {
		event.PlayerID = input.PlayerID
	}
	if input.GoalZone != nil {
		event.GoalZone = input.GoalZone
	}
	if input.IsCollective != nil {
		event.IsCollective = input.IsCollective
	}
	if input.HasOpposition != nil {
		event.HasOpposition = input.HasOpposition
	}
	if input.IsCounterAttack != nil {
		event.IsCounterAttack = input.IsCounterAttack
	}
	if input.SanctionType != nil {
		event.SanctionType = input.SanctionType
	}
	if input.VideoTimestamp != nil {
		event.VideoTimestamp = input.VideoTimestamp
	}
	if input.ActiveGoalkeeperID != nil {
		event.ActiveGoalkeeperID = input.ActiveGoalkeeperID
	}

	// Изменение только дистанции или только позиции пересчитывает зону
	// по объединённым старым и новым значениям.
	if input.Distance != nil || input.Position != nil {
		if input.Distance != nil {
			event.Distance = input.Distance
		}
		if input.Position != nil {
			event.Position = input.Position
		}
		event.Zone = ResolveZone(event.Distance, event.Position)
	}

	// Счёт при обновлении не корректируется: гейтинг и счётная
	// сторона события фиксируются при создании.
	if err := s.gameEventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrGameEventNotFound) {
			return nil, ErrGameEventNotFound
		}
		return nil, fmt.Errorf("failed to update game event %d: %w", id, err)
	}

	s.broadcastEvent(event.MatchID, "GAME_EVENT_UPDATED", event)

	return event, nil
}

func (s *gameEventService) Delete(ctx context.Context, id int) error {
	// Первое чтение только ради match_id, чтобы знать какой замок брать.
	event, err := s.gameEventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameEventNotFound) {
			return ErrGameEventNotFound
		}
		return fmt.Errorf("failed to load game event %d: %w", id, err)
	}

	mu := s.locker.Lock(event.MatchID)
	defer mu.Unlock()

	// Перечитываем под замком: параллельное удаление могло успеть раньше,
	// и тогда откатывать счёт второй раз нельзя.
	event, err = s.gameEventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameEventNotFound) {
			return ErrGameEventNotFound
		}
		return fmt.Errorf("failed to load game event %d: %w", id, err)
	}

	match, err := s.matchRepo.GetByID(ctx, event.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to load match %d: %w", event.MatchID, err)
	}

	// Сначала строка, потом счёт: если события уже нет, откат не делается.
	if err := s.gameEventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGameEventNotFound) {
			return ErrGameEventNotFound
		}
		return fmt.Errorf("failed to delete game event %d: %w", id, err)
	}

	// Завершённость перепроверяется на момент удаления, не на момент
	// создания гола. Если матч успел смениться live/finished между
	// созданием и удалением, инкремент и декремент расходятся.
	if !match.IsFinished {
		if err := s.applyScorePatch(ctx, match, event, -1); err != nil {
			return err
		}
	}

	s.broadcastEvent(match.ID, "GAME_EVENT_DELETED", event)

	return nil
}

func (s *gameEventService) ListByMatch(ctx context.Context, matchID int) ([]*models.GameEvent, error) {
	if _, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", matchID, err)
	}

	events, err := s.gameEventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list game events for match %d: %w", matchID, err)
	}
	if events == nil {
		return []*models.GameEvent{}, nil
	}
	return events, nil
}

func (s *gameEventService) applyScorePatch(ctx context.Context, match *models.Match, event *models.GameEvent, direction int) error {
	patch := PatchForGoal(match, event, direction)
	if patch == nil {
		return nil
	}

	if patch.HomeScore != nil {
		match.HomeScore = *patch.HomeScore
	}
	if patch.AwayScore != nil {
		match.AwayScore = *patch.AwayScore
	}

	if err := s.matchRepo.UpdateScore(ctx, match.ID, match.HomeScore, match.AwayScore); err != nil {
		return fmt.Errorf("failed to update score for match %d: %w", match.ID, err)
	}

	if s.hub != nil {
		s.hub.BroadcastToRoom(live.MatchRoom(match.ID), live.Message{
			Type: "SCORE_UPDATED",
			Payload: map[string]int{
				"matchId":   match.ID,
				"homeScore": match.HomeScore,
				"awayScore": match.AwayScore,
			},
		})
	}

	return nil
}

func (s *gameEventService) broadcastEvent(matchID int, messageType string, event *models.GameEvent) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToRoom(live.MatchRoom(matchID), live.Message{
		Type:    messageType,
		Payload: event,
	})
}
