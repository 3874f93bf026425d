package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed = errors.New("validation failed")

	// Правила приёма событий матча. Тексты отдаются клиенту дословно.
	ErrTeamEventsLocked     = errors.New("events are locked for this team")
	ErrMatchNotStarted      = errors.New("match has not started")
	ErrSecondHalfNotStarted = errors.New("second half has not started")

	ErrEventTeamInvalid      = errors.New("event team does not play in this match")
	ErrEventTimestampInvalid = errors.New("event timestamp must be non-negative")
	ErrEventTypeInvalid      = errors.New("unknown event type")
	ErrEventSubtypeInvalid   = errors.New("unknown subtype for event type")

	// Ошибки матчей
	ErrMatchNotFound      = errors.New("match not found")
	ErrMatchHalfInvalid   = errors.New("half must be 1 or 2")
	ErrMatchScoreNegative = errors.New("score must be non-negative")
	ErrMatchTeamsEqual    = errors.New("home and away teams must differ")

	// Ошибки, специфичные для сущностей
	ErrGameEventNotFound = errors.New("game event not found")
	ErrClubNotFound      = errors.New("club not found")
	ErrSeasonNotFound    = errors.New("season not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrPlayerNotFound    = errors.New("player not found")

	// Конфликты
	ErrClubNameConflict  = errors.New("club name is already in use")
	ErrTeamNameConflict  = errors.New("team name is already in use")
	ErrUserEmailConflict = errors.New("email address is already in use")

	// Ошибки аутентификации
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooShort   = errors.New("password is too short")

	// Ошибки статистики
	ErrStatsWeekInvalid = errors.New("invalid ISO week")
)
