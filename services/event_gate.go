package services

import "github.com/Dosada05/handball-club-system/models"

// ValidateEventCreate проверяет, может ли событие быть принято в матч.
// Проверки выполняются строго по порядку, возвращается первая нарушенная:
// блокировка стороны, старт матча, граница первого тайма. Временной
// гейтинг для update и delete не повторяется, историческое размещение
// события неизменяемо; блокировку стороны при правках проверяет
// GameEventService.Update.
func ValidateEventCreate(match *models.Match, teamID, timestamp int) error {
	if teamID == match.HomeTeamID && match.HomeEventsLocked {
		return ErrTeamEventsLocked
	}
	if teamID == match.AwayTeamID && match.AwayEventsLocked {
		return ErrTeamEventsLocked
	}

	if !HasStarted(match) {
		return ErrMatchNotStarted
	}

	if boundary := FirstHalfBoundarySeconds(match); boundary != nil &&
		timestamp > *boundary && !HasSecondHalfStarted(match) {
		return ErrSecondHalfNotStarted
	}

	return nil
}
