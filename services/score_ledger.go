package services

import "github.com/Dosada05/handball-club-system/models"

// ScorePatch - изменение счёта ровно одной стороны.
type ScorePatch struct {
	HomeScore *int
	AwayScore *int
}

// direction: +1 при создании гола, -1 при удалении. Для не-голов и чужих
// команд nil. Ниже нуля не опускаем. Завершённость матча проверяет
// вызывающий.
func PatchForGoal(match *models.Match, event *models.GameEvent, direction int) *ScorePatch {
	if !event.IsGoal() {
		return nil
	}

	switch event.TeamID {
	case match.HomeTeamID:
		score := clampScore(match.HomeScore + direction)
		return &ScorePatch{HomeScore: &score}
	case match.AwayTeamID:
		score := clampScore(match.AwayScore + direction)
		return &ScorePatch{AwayScore: &score}
	}

	return nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
