package services

import (
	"testing"

	"github.com/Dosada05/handball-club-system/models"
)

func goalEvent(teamID int) *models.GameEvent {
	return &models.GameEvent{
		TeamID:  teamID,
		Type:    models.GameEventShot,
		Subtype: strPtr(models.ShotSubtypeGoal),
	}
}

func TestPatchForGoal(t *testing.T) {
	match := &models.Match{ID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeScore: 3, AwayScore: 5}

	t.Run("home goal increments home only", func(t *testing.T) {
		patch := PatchForGoal(match, goalEvent(10), +1)
		if patch == nil || patch.HomeScore == nil || *patch.HomeScore != 4 {
			t.Fatalf("expected home score patch 4, got %+v", patch)
		}
		if patch.AwayScore != nil {
			t.Fatalf("away score must stay untouched, got %d", *patch.AwayScore)
		}
	})

	t.Run("away goal decrements away only", func(t *testing.T) {
		patch := PatchForGoal(match, goalEvent(20), -1)
		if patch == nil || patch.AwayScore == nil || *patch.AwayScore != 4 {
			t.Fatalf("expected away score patch 4, got %+v", patch)
		}
		if patch.HomeScore != nil {
			t.Fatalf("home score must stay untouched, got %d", *patch.HomeScore)
		}
	})

	t.Run("score never drops below zero", func(t *testing.T) {
		zeroMatch := &models.Match{ID: 2, HomeTeamID: 10, AwayTeamID: 20}
		patch := PatchForGoal(zeroMatch, goalEvent(10), -1)
		if patch == nil || patch.HomeScore == nil || *patch.HomeScore != 0 {
			t.Fatalf("expected clamped home score 0, got %+v", patch)
		}
	})

	t.Run("saved shot is not a goal", func(t *testing.T) {
		event := &models.GameEvent{TeamID: 10, Type: models.GameEventShot, Subtype: strPtr(models.ShotSubtypeSave)}
		if patch := PatchForGoal(match, event, +1); patch != nil {
			t.Fatalf("expected nil patch for a save, got %+v", patch)
		}
	})

	t.Run("shot without subtype is not a goal", func(t *testing.T) {
		event := &models.GameEvent{TeamID: 10, Type: models.GameEventShot}
		if patch := PatchForGoal(match, event, +1); patch != nil {
			t.Fatalf("expected nil patch without subtype, got %+v", patch)
		}
	})

	t.Run("turnover never touches the score", func(t *testing.T) {
		event := &models.GameEvent{TeamID: 20, Type: models.GameEventTurnover, Subtype: strPtr(models.TurnoverSubtypeSteal)}
		if patch := PatchForGoal(match, event, +1); patch != nil {
			t.Fatalf("expected nil patch for turnover, got %+v", patch)
		}
	})

	t.Run("foreign team yields no patch", func(t *testing.T) {
		if patch := PatchForGoal(match, goalEvent(99), +1); patch != nil {
			t.Fatalf("expected nil patch for team outside the match, got %+v", patch)
		}
	})
}
