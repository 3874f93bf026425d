package services

import (
	"errors"
	"testing"

	"github.com/Dosada05/handball-club-system/models"
)

func startedMatch() *models.Match {
	return &models.Match{
		ID:                     1,
		HomeTeamID:             10,
		AwayTeamID:             20,
		RealTimeFirstHalfStart: int64Ptr(1_000_000),
	}
}

func TestValidateEventCreate(t *testing.T) {
	tests := []struct {
		name      string
		match     func() *models.Match
		teamID    int
		timestamp int
		err       error
	}{
		{
			name:      "accepted for started match",
			match:     startedMatch,
			teamID:    10,
			timestamp: 300,
			err:       nil,
		},
		{
			name: "home side locked",
			match: func() *models.Match {
				m := startedMatch()
				m.HomeEventsLocked = true
				return m
			},
			teamID:    10,
			timestamp: 300,
			err:       ErrTeamEventsLocked,
		},
		{
			name: "away side locked home still open",
			match: func() *models.Match {
				m := startedMatch()
				m.AwayEventsLocked = true
				return m
			},
			teamID:    10,
			timestamp: 300,
			err:       nil,
		},
		{
			name:      "match not started",
			match:     func() *models.Match { return &models.Match{ID: 1, HomeTeamID: 10, AwayTeamID: 20} },
			teamID:    10,
			timestamp: 0,
			err:       ErrMatchNotStarted,
		},
		{
			name: "lock reported before missing start",
			match: func() *models.Match {
				return &models.Match{ID: 1, HomeTeamID: 10, AwayTeamID: 20, HomeEventsLocked: true}
			},
			teamID:    10,
			timestamp: 0,
			err:       ErrTeamEventsLocked,
		},
		{
			name: "beyond first half before second half starts",
			match: func() *models.Match {
				m := startedMatch()
				m.RealTimeFirstHalfEnd = int64Ptr(*m.RealTimeFirstHalfStart + 1_800_000)
				return m
			},
			teamID:    20,
			timestamp: 1801,
			err:       ErrSecondHalfNotStarted,
		},
		{
			name: "exactly on the boundary",
			match: func() *models.Match {
				m := startedMatch()
				m.RealTimeFirstHalfEnd = int64Ptr(*m.RealTimeFirstHalfStart + 1_800_000)
				return m
			},
			teamID:    20,
			timestamp: 1800,
			err:       nil,
		},
		{
			name: "beyond boundary after second half starts",
			match: func() *models.Match {
				m := startedMatch()
				m.RealTimeSecondHalfStart = int64Ptr(*m.RealTimeFirstHalfStart + 1_800_000)
				return m
			},
			teamID:    20,
			timestamp: 2500,
			err:       nil,
		},
		{
			name:      "boundary unknown timestamps unrestricted",
			match:     startedMatch,
			teamID:    10,
			timestamp: 10_000,
			err:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventCreate(tt.match(), tt.teamID, tt.timestamp)
			if tt.err == nil {
				if err != nil {
					t.Fatalf("expected event to be accepted, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
		})
	}
}
