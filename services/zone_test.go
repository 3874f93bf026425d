package services

import (
	"testing"

	"github.com/Dosada05/handball-club-system/models"
)

func strPtr(s string) *string { return &s }

func TestResolveZone(t *testing.T) {
	tests := []struct {
		name     string
		distance *string
		position *string
		want     *string
	}{
		{
			name:     "distance and position",
			distance: strPtr(models.DistanceSixMeters),
			position: strPtr(models.PositionLeftWing),
			want:     strPtr("6m-LW"),
		},
		{
			name:     "nine meters center back",
			distance: strPtr(models.DistanceNineMeters),
			position: strPtr(models.PositionCenterBack),
			want:     strPtr("9m-CB"),
		},
		{
			name:     "seven meters without position",
			distance: strPtr(models.DistanceSevenMeters),
			position: nil,
			want:     strPtr("7m"),
		},
		{
			name:     "seven meters with position",
			distance: strPtr(models.DistanceSevenMeters),
			position: strPtr(models.PositionPivot),
			want:     strPtr("7m-PV"),
		},
		{
			name:     "no distance",
			distance: nil,
			position: strPtr(models.PositionLeftWing),
			want:     nil,
		},
		{
			name:     "empty distance",
			distance: strPtr(""),
			position: strPtr(models.PositionLeftWing),
			want:     nil,
		},
		{
			name:     "six meters without position",
			distance: strPtr(models.DistanceSixMeters),
			position: nil,
			want:     nil,
		},
		{
			name:     "six meters empty position",
			distance: strPtr(models.DistanceSixMeters),
			position: strPtr(""),
			want:     nil,
		},
		{
			name:     "nothing at all",
			distance: nil,
			position: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveZone(tt.distance, tt.position)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil zone, got %q", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected zone %q, got nil", *tt.want)
			}
			if *got != *tt.want {
				t.Fatalf("expected zone %q, got %q", *tt.want, *got)
			}
		})
	}
}
