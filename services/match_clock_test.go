package services

import (
	"testing"

	"github.com/Dosada05/handball-club-system/models"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func TestFirstHalfBoundarySeconds(t *testing.T) {
	tests := []struct {
		name  string
		match models.Match
		want  *int
	}{
		{
			name:  "no calibration",
			match: models.Match{},
			want:  nil,
		},
		{
			name: "live both halves started",
			match: models.Match{
				RealTimeFirstHalfStart:  int64Ptr(1_000_000),
				RealTimeSecondHalfStart: int64Ptr(1_000_000 + 1_800_000),
			},
			want: intPtr(1800),
		},
		{
			name: "live first half ended second not started",
			match: models.Match{
				RealTimeFirstHalfStart: int64Ptr(1_000_000),
				RealTimeFirstHalfEnd:   int64Ptr(1_000_000 + 1_815_000),
			},
			want: intPtr(1815),
		},
		{
			name: "live second half start wins over first half end",
			match: models.Match{
				RealTimeFirstHalfStart:  int64Ptr(1_000_000),
				RealTimeFirstHalfEnd:    int64Ptr(1_000_000 + 1_815_000),
				RealTimeSecondHalfStart: int64Ptr(1_000_000 + 2_700_000),
			},
			want: intPtr(2700),
		},
		{
			name: "live first half started only",
			match: models.Match{
				RealTimeFirstHalfStart: int64Ptr(1_000_000),
			},
			want: nil,
		},
		{
			name: "video offsets",
			match: models.Match{
				FirstHalfVideoStart:  intPtr(120),
				SecondHalfVideoStart: intPtr(2040),
			},
			want: intPtr(1920),
		},
		{
			name: "video first offset only",
			match: models.Match{
				FirstHalfVideoStart: intPtr(120),
			},
			want: nil,
		},
		{
			name: "live wins over video",
			match: models.Match{
				RealTimeFirstHalfStart:  int64Ptr(0),
				RealTimeSecondHalfStart: int64Ptr(1_800_000),
				FirstHalfVideoStart:     intPtr(0),
				SecondHalfVideoStart:    intPtr(9999),
			},
			want: intPtr(1800),
		},
		{
			name: "negative live interval floors at zero",
			match: models.Match{
				RealTimeFirstHalfStart:  int64Ptr(2_000_000),
				RealTimeSecondHalfStart: int64Ptr(1_000_000),
			},
			want: intPtr(0),
		},
		{
			name: "negative video interval floors at zero",
			match: models.Match{
				FirstHalfVideoStart:  intPtr(500),
				SecondHalfVideoStart: intPtr(100),
			},
			want: intPtr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FirstHalfBoundarySeconds(&tt.match)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil boundary, got %d", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected boundary %d, got nil", *tt.want)
			}
			if *got != *tt.want {
				t.Fatalf("expected boundary %d, got %d", *tt.want, *got)
			}
		})
	}
}

func TestHasStarted(t *testing.T) {
	if HasStarted(&models.Match{}) {
		t.Fatal("uncalibrated match must not count as started")
	}
	if !HasStarted(&models.Match{RealTimeFirstHalfStart: int64Ptr(1)}) {
		t.Fatal("live first half start must count as started")
	}
	if !HasStarted(&models.Match{FirstHalfVideoStart: intPtr(0)}) {
		t.Fatal("video first half offset must count as started")
	}
}

func TestHasSecondHalfStarted(t *testing.T) {
	if HasSecondHalfStarted(&models.Match{}) {
		t.Fatal("uncalibrated match must not count second half as started")
	}
	if !HasSecondHalfStarted(&models.Match{RealTimeSecondHalfStart: int64Ptr(1)}) {
		t.Fatal("live second half start expected")
	}
	if !HasSecondHalfStarted(&models.Match{SecondHalfVideoStart: intPtr(1800)}) {
		t.Fatal("video second half offset expected")
	}
}
