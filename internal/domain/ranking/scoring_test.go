package ranking

import (
	"math"
	"testing"
)

const floatTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance
}

func TestPoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rank int
		want float64
	}{
		{name: "top of the list", rank: 1, want: 18},
		{name: "middle of the list", rank: 8, want: 10},
		{name: "bottom of the list", rank: 15, want: 2},
		{name: "zero rank", rank: 0, want: 0},
		{name: "negative rank", rank: -1, want: 0},
		{name: "legacy bucket", rank: LegacyRank, want: 0},
		{name: "far legacy", rank: 99, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Points(tt.rank)
			if !almostEqual(got, tt.want) {
				t.Fatalf("Points(%d)=%v want=%v", tt.rank, got, tt.want)
			}
		})
	}
}

func TestPoints_LinearStep(t *testing.T) {
	t.Parallel()

	step := 8.0 / 7.0
	for rank := 1; rank < MainListSize; rank++ {
		diff := Points(rank) - Points(rank+1)
		if !almostEqual(diff, step) {
			t.Fatalf("points step between rank %d and %d: got=%v want=%v", rank, rank+1, diff, step)
		}
	}
}

func TestIsScoreable(t *testing.T) {
	t.Parallel()

	for rank := -2; rank <= LegacyRank+2; rank++ {
		want := rank >= 1 && rank <= MainListSize
		if got := IsScoreable(rank); got != want {
			t.Fatalf("IsScoreable(%d)=%v want=%v", rank, got, want)
		}
		if IsScoreable(rank) && Points(rank) <= 0 {
			t.Fatalf("scoreable rank %d has non-positive points", rank)
		}
		if !IsScoreable(rank) && Points(rank) != 0 {
			t.Fatalf("non-scoreable rank %d has points %v", rank, Points(rank))
		}
	}
}
