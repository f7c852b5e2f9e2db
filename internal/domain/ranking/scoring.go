package ranking

const (
	// MainListSize is the number of scored positions on the list.
	MainListSize = 15
	// LegacyRank is the shared bucket for levels that fell off the main list.
	LegacyRank = MainListSize + 1
	// MaxPoints is awarded for the rank 1 level.
	MaxPoints = 18.0
)

// IsScoreable reports whether rank belongs to the main list.
func IsScoreable(rank int) bool {
	return rank >= 1 && rank <= MainListSize
}

// IsLegacy reports whether rank falls in the legacy bucket.
func IsLegacy(rank int) bool {
	return rank > MainListSize
}

// Points returns the list points a level at rank awards to each of its victors.
// Ranks outside the main list return 0, which callers must read as "not scoreable".
func Points(rank int) float64 {
	if !IsScoreable(rank) {
		return 0
	}
	return float64(134-8*rank) / 7
}
