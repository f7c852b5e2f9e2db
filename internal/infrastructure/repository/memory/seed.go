package memory

import (
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
)

const (
	SeedPlayerAuroraID int64 = 1
	SeedPlayerBlitzID  int64 = 2
	SeedPlayerCometID  int64 = 3
	SeedPlayerDriftID  int64 = 4
)

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: SeedPlayerAuroraID, Name: "Aurora"},
		{ID: SeedPlayerBlitzID, Name: "Blitz"},
		{ID: SeedPlayerCometID, Name: "Comet"},
		{ID: SeedPlayerDriftID, Name: "Drift"},
	}
}

func SeedLevels() []level.Level {
	return []level.Level{
		{ID: "cosmic-cyclone", Rank: 1, Name: "Cosmic Cyclone", VideoURL: "https://www.youtube.com/watch?v=Xq2Jd1sK9aA"},
		{ID: "solar-flare", Rank: 2, Name: "Solar Flare", VideoURL: "https://youtu.be/Bm7pQx3LrT0"},
		{ID: "nebula-drift", Rank: 3, Name: "Nebula Drift", VideoURL: "https://www.youtube.com/watch?v=Hd93kLmPq2E"},
		{ID: "event-horizon", Rank: 4, Name: "Event Horizon"},
		{ID: "first-light", Rank: 16, Name: "First Light", VideoURL: "https://www.youtube.com/watch?v=Fl1ghtR4nk0"},
	}
}

// SeedCompletions returns victors in recording order.
func SeedCompletions() []completion.Completion {
	return []completion.Completion{
		{ID: 1, LevelID: "cosmic-cyclone", PlayerID: SeedPlayerAuroraID, CompletionURL: "https://youtu.be/aurora-cc", CompletionDate: "2024-03-02"},
		{ID: 2, LevelID: "solar-flare", PlayerID: SeedPlayerBlitzID, CompletionURL: "https://youtu.be/blitz-sf", CompletionDate: "2023-11-20"},
		{ID: 3, LevelID: "solar-flare", PlayerID: SeedPlayerAuroraID, CompletionDate: "2024-01-15"},
		{ID: 4, LevelID: "nebula-drift", PlayerID: SeedPlayerCometID, CompletionDate: "2023-08-09"},
		{ID: 5, LevelID: "nebula-drift", PlayerID: SeedPlayerBlitzID},
		{ID: 6, LevelID: "event-horizon", PlayerID: SeedPlayerCometID, CompletionDate: "2023-06-30"},
		{ID: 7, LevelID: "first-light", PlayerID: SeedPlayerDriftID, CompletionDate: "2022-02-14"},
		{ID: 8, LevelID: "first-light", PlayerID: SeedPlayerAuroraID, CompletionDate: "2022-05-01"},
	}
}

func SeedChallenges() []challenge.Challenge {
	return []challenge.Challenge{
		{
			ID:               "march-2025-orbit-run",
			Name:             "Orbit Run",
			Month:            "March 2025",
			Description:      "Short wave gauntlet with a memory section at the end.",
			CreatorName:      "Comet",
			DifficultyRating: "Hard Demon",
			IsCurrent:        true,
			Status:           challenge.StatusActive,
			VictorNames:      []string{"Aurora"},
		},
		{
			ID:               "february-2025-glass-moon",
			Name:             "Glass Moon",
			Month:            "February 2025",
			CreatorName:      "Drift",
			DifficultyRating: "Medium Demon",
			Status:           challenge.StatusArchived,
			VictorNames:      []string{"Blitz", "Comet"},
		},
	}
}

func SeedVersionChangelogs() []changelog.VersionEntry {
	return []changelog.VersionEntry{
		{Version: "1.1.0", Date: "2025-02-01", Items: []string{"Added player comparison", "Added completion timeline"}},
		{Version: "1.0.0", Date: "2024-12-10", Items: []string{"Initial release"}},
	}
}

func SeedListChangelogs() []changelog.ListEntry {
	return []changelog.ListEntry{
		{Date: "2025-01-20", Items: []string{"Event Horizon placed at #4"}},
		{Date: "2024-12-10", Items: []string{"First Light moved to legacy"}},
	}
}
