package httpapi

import (
	"strconv"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	"github.com/riskibarqy/solblist-api/internal/domain/completion"
	"github.com/riskibarqy/solblist-api/internal/domain/level"
	"github.com/riskibarqy/solblist-api/internal/domain/player"
	"github.com/riskibarqy/solblist-api/internal/domain/ranking"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

type createPlayerRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type createLevelRequest struct {
	ID       string `json:"id" validate:"required,max=100"`
	Rank     int    `json:"rank" validate:"required,gte=1"`
	Name     string `json:"name" validate:"required,max=200"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

type addVictorRequest struct {
	PlayerID       int64  `json:"player_id" validate:"omitempty,gte=1"`
	PlayerName     string `json:"player_name" validate:"required_without=PlayerID,max=100"`
	CompletionURL  string `json:"completion_url" validate:"omitempty,url"`
	CompletionDate string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`
}

type createChallengeRequest struct {
	ID               string   `json:"id" validate:"omitempty,max=150"`
	Name             string   `json:"name" validate:"required,max=200"`
	Month            string   `json:"month" validate:"required,max=50"`
	Description      string   `json:"description"`
	VideoURL         string   `json:"video_url" validate:"omitempty,url"`
	CreatorName      string   `json:"creator_name" validate:"max=100"`
	DifficultyRating string   `json:"difficulty_rating" validate:"max=50"`
	IsCurrent        bool     `json:"is_current"`
	Status           string   `json:"status" validate:"omitempty,oneof=active archived"`
	VictorNames      []string `json:"victor_names" validate:"dive,required"`
}

type updateChallengeRequest struct {
	Name             *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Month            *string  `json:"month" validate:"omitempty,min=1,max=50"`
	Description      *string  `json:"description"`
	VideoURL         *string  `json:"video_url" validate:"omitempty,url"`
	CreatorName      *string  `json:"creator_name" validate:"omitempty,max=100"`
	DifficultyRating *string  `json:"difficulty_rating" validate:"omitempty,max=50"`
	Status           *string  `json:"status" validate:"omitempty,oneof=active archived"`
	VictorNames      []string `json:"victor_names" validate:"omitempty,dive,required"`
}

type addChallengeVictorRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type createVersionChangelogRequest struct {
	Version string   `json:"version" validate:"required,max=50"`
	Date    string   `json:"date" validate:"required,datetime=2006-01-02"`
	Items   []string `json:"description_items" validate:"required,min=1,dive,required"`
}

type createListChangelogRequest struct {
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Items []string `json:"description_items" validate:"required,min=1,dive,required"`
}

type compareQuery struct {
	PlayerA string `validate:"required"`
	PlayerB string `validate:"required"`
}

type playerDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

type levelDTO struct {
	ID            string  `json:"id"`
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	VideoURL      string  `json:"video_url,omitempty"`
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
	Points        float64 `json:"points"`
	PointsDisplay string  `json:"points_display"`
	IsLegacy      bool    `json:"is_legacy"`
}

type completionDTO struct {
	ID             int64  `json:"id"`
	LevelID        string `json:"level_id"`
	LevelName      string `json:"level_name,omitempty"`
	LevelRank      int    `json:"level_rank,omitempty"`
	PlayerID       int64  `json:"player_id"`
	PlayerName     string `json:"player_name,omitempty"`
	CompletionURL  string `json:"completion_url,omitempty"`
	CompletionDate string `json:"completion_date,omitempty"`
}

type victorDTO struct {
	Name           string `json:"name"`
	CompletionURL  string `json:"completion_url,omitempty"`
	CompletionDate string `json:"completion_date,omitempty"`
}

type listLevelDTO struct {
	levelDTO
	FirstVictor string      `json:"first_victor,omitempty"`
	Victors     []victorDTO `json:"victors"`
}

type levelPointsDTO struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Points        float64 `json:"points"`
	PointsDisplay string  `json:"points_display"`
}

type leaderboardEntryDTO struct {
	Position        int              `json:"position"`
	Name            string           `json:"name"`
	TotalPoints     float64          `json:"total_points"`
	PointsDisplay   string           `json:"points_display"`
	CompletedLevels []levelPointsDTO `json:"completed_levels"`
}

type summaryDTO struct {
	TotalLevels                int       `json:"total_levels"`
	TotalPossiblePoints        float64   `json:"total_possible_points"`
	TotalPossiblePointsDisplay string    `json:"total_possible_points_display"`
	AveragePointsPerLevel      float64   `json:"average_points_per_level"`
	RankedPlayerCount          int       `json:"ranked_player_count"`
	HardestLevel               *levelDTO `json:"hardest_level"`
	EasiestLevel               *levelDTO `json:"easiest_level"`
}

type profileCompletionDTO struct {
	Rank           int     `json:"rank"`
	LevelID        string  `json:"level_id"`
	LevelName      string  `json:"level_name"`
	Points         float64 `json:"points"`
	PointsDisplay  string  `json:"points_display"`
	CompletionURL  string  `json:"completion_url,omitempty"`
	CompletionDate string  `json:"completion_date,omitempty"`
	IsFirstVictor  bool    `json:"is_first_victor"`
	IsLegacy       bool    `json:"is_legacy"`
}

type profileDTO struct {
	Name                    string                 `json:"name"`
	TotalPoints             float64                `json:"total_points"`
	PointsDisplay           string                 `json:"points_display"`
	MainListCompletionCount int                    `json:"main_list_completion_count"`
	TotalMainListLevels     int                    `json:"total_main_list_levels"`
	ProgressPercentage      float64                `json:"progress_percentage"`
	HardestCompletion       *profileCompletionDTO  `json:"hardest_completion"`
	Completions             []profileCompletionDTO `json:"completions"`
}

type timelinePointDTO struct {
	Date      string `json:"date"`
	Rank      int    `json:"rank"`
	LevelName string `json:"level_name"`
	IsLegacy  bool   `json:"is_legacy"`
}

type comparisonDTO struct {
	PlayerA          string                 `json:"player_a"`
	PlayerB          string                 `json:"player_b"`
	PointsA          float64                `json:"points_a"`
	PointsB          float64                `json:"points_b"`
	PointsADisplay   string                 `json:"points_a_display"`
	PointsBDisplay   string                 `json:"points_b_display"`
	CompletionCountA int                    `json:"completion_count_a"`
	CompletionCountB int                    `json:"completion_count_b"`
	PointsDelta      float64                `json:"points_delta"`
	CompletionDelta  int                    `json:"completion_delta"`
	CommonLevelNames []string               `json:"common_level_names"`
	OnlyA            []string               `json:"only_a"`
	OnlyB            []string               `json:"only_b"`
	CompletionsA     []profileCompletionDTO `json:"completions_a"`
	CompletionsB     []profileCompletionDTO `json:"completions_b"`
}

type playerCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type statsDTO struct {
	TotalLevels                int              `json:"total_levels"`
	TotalCompletions           int              `json:"total_completions"`
	TotalPointsAwarded         float64          `json:"total_points_awarded"`
	TotalPointsPossible        float64          `json:"total_points_possible"`
	UniqueVictorCount          int              `json:"unique_victor_count"`
	MostActivePlayers          []string         `json:"most_active_players"`
	MaxCompletionCount         int              `json:"max_completion_count"`
	MostFrequentFirstVictors   []string         `json:"most_frequent_first_victors"`
	MaxFirstVictoryCount       int              `json:"max_first_victory_count"`
	AverageCompletionsPerLevel float64          `json:"average_completions_per_level"`
	TopByCompletions           []playerCountDTO `json:"top_by_completions"`
}

type challengeDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Month            string   `json:"month"`
	Description      string   `json:"description,omitempty"`
	VideoURL         string   `json:"video_url,omitempty"`
	ThumbnailURL     string   `json:"thumbnail_url,omitempty"`
	CreatorName      string   `json:"creator_name,omitempty"`
	DifficultyRating string   `json:"difficulty_rating,omitempty"`
	IsCurrent        bool     `json:"is_current"`
	Status           string   `json:"status"`
	VictorNames      []string `json:"victor_names"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

type versionChangelogDTO struct {
	ID      int64    `json:"id"`
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Items   []string `json:"description_items"`
}

type listChangelogDTO struct {
	ID    int64    `json:"id"`
	Date  string   `json:"date"`
	Items []string `json:"description_items"`
}

type changelogsDTO struct {
	VersionChanges []versionChangelogDTO `json:"version_changes"`
	ListChanges    []listChangelogDTO    `json:"list_changes"`
}

// formatPoints renders a score with two decimals. Scores are never rounded before this point.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatTimestamp(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		CreatedAt: formatTimestamp(v.CreatedAt),
	}
}

func rankedLevelToDTO(id string, rank int, name, videoURL string) levelDTO {
	points := ranking.Points(rank)
	return levelDTO{
		ID:            id,
		Rank:          rank,
		Name:          name,
		VideoURL:      videoURL,
		ThumbnailURL:  ranking.ThumbnailURL(videoURL),
		Points:        points,
		PointsDisplay: formatPoints(points),
		IsLegacy:      ranking.IsLegacy(rank),
	}
}

func levelToDTO(v level.Level) levelDTO {
	return rankedLevelToDTO(v.ID, v.Rank, v.Name, v.VideoURL)
}

func completionToDTO(v completion.Completion) completionDTO {
	return completionDTO{
		ID:             v.ID,
		LevelID:        v.LevelID,
		LevelName:      v.LevelName,
		LevelRank:      v.LevelRank,
		PlayerID:       v.PlayerID,
		PlayerName:     v.PlayerName,
		CompletionURL:  v.CompletionURL,
		CompletionDate: v.CompletionDate,
	}
}

func completionsToDTO(items []completion.Completion) []completionDTO {
	out := make([]completionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, completionToDTO(item))
	}
	return out
}

func listLevelToDTO(v ranking.Level) listLevelDTO {
	out := listLevelDTO{
		levelDTO: rankedLevelToDTO(v.ID, v.Rank, v.Name, v.VideoURL),
		Victors:  make([]victorDTO, 0, len(v.Victors)),
	}
	out.FirstVictor, _ = v.FirstVictor()
	for _, victor := range v.Victors {
		out.Victors = append(out.Victors, victorDTO{
			Name:           victor.Name,
			CompletionURL:  victor.CompletionURL,
			CompletionDate: victor.CompletionDate,
		})
	}
	return out
}

func leaderboardToDTO(entries []ranking.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		levels := make([]levelPointsDTO, 0, len(entry.CompletedLevels))
		for _, lvl := range entry.CompletedLevels {
			levels = append(levels, levelPointsDTO{
				Rank:          lvl.Rank,
				Name:          lvl.Name,
				Points:        lvl.Points,
				PointsDisplay: formatPoints(lvl.Points),
			})
		}
		out = append(out, leaderboardEntryDTO{
			Position:        entry.Position,
			Name:            entry.Name,
			TotalPoints:     entry.TotalPoints,
			PointsDisplay:   formatPoints(entry.TotalPoints),
			CompletedLevels: levels,
		})
	}
	return out
}

func optionalLevelToDTO(v *ranking.Level) *levelDTO {
	if v == nil {
		return nil
	}
	out := rankedLevelToDTO(v.ID, v.Rank, v.Name, v.VideoURL)
	return &out
}

func summaryToDTO(v ranking.ListSummary) summaryDTO {
	return summaryDTO{
		TotalLevels:                v.TotalLevels,
		TotalPossiblePoints:        v.TotalPossiblePoints,
		TotalPossiblePointsDisplay: formatPoints(v.TotalPossiblePoints),
		AveragePointsPerLevel:      v.AveragePointsPerLevel,
		RankedPlayerCount:          v.RankedPlayerCount,
		HardestLevel:               optionalLevelToDTO(v.HardestLevel),
		EasiestLevel:               optionalLevelToDTO(v.EasiestLevel),
	}
}

func profileCompletionToDTO(v ranking.Completion) profileCompletionDTO {
	return profileCompletionDTO{
		Rank:           v.Rank,
		LevelID:        v.LevelID,
		LevelName:      v.LevelName,
		Points:         v.Points,
		PointsDisplay:  formatPoints(v.Points),
		CompletionURL:  v.CompletionURL,
		CompletionDate: v.CompletionDate,
		IsFirstVictor:  v.IsFirstVictor,
		IsLegacy:       ranking.IsLegacy(v.Rank),
	}
}

func profileCompletionsToDTO(items []ranking.Completion) []profileCompletionDTO {
	out := make([]profileCompletionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, profileCompletionToDTO(item))
	}
	return out
}

func profileToDTO(v ranking.PlayerProfile) profileDTO {
	out := profileDTO{
		Name:                    v.Name,
		TotalPoints:             v.TotalPoints,
		PointsDisplay:           formatPoints(v.TotalPoints),
		MainListCompletionCount: v.MainListCompletionCount,
		TotalMainListLevels:     v.TotalMainListLevels,
		ProgressPercentage:      v.ProgressPercentage,
		Completions:             profileCompletionsToDTO(v.Completions),
	}
	if hardest := v.HardestCompletion(); hardest != nil {
		dto := profileCompletionToDTO(*hardest)
		out.HardestCompletion = &dto
	}
	return out
}

func timelineToDTO(points []ranking.TimelinePoint) []timelinePointDTO {
	out := make([]timelinePointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, timelinePointDTO{
			Date:      p.Date.Format(ranking.DateLayout),
			Rank:      p.Rank,
			LevelName: p.LevelName,
			IsLegacy:  p.IsLegacy,
		})
	}
	return out
}

func comparisonToDTO(v ranking.Comparison) comparisonDTO {
	return comparisonDTO{
		PlayerA:          v.PlayerA,
		PlayerB:          v.PlayerB,
		PointsA:          v.PointsA,
		PointsB:          v.PointsB,
		PointsADisplay:   formatPoints(v.PointsA),
		PointsBDisplay:   formatPoints(v.PointsB),
		CompletionCountA: v.CompletionCountA,
		CompletionCountB: v.CompletionCountB,
		PointsDelta:      v.PointsDelta,
		CompletionDelta:  v.CompletionDelta,
		CommonLevelNames: nonNilStrings(v.CommonLevelNames),
		OnlyA:            nonNilStrings(v.OnlyA),
		OnlyB:            nonNilStrings(v.OnlyB),
		CompletionsA:     profileCompletionsToDTO(v.CompletionsA),
		CompletionsB:     profileCompletionsToDTO(v.CompletionsB),
	}
}

func statsToDTO(v ranking.Stats) statsDTO {
	top := make([]playerCountDTO, 0, len(v.TopByCompletions))
	for _, item := range v.TopByCompletions {
		top = append(top, playerCountDTO{Name: item.Name, Count: item.Count})
	}
	return statsDTO{
		TotalLevels:                v.TotalLevels,
		TotalCompletions:           v.TotalCompletions,
		TotalPointsAwarded:         v.TotalPointsAwarded,
		TotalPointsPossible:        v.TotalPointsPossible,
		UniqueVictorCount:          v.UniqueVictorCount,
		MostActivePlayers:          nonNilStrings(v.MostActivePlayers),
		MaxCompletionCount:         v.MaxCompletionCount,
		MostFrequentFirstVictors:   nonNilStrings(v.MostFrequentFirstVictors),
		MaxFirstVictoryCount:       v.MaxFirstVictoryCount,
		AverageCompletionsPerLevel: v.AverageCompletionsPerLevel,
		TopByCompletions:           top,
	}
}

func challengeToDTO(v challenge.Challenge) challengeDTO {
	return challengeDTO{
		ID:               v.ID,
		Name:             v.Name,
		Month:            v.Month,
		Description:      v.Description,
		VideoURL:         v.VideoURL,
		ThumbnailURL:     ranking.ThumbnailURL(v.VideoURL),
		CreatorName:      v.CreatorName,
		DifficultyRating: v.DifficultyRating,
		IsCurrent:        v.IsCurrent,
		Status:           string(v.Status),
		VictorNames:      nonNilStrings(v.VictorNames),
		UpdatedAt:        formatTimestamp(v.UpdatedAt),
	}
}

func versionChangelogToDTO(v changelog.VersionEntry) versionChangelogDTO {
	return versionChangelogDTO{ID: v.ID, Version: v.Version, Date: v.Date, Items: nonNilStrings(v.Items)}
}

func listChangelogToDTO(v changelog.ListEntry) listChangelogDTO {
	return listChangelogDTO{ID: v.ID, Date: v.Date, Items: nonNilStrings(v.Items)}
}

func changelogsToDTO(v usecase.Changelogs) changelogsDTO {
	out := changelogsDTO{
		VersionChanges: make([]versionChangelogDTO, 0, len(v.Versions)),
		ListChanges:    make([]listChangelogDTO, 0, len(v.List)),
	}
	for _, item := range v.Versions {
		out.VersionChanges = append(out.VersionChanges, versionChangelogToDTO(item))
	}
	for _, item := range v.List {
		out.ListChanges = append(out.ListChanges, listChangelogToDTO(item))
	}
	return out
}
