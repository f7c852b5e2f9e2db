package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
)

func newMemoryLevelService() *LevelService {
	levels := memory.NewLevelRepository(memory.SeedLevels())
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	completions := memory.NewCompletionRepository(levels, players, memory.SeedCompletions())
	return NewLevelService(levels, players, completions)
}

func TestLevelService_Create(t *testing.T) {
	t.Parallel()

	svc := newMemoryLevelService()
	tests := []struct {
		name  string
		input CreateLevelInput
		want  error
	}{
		{name: "valid", input: CreateLevelInput{ID: "dark-matter", Rank: 5, Name: "Dark Matter"}},
		{name: "missing id", input: CreateLevelInput{Rank: 6, Name: "No Id"}, want: ErrInvalidInput},
		{name: "missing name", input: CreateLevelInput{ID: "no-name", Rank: 6}, want: ErrInvalidInput},
		{name: "zero rank", input: CreateLevelInput{ID: "zero", Rank: 0, Name: "Zero"}, want: ErrInvalidInput},
		{name: "duplicate id", input: CreateLevelInput{ID: "cosmic-cyclone", Rank: 1, Name: "Copy"}, want: ErrConflict},
	}

	for _, tt := range tests {
		_, err := svc.Create(t.Context(), tt.input)
		if tt.want == nil && err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if tt.want != nil && !errors.Is(err, tt.want) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestLevelService_AddVictor_ByName(t *testing.T) {
	t.Parallel()

	svc := newMemoryLevelService()
	created, err := svc.AddVictor(t.Context(), "cosmic-cyclone", AddVictorInput{
		PlayerName:     "Comet",
		CompletionURL:  " https://youtu.be/comet-cc ",
		CompletionDate: "2025-01-03",
	})
	if err != nil {
		t.Fatalf("add victor: %v", err)
	}
	if created.PlayerID != memory.SeedPlayerCometID || created.CompletionURL != "https://youtu.be/comet-cc" {
		t.Fatalf("unexpected completion: %+v", created)
	}

	victors, err := svc.ListVictors(t.Context(), "cosmic-cyclone")
	if err != nil {
		t.Fatalf("list victors: %v", err)
	}
	if len(victors) != 2 || victors[1].PlayerName != "Comet" {
		t.Fatalf("unexpected victors: %+v", victors)
	}
}

func TestLevelService_AddVictor_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		levelID string
		input   AddVictorInput
		want    error
	}{
		{name: "no player", levelID: "cosmic-cyclone", input: AddVictorInput{}, want: ErrInvalidInput},
		{name: "bad date", levelID: "cosmic-cyclone", input: AddVictorInput{PlayerName: "Comet", CompletionDate: "03/01/2025"}, want: ErrInvalidInput},
		{name: "unknown level", levelID: "missing", input: AddVictorInput{PlayerName: "Comet"}, want: ErrNotFound},
		{name: "unknown player name", levelID: "cosmic-cyclone", input: AddVictorInput{PlayerName: "Nobody"}, want: ErrNotFound},
		{name: "unknown player id", levelID: "cosmic-cyclone", input: AddVictorInput{PlayerID: 404}, want: ErrNotFound},
		{name: "duplicate completion", levelID: "cosmic-cyclone", input: AddVictorInput{PlayerID: memory.SeedPlayerAuroraID}, want: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMemoryLevelService()
			_, err := svc.AddVictor(t.Context(), tt.levelID, tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLevelService_ListVictors_UnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := newMemoryLevelService().ListVictors(t.Context(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
