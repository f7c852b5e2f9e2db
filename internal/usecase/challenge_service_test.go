package usecase

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/infrastructure/repository/memory"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) {
	return g.id, g.err
}

func newMemoryChallengeService() *ChallengeService {
	return NewChallengeService(memory.NewChallengeRepository(memory.SeedChallenges()), fixedIDGenerator{id: "a1b2"})
}

func TestChallengeService_Create_GeneratesSlugID(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	created, err := svc.Create(t.Context(), CreateChallengeInput{Name: "Cosmic Cyclone", Month: "April 2025"})
	if err != nil {
		t.Fatalf("create challenge: %v", err)
	}
	if created.ID != "april-2025-cosmic-cyclone" {
		t.Fatalf("unexpected generated id: %s", created.ID)
	}
	if created.Status != challenge.StatusActive || created.IsCurrent {
		t.Fatalf("unexpected defaults: %+v", created)
	}

	again, err := svc.Create(t.Context(), CreateChallengeInput{Name: "Cosmic Cyclone", Month: "April 2025"})
	if err != nil {
		t.Fatalf("create second challenge: %v", err)
	}
	if again.ID != "april-2025-cosmic-cyclone-a1b2" {
		t.Fatalf("expected suffixed id on collision, got %s", again.ID)
	}
}

func TestChallengeService_Create_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreateChallengeInput
		want  error
	}{
		{name: "missing name and month", input: CreateChallengeInput{}, want: ErrInvalidInput},
		{name: "missing month", input: CreateChallengeInput{ID: "x", Name: "X"}, want: ErrInvalidInput},
		{name: "bad status", input: CreateChallengeInput{Name: "X", Month: "May 2025", Status: "pending"}, want: ErrInvalidInput},
		{name: "duplicate explicit id", input: CreateChallengeInput{ID: "march-2025-orbit-run", Name: "Orbit Run", Month: "March 2025"}, want: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newMemoryChallengeService().Create(t.Context(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestChallengeService_Create_CurrentClearsPrevious(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	created, err := svc.Create(t.Context(), CreateChallengeInput{Name: "Night Shift", Month: "April 2025", IsCurrent: true})
	if err != nil {
		t.Fatalf("create challenge: %v", err)
	}
	if !created.IsCurrent {
		t.Fatalf("expected new challenge to be current: %+v", created)
	}

	items, err := svc.List(t.Context())
	if err != nil {
		t.Fatalf("list challenges: %v", err)
	}
	current := 0
	for _, c := range items {
		if c.IsCurrent {
			current++
		}
	}
	if current != 1 || items[0].ID != created.ID {
		t.Fatalf("expected exactly one current challenge listed first: %+v", items)
	}
}

func TestChallengeService_Update_Partial(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	description := "Updated description"
	archived := challenge.StatusArchived
	updated, err := svc.Update(t.Context(), "march-2025-orbit-run", challenge.Patch{
		Description: &description,
		Status:      &archived,
	})
	if err != nil {
		t.Fatalf("update challenge: %v", err)
	}
	if updated.Description != description || updated.Status != challenge.StatusArchived {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if updated.Name != "Orbit Run" || updated.CreatorName != "Comet" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}

	empty := " "
	if _, err := svc.Update(t.Context(), "march-2025-orbit-run", challenge.Patch{Name: &empty}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Update(t.Context(), "missing", challenge.Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChallengeService_SetCurrent(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	got, err := svc.SetCurrent(t.Context(), "february-2025-glass-moon")
	if err != nil {
		t.Fatalf("set current: %v", err)
	}
	if !got.IsCurrent || got.Status != challenge.StatusActive {
		t.Fatalf("unexpected current challenge: %+v", got)
	}

	previous, err := svc.Get(t.Context(), "march-2025-orbit-run")
	if err != nil {
		t.Fatalf("get previous: %v", err)
	}
	if previous.IsCurrent {
		t.Fatalf("previous challenge still current")
	}

	if _, err := svc.SetCurrent(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChallengeService_AddVictorName_Deduplicates(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	for i := 0; i < 2; i++ {
		if _, err := svc.AddVictorName(t.Context(), "march-2025-orbit-run", " Blitz "); err != nil {
			t.Fatalf("add victor: %v", err)
		}
	}

	got, err := svc.Get(t.Context(), "march-2025-orbit-run")
	if err != nil {
		t.Fatalf("get challenge: %v", err)
	}
	if diff := cmp.Diff([]string{"Aurora", "Blitz"}, got.VictorNames); diff != "" {
		t.Fatalf("unexpected victors (-want +got):\n%s", diff)
	}

	if _, err := svc.AddVictorName(t.Context(), "march-2025-orbit-run", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestChallengeService_Delete(t *testing.T) {
	t.Parallel()

	svc := newMemoryChallengeService()
	if err := svc.Delete(t.Context(), "february-2025-glass-moon"); err != nil {
		t.Fatalf("delete challenge: %v", err)
	}
	if err := svc.Delete(t.Context(), "february-2025-glass-moon"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
