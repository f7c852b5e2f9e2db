package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	changelogmock "github.com/riskibarqy/solblist-api/internal/mocks/domain/changelog"
	"github.com/stretchr/testify/mock"
)

func TestChangelogService_All(t *testing.T) {
	t.Parallel()

	repo := changelogmock.NewRepository(t)
	repo.On("ListVersions", mock.Anything).
		Return([]changelog.VersionEntry{{Version: "1.0.0", Date: "2024-12-10", Items: []string{"Initial release"}}}, nil).
		Once()
	repo.On("ListEntries", mock.Anything).
		Return([]changelog.ListEntry{{ID: 1, Date: "2024-12-10", Items: []string{"Moved"}}}, nil).
		Once()

	got, err := NewChangelogService(repo).All(context.Background())
	if err != nil {
		t.Fatalf("load changelogs: %v", err)
	}
	if len(got.Versions) != 1 || len(got.List) != 1 {
		t.Fatalf("unexpected changelogs: %+v", got)
	}
}

func TestChangelogService_All_Failure(t *testing.T) {
	t.Parallel()

	repoErr := errors.New("timeout")
	repo := changelogmock.NewRepository(t)
	repo.On("ListVersions", mock.Anything).Return(nil, repoErr).Maybe()
	repo.On("ListEntries", mock.Anything).Return([]changelog.ListEntry{}, nil).Maybe()

	if _, err := NewChangelogService(repo).All(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestChangelogService_CreateVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   CreateVersionInput
		repoErr error
		want    error
	}{
		{name: "valid", input: CreateVersionInput{Version: "1.2.0", Date: "2025-03-01", Items: []string{"New stats page", " "}}},
		{name: "bad date", input: CreateVersionInput{Version: "1.2.0", Date: "March 1", Items: []string{"x"}}, want: ErrInvalidInput},
		{name: "no items", input: CreateVersionInput{Version: "1.2.0", Date: "2025-03-01", Items: []string{" "}}, want: ErrInvalidInput},
		{name: "duplicate", input: CreateVersionInput{Version: "1.0.0", Date: "2025-03-01", Items: []string{"x"}}, repoErr: changelog.ErrDuplicateVersion, want: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := changelogmock.NewRepository(t)
			if tt.want == nil || tt.repoErr != nil {
				repo.On("CreateVersion", mock.Anything, mock.MatchedBy(func(v changelog.VersionEntry) bool {
					return v.Version == tt.input.Version && len(v.Items) > 0
				})).
					Return(func(_ context.Context, v changelog.VersionEntry) (changelog.VersionEntry, error) {
						if tt.repoErr != nil {
							return changelog.VersionEntry{}, tt.repoErr
						}
						v.ID = 10
						return v, nil
					}).
					Once()
			}

			got, err := NewChangelogService(repo).CreateVersion(context.Background(), tt.input)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create version: %v", err)
			}
			if got.ID != 10 || len(got.Items) != 1 {
				t.Fatalf("unexpected created version: %+v", got)
			}
		})
	}
}

func TestChangelogService_EntryIDParsing(t *testing.T) {
	t.Parallel()

	svc := NewChangelogService(changelogmock.NewRepository(t))
	for _, raw := range []string{"", "abc", "0", "-4"} {
		if _, err := svc.GetEntry(context.Background(), raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("GetEntry(%q): expected ErrInvalidInput, got %v", raw, err)
		}
		if err := svc.DeleteEntry(context.Background(), raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("DeleteEntry(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestChangelogService_DeleteEntry_NotFound(t *testing.T) {
	t.Parallel()

	repo := changelogmock.NewRepository(t)
	repo.On("DeleteEntry", mock.Anything, int64(42)).Return(false, nil).Once()

	err := NewChangelogService(repo).DeleteEntry(context.Background(), "42")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
