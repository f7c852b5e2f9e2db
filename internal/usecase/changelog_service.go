package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
	"github.com/sourcegraph/conc/pool"
)

type ChangelogService struct {
	repo changelog.Repository
}

func NewChangelogService(repo changelog.Repository) *ChangelogService {
	return &ChangelogService{repo: repo}
}

type CreateVersionInput struct {
	Version string
	Date    string
	Items   []string
}

type CreateListEntryInput struct {
	Date  string
	Items []string
}

// Changelogs bundles both changelog kinds.
type Changelogs struct {
	Versions []changelog.VersionEntry
	List     []changelog.ListEntry
}

func (s *ChangelogService) All(ctx context.Context) (out Changelogs, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.All")
	defer func() { finishSpan(span, err) }()

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.repo.ListVersions(ctx)
		if err != nil {
			return fmt.Errorf("list version changelogs: %w", err)
		}
		out.Versions = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.repo.ListEntries(ctx)
		if err != nil {
			return fmt.Errorf("list list changelogs: %w", err)
		}
		out.List = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return Changelogs{}, err
	}

	return out, nil
}

func (s *ChangelogService) ListVersions(ctx context.Context) (out []changelog.VersionEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.ListVersions")
	defer func() { finishSpan(span, err) }()

	items, err := s.repo.ListVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list version changelogs: %w", err)
	}
	return items, nil
}

func (s *ChangelogService) GetVersion(ctx context.Context, version string) (out changelog.VersionEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.GetVersion")
	defer func() { finishSpan(span, err) }()

	version = strings.TrimSpace(version)
	if version == "" {
		return changelog.VersionEntry{}, fmt.Errorf("%w: version is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetVersion(ctx, version)
	if err != nil {
		return changelog.VersionEntry{}, fmt.Errorf("get version changelog: %w", err)
	}
	if !exists {
		return changelog.VersionEntry{}, fmt.Errorf("%w: version=%s", ErrNotFound, version)
	}
	return item, nil
}

func (s *ChangelogService) CreateVersion(ctx context.Context, input CreateVersionInput) (out changelog.VersionEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.CreateVersion")
	defer func() { finishSpan(span, err) }()

	item := changelog.VersionEntry{
		Version: strings.TrimSpace(input.Version),
		Date:    strings.TrimSpace(input.Date),
		Items:   nonBlank(input.Items),
	}
	if err := item.Validate(); err != nil {
		return changelog.VersionEntry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateVersion(ctx, item)
	if err != nil {
		if errors.Is(err, changelog.ErrDuplicateVersion) {
			return changelog.VersionEntry{}, fmt.Errorf("%w: version %s already exists", ErrConflict, item.Version)
		}
		return changelog.VersionEntry{}, fmt.Errorf("create version changelog: %w", err)
	}
	return created, nil
}

func (s *ChangelogService) DeleteVersion(ctx context.Context, version string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.DeleteVersion")
	defer func() { finishSpan(span, err) }()

	version = strings.TrimSpace(version)
	if version == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidInput)
	}

	deleted, err := s.repo.DeleteVersion(ctx, version)
	if err != nil {
		return fmt.Errorf("delete version changelog: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: version=%s", ErrNotFound, version)
	}
	return nil
}

func (s *ChangelogService) ListEntries(ctx context.Context) (out []changelog.ListEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.ListEntries")
	defer func() { finishSpan(span, err) }()

	items, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list list changelogs: %w", err)
	}
	return items, nil
}

func (s *ChangelogService) GetEntry(ctx context.Context, rawID string) (out changelog.ListEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.GetEntry")
	defer func() { finishSpan(span, err) }()

	entryID, err := parseEntryID(rawID)
	if err != nil {
		return changelog.ListEntry{}, err
	}

	item, exists, err := s.repo.GetEntry(ctx, entryID)
	if err != nil {
		return changelog.ListEntry{}, fmt.Errorf("get list changelog: %w", err)
	}
	if !exists {
		return changelog.ListEntry{}, fmt.Errorf("%w: list changelog=%d", ErrNotFound, entryID)
	}
	return item, nil
}

func (s *ChangelogService) CreateEntry(ctx context.Context, input CreateListEntryInput) (out changelog.ListEntry, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.CreateEntry")
	defer func() { finishSpan(span, err) }()

	item := changelog.ListEntry{
		Date:  strings.TrimSpace(input.Date),
		Items: nonBlank(input.Items),
	}
	if err := item.Validate(); err != nil {
		return changelog.ListEntry{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.CreateEntry(ctx, item)
	if err != nil {
		return changelog.ListEntry{}, fmt.Errorf("create list changelog: %w", err)
	}
	return created, nil
}

func (s *ChangelogService) DeleteEntry(ctx context.Context, rawID string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChangelogService.DeleteEntry")
	defer func() { finishSpan(span, err) }()

	entryID, err := parseEntryID(rawID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("delete list changelog: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: list changelog=%d", ErrNotFound, entryID)
	}
	return nil
}

func parseEntryID(raw string) (int64, error) {
	entryID, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || entryID <= 0 {
		return 0, fmt.Errorf("%w: invalid list changelog id %q", ErrInvalidInput, raw)
	}
	return entryID, nil
}

func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
