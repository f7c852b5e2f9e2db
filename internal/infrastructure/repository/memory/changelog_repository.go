package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/changelog"
)

type ChangelogRepository struct {
	mu            sync.RWMutex
	nextVersionID int64
	nextEntryID   int64
	versions      map[string]changelog.VersionEntry
	entries       map[int64]changelog.ListEntry
}

func NewChangelogRepository(versions []changelog.VersionEntry, entries []changelog.ListEntry) *ChangelogRepository {
	r := &ChangelogRepository{
		nextVersionID: 1,
		nextEntryID:   1,
		versions:      make(map[string]changelog.VersionEntry, len(versions)),
		entries:       make(map[int64]changelog.ListEntry, len(entries)),
	}
	for _, v := range versions {
		v.ID = r.nextVersionID
		r.nextVersionID++
		v.Items = append([]string{}, v.Items...)
		r.versions[v.Version] = v
	}
	for _, e := range entries {
		e.ID = r.nextEntryID
		r.nextEntryID++
		e.Items = append([]string{}, e.Items...)
		r.entries[e.ID] = e
	}

	return r
}

func (r *ChangelogRepository) ListVersions(_ context.Context) ([]changelog.VersionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]changelog.VersionEntry, 0, len(r.versions))
	for _, v := range r.versions {
		v.Items = append([]string{}, v.Items...)
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Version > out[j].Version
	})

	return out, nil
}

func (r *ChangelogRepository) GetVersion(_ context.Context, version string) (changelog.VersionEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.versions[version]
	if !ok {
		return changelog.VersionEntry{}, false, nil
	}
	v.Items = append([]string{}, v.Items...)
	return v, true, nil
}

func (r *ChangelogRepository) CreateVersion(_ context.Context, item changelog.VersionEntry) (changelog.VersionEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.versions[item.Version]; exists {
		return changelog.VersionEntry{}, fmt.Errorf("%w: %s", changelog.ErrDuplicateVersion, item.Version)
	}

	item.ID = r.nextVersionID
	item.Items = append([]string{}, item.Items...)
	item.CreatedAt = time.Now().UTC()
	r.nextVersionID++
	r.versions[item.Version] = item

	return item, nil
}

func (r *ChangelogRepository) DeleteVersion(_ context.Context, version string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.versions[version]; !ok {
		return false, nil
	}
	delete(r.versions, version)
	return true, nil
}

func (r *ChangelogRepository) ListEntries(_ context.Context) ([]changelog.ListEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]changelog.ListEntry, 0, len(r.entries))
	for _, e := range r.entries {
		e.Items = append([]string{}, e.Items...)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *ChangelogRepository) GetEntry(_ context.Context, id int64) (changelog.ListEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return changelog.ListEntry{}, false, nil
	}
	e.Items = append([]string{}, e.Items...)
	return e, true, nil
}

func (r *ChangelogRepository) CreateEntry(_ context.Context, item changelog.ListEntry) (changelog.ListEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextEntryID
	item.Items = append([]string{}, item.Items...)
	item.CreatedAt = time.Now().UTC()
	r.nextEntryID++
	r.entries[item.ID] = item

	return item, nil
}

func (r *ChangelogRepository) DeleteEntry(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}
