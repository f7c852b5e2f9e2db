package changelog

import "context"

// Repository describes changelog persistence needs from use cases.
type Repository interface {
	ListVersions(ctx context.Context) ([]VersionEntry, error)
	GetVersion(ctx context.Context, version string) (VersionEntry, bool, error)
	CreateVersion(ctx context.Context, item VersionEntry) (VersionEntry, error)
	DeleteVersion(ctx context.Context, version string) (bool, error)

	ListEntries(ctx context.Context) ([]ListEntry, error)
	GetEntry(ctx context.Context, id int64) (ListEntry, bool, error)
	CreateEntry(ctx context.Context, item ListEntry) (ListEntry, error)
	DeleteEntry(ctx context.Context, id int64) (bool, error)
}
