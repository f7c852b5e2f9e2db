package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/usecase"
)

func (h *Handler) ListChangelogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChangelogs")
	defer span.End()

	all, err := h.changelogService.All(ctx)
	if err != nil {
		h.logFailure(ctx, "list changelogs failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, changelogsToDTO(all))
}

func (h *Handler) ListVersionChangelogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVersionChangelogs")
	defer span.End()

	items, err := h.changelogService.ListVersions(ctx)
	if err != nil {
		h.logFailure(ctx, "list version changelogs failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]versionChangelogDTO, 0, len(items))
	for _, item := range items {
		out = append(out, versionChangelogToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetVersionChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVersionChangelog")
	defer span.End()

	version := strings.TrimSpace(r.PathValue("version"))
	item, err := h.changelogService.GetVersion(ctx, version)
	if err != nil {
		h.logFailure(ctx, "get version changelog failed", err, "version", version)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, versionChangelogToDTO(item))
}

func (h *Handler) CreateVersionChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVersionChangelog")
	defer span.End()

	var req createVersionChangelogRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.changelogService.CreateVersion(ctx, usecase.CreateVersionInput{
		Version: req.Version,
		Date:    req.Date,
		Items:   req.Items,
	})
	if err != nil {
		h.logFailure(ctx, "create version changelog failed", err, "version", req.Version)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, versionChangelogToDTO(item))
}

func (h *Handler) DeleteVersionChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteVersionChangelog")
	defer span.End()

	version := strings.TrimSpace(r.PathValue("version"))
	if err := h.changelogService.DeleteVersion(ctx, version); err != nil {
		h.logFailure(ctx, "delete version changelog failed", err, "version", version)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"version": version, "status": "deleted"})
}

func (h *Handler) ListListChangelogs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListListChangelogs")
	defer span.End()

	items, err := h.changelogService.ListEntries(ctx)
	if err != nil {
		h.logFailure(ctx, "list list changelogs failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]listChangelogDTO, 0, len(items))
	for _, item := range items {
		out = append(out, listChangelogToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetListChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetListChangelog")
	defer span.End()

	entryID := strings.TrimSpace(r.PathValue("entryID"))
	item, err := h.changelogService.GetEntry(ctx, entryID)
	if err != nil {
		h.logFailure(ctx, "get list changelog failed", err, "entry_id", entryID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, listChangelogToDTO(item))
}

func (h *Handler) CreateListChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateListChangelog")
	defer span.End()

	var req createListChangelogRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.changelogService.CreateEntry(ctx, usecase.CreateListEntryInput{
		Date:  req.Date,
		Items: req.Items,
	})
	if err != nil {
		h.logFailure(ctx, "create list changelog failed", err, "date", req.Date)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, listChangelogToDTO(item))
}

func (h *Handler) DeleteListChangelog(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteListChangelog")
	defer span.End()

	entryID := strings.TrimSpace(r.PathValue("entryID"))
	if err := h.changelogService.DeleteEntry(ctx, entryID); err != nil {
		h.logFailure(ctx, "delete list changelog failed", err, "entry_id", entryID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": entryID, "status": "deleted"})
}
