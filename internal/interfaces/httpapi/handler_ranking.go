package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetList")
	defer span.End()

	levels, err := h.rankingService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "get list failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]listLevelDTO, 0, len(levels))
	for _, lvl := range levels {
		items = append(items, listLevelToDTO(lvl))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	board, err := h.rankingService.Leaderboard(ctx)
	if err != nil {
		h.logFailure(ctx, "get leaderboard failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}

func (h *Handler) GetLeaderboardSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboardSummary")
	defer span.End()

	summary, err := h.rankingService.Summary(ctx)
	if err != nil {
		h.logFailure(ctx, "get leaderboard summary failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summaryToDTO(summary))
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfile")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	profile, err := h.rankingService.Profile(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get profile failed", err, "player_name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetProfileTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetProfileTimeline")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	points, err := h.rankingService.Timeline(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get profile timeline failed", err, "player_name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, timelineToDTO(points))
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	query := compareQuery{
		PlayerA: strings.TrimSpace(r.URL.Query().Get("player_a")),
		PlayerB: strings.TrimSpace(r.URL.Query().Get("player_b")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.rankingService.Compare(ctx, query.PlayerA, query.PlayerB)
	if err != nil {
		h.logFailure(ctx, "compare players failed", err, "player_a", query.PlayerA, "player_b", query.PlayerB)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonToDTO(comparison))
}

func (h *Handler) ListComparablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListComparablePlayers")
	defer span.End()

	names, err := h.rankingService.PlayerNames(ctx)
	if err != nil {
		h.logFailure(ctx, "list comparable players failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nonNilStrings(names))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	stats, err := h.rankingService.Stats(ctx)
	if err != nil {
		h.logFailure(ctx, "get stats failed", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTO(stats))
}
