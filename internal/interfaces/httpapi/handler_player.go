package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list players failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := parseIDParam("playerID", r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.logFailure(ctx, "get player failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

// playerSubresource serves /v1/players/name/{name} and /v1/players/{playerID}/completions.
func (h *Handler) playerSubresource(w http.ResponseWriter, r *http.Request) {
	first := r.PathValue("playerID")
	resource := r.PathValue("resource")
	switch {
	case first == "name":
		r.SetPathValue("name", resource)
		h.GetPlayerByName(w, r)
	case resource == "completions":
		h.ListPlayerCompletions(w, r)
	default:
		writeError(r.Context(), w, fmt.Errorf("%w: unknown player resource %q", usecase.ErrNotFound, resource))
	}
}

func (h *Handler) GetPlayerByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerByName")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	item, err := h.playerService.GetByName(ctx, name)
	if err != nil {
		h.logFailure(ctx, "get player by name failed", err, "player_name", name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) ListPlayerCompletions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerCompletions")
	defer span.End()

	playerID, err := parseIDParam("playerID", r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.ListCompletions(ctx, playerID)
	if err != nil {
		h.logFailure(ctx, "list player completions failed", err, "player_id", playerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, completionsToDTO(items))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.Create(ctx, usecase.CreatePlayerInput{Name: req.Name})
	if err != nil {
		h.logFailure(ctx, "create player failed", err, "player_name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}
