package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/usecase"
)

func (h *Handler) ListLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLevels")
	defer span.End()

	levels, err := h.levelService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list levels failed", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]levelDTO, 0, len(levels))
	for _, l := range levels {
		items = append(items, levelToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLevel")
	defer span.End()

	levelID := strings.TrimSpace(r.PathValue("levelID"))
	item, err := h.levelService.Get(ctx, levelID)
	if err != nil {
		h.logFailure(ctx, "get level failed", err, "level_id", levelID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, levelToDTO(item))
}

func (h *Handler) ListLevelVictors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLevelVictors")
	defer span.End()

	levelID := strings.TrimSpace(r.PathValue("levelID"))
	items, err := h.levelService.ListVictors(ctx, levelID)
	if err != nil {
		h.logFailure(ctx, "list level victors failed", err, "level_id", levelID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, completionsToDTO(items))
}

func (h *Handler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLevel")
	defer span.End()

	var req createLevelRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.levelService.Create(ctx, usecase.CreateLevelInput{
		ID:       req.ID,
		Rank:     req.Rank,
		Name:     req.Name,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		h.logFailure(ctx, "create level failed", err, "level_id", req.ID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, levelToDTO(item))
}

func (h *Handler) AddLevelVictor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddLevelVictor")
	defer span.End()

	levelID := strings.TrimSpace(r.PathValue("levelID"))
	var req addVictorRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.levelService.AddVictor(ctx, levelID, usecase.AddVictorInput{
		PlayerID:       req.PlayerID,
		PlayerName:     req.PlayerName,
		CompletionURL:  req.CompletionURL,
		CompletionDate: req.CompletionDate,
	})
	if err != nil {
		h.logFailure(ctx, "add level victor failed", err, "level_id", levelID, "player_id", req.PlayerID, "player_name", req.PlayerName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, completionToDTO(item))
}
