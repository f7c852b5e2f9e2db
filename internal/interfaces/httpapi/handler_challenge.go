package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/usecase"
)

func (h *Handler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChallenges")
	defer span.End()

	items, err := h.challengeService.List(ctx)
	if err != nil {
		h.logFailure(ctx, "list challenges failed", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]challengeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, challengeToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChallenge")
	defer span.End()

	challengeID := strings.TrimSpace(r.PathValue("challengeID"))
	item, err := h.challengeService.Get(ctx, challengeID)
	if err != nil {
		h.logFailure(ctx, "get challenge failed", err, "challenge_id", challengeID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, challengeToDTO(item))
}

func (h *Handler) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateChallenge")
	defer span.End()

	var req createChallengeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.challengeService.Create(ctx, usecase.CreateChallengeInput{
		ID:               req.ID,
		Name:             req.Name,
		Month:            req.Month,
		Description:      req.Description,
		VideoURL:         req.VideoURL,
		CreatorName:      req.CreatorName,
		DifficultyRating: req.DifficultyRating,
		IsCurrent:        req.IsCurrent,
		Status:           challenge.Status(req.Status),
		VictorNames:      req.VictorNames,
	})
	if err != nil {
		h.logFailure(ctx, "create challenge failed", err, "challenge_id", req.ID, "name", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, challengeToDTO(item))
}

func (h *Handler) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateChallenge")
	defer span.End()

	challengeID := strings.TrimSpace(r.PathValue("challengeID"))
	var req updateChallengeRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	patch := challenge.Patch{
		Name:             req.Name,
		Month:            req.Month,
		Description:      req.Description,
		VideoURL:         req.VideoURL,
		CreatorName:      req.CreatorName,
		DifficultyRating: req.DifficultyRating,
		VictorNames:      req.VictorNames,
	}
	if req.Status != nil {
		status := challenge.Status(*req.Status)
		patch.Status = &status
	}

	item, err := h.challengeService.Update(ctx, challengeID, patch)
	if err != nil {
		h.logFailure(ctx, "update challenge failed", err, "challenge_id", challengeID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, challengeToDTO(item))
}

func (h *Handler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteChallenge")
	defer span.End()

	challengeID := strings.TrimSpace(r.PathValue("challengeID"))
	if err := h.challengeService.Delete(ctx, challengeID); err != nil {
		h.logFailure(ctx, "delete challenge failed", err, "challenge_id", challengeID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": challengeID, "status": "deleted"})
}

func (h *Handler) SetCurrentChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCurrentChallenge")
	defer span.End()

	challengeID := strings.TrimSpace(r.PathValue("challengeID"))
	item, err := h.challengeService.SetCurrent(ctx, challengeID)
	if err != nil {
		h.logFailure(ctx, "set current challenge failed", err, "challenge_id", challengeID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, challengeToDTO(item))
}

func (h *Handler) AddChallengeVictor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddChallengeVictor")
	defer span.End()

	challengeID := strings.TrimSpace(r.PathValue("challengeID"))
	var req addChallengeVictorRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.challengeService.AddVictorName(ctx, challengeID, req.Name)
	if err != nil {
		h.logFailure(ctx, "add challenge victor failed", err, "challenge_id", challengeID, "victor", req.Name)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, challengeToDTO(item))
}
