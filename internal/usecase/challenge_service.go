package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
	"github.com/riskibarqy/solblist-api/internal/platform/id"
)

type ChallengeService struct {
	repo challenge.Repository
	ids  id.Generator
}

func NewChallengeService(repo challenge.Repository, ids id.Generator) *ChallengeService {
	return &ChallengeService{repo: repo, ids: ids}
}

// CreateChallengeInput creates a challenge. ID is derived from month and name when blank,
// and Status defaults to active.
type CreateChallengeInput struct {
	ID               string
	Name             string
	Month            string
	Description      string
	VideoURL         string
	CreatorName      string
	DifficultyRating string
	IsCurrent        bool
	Status           challenge.Status
	VictorNames      []string
}

func (s *ChallengeService) List(ctx context.Context) (out []challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.List")
	defer func() { finishSpan(span, err) }()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}

	return items, nil
}

func (s *ChallengeService) Get(ctx context.Context, challengeID string) (out challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Get")
	defer func() { finishSpan(span, err) }()

	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("get challenge: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge=%s", ErrNotFound, challengeID)
	}

	return item, nil
}

func (s *ChallengeService) Create(ctx context.Context, input CreateChallengeInput) (out challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Create")
	defer func() { finishSpan(span, err) }()

	item := challenge.Challenge{
		ID:               strings.TrimSpace(input.ID),
		Name:             strings.TrimSpace(input.Name),
		Month:            strings.TrimSpace(input.Month),
		Description:      strings.TrimSpace(input.Description),
		VideoURL:         strings.TrimSpace(input.VideoURL),
		CreatorName:      strings.TrimSpace(input.CreatorName),
		DifficultyRating: strings.TrimSpace(input.DifficultyRating),
		Status:           input.Status,
		VictorNames:      uniqueTrimmed(input.VictorNames),
	}
	if item.Status == "" {
		item.Status = challenge.StatusActive
	}

	explicitID := item.ID != ""
	if !explicitID {
		generated, err := s.generateID(ctx, item.Month, item.Name)
		if err != nil {
			return challenge.Challenge{}, err
		}
		item.ID = generated
	}
	if err := item.Validate(); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		if errors.Is(err, challenge.ErrDuplicateID) {
			return challenge.Challenge{}, fmt.Errorf("%w: challenge with id %s already exists", ErrConflict, item.ID)
		}
		return challenge.Challenge{}, fmt.Errorf("create challenge: %w", err)
	}

	if input.IsCurrent {
		return s.SetCurrent(ctx, created.ID)
	}
	return created, nil
}

// generateID slugs month and name, adding a random suffix when the slug is taken.
func (s *ChallengeService) generateID(ctx context.Context, month, name string) (string, error) {
	base := id.Slug(month, name)
	if base == "" {
		return "", fmt.Errorf("%w: challenge name and month are required", ErrInvalidInput)
	}

	_, exists, err := s.repo.GetByID(ctx, base)
	if err != nil {
		return "", fmt.Errorf("check challenge id: %w", err)
	}
	if !exists {
		return base, nil
	}

	suffix, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate challenge id suffix: %w", err)
	}
	return base + "-" + suffix, nil
}

func (s *ChallengeService) Update(ctx context.Context, challengeID string, patch challenge.Patch) (out challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Update")
	defer func() { finishSpan(span, err) }()

	current, err := s.Get(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, err
	}

	if patch.VictorNames != nil {
		patch.VictorNames = uniqueTrimmed(patch.VictorNames)
	}
	next := patch.Apply(current)
	next.Name = strings.TrimSpace(next.Name)
	next.Month = strings.TrimSpace(next.Month)
	if err := next.Validate(); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, exists, err := s.repo.Update(ctx, next)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("update challenge: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge=%s", ErrNotFound, current.ID)
	}

	return updated, nil
}

func (s *ChallengeService) Delete(ctx context.Context, challengeID string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.Delete")
	defer func() { finishSpan(span, err) }()

	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}

	deleted, err := s.repo.Delete(ctx, challengeID)
	if err != nil {
		return fmt.Errorf("delete challenge: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: challenge=%s", ErrNotFound, challengeID)
	}

	return nil
}

func (s *ChallengeService) SetCurrent(ctx context.Context, challengeID string) (out challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.SetCurrent")
	defer func() { finishSpan(span, err) }()

	challengeID = strings.TrimSpace(challengeID)
	if challengeID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.SetCurrent(ctx, challengeID)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("set current challenge: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge=%s", ErrNotFound, challengeID)
	}

	return item, nil
}

func (s *ChallengeService) AddVictorName(ctx context.Context, challengeID, name string) (out challenge.Challenge, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ChallengeService.AddVictorName")
	defer func() { finishSpan(span, err) }()

	challengeID = strings.TrimSpace(challengeID)
	name = strings.TrimSpace(name)
	if challengeID == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge id is required", ErrInvalidInput)
	}
	if name == "" {
		return challenge.Challenge{}, fmt.Errorf("%w: victor name is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.AddVictorName(ctx, challengeID, name)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("add challenge victor: %w", err)
	}
	if !exists {
		return challenge.Challenge{}, fmt.Errorf("%w: challenge=%s", ErrNotFound, challengeID)
	}

	return item, nil
}

func uniqueTrimmed(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
