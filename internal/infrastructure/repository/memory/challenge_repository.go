package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/solblist-api/internal/domain/challenge"
)

type ChallengeRepository struct {
	mu   sync.RWMutex
	byID map[string]challenge.Challenge
}

func NewChallengeRepository(items []challenge.Challenge) *ChallengeRepository {
	byID := make(map[string]challenge.Challenge, len(items))
	for _, c := range items {
		byID[c.ID] = cloneChallenge(c)
	}

	return &ChallengeRepository{byID: byID}
}

func (r *ChallengeRepository) List(_ context.Context) ([]challenge.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]challenge.Challenge, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, cloneChallenge(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsCurrent != out[j].IsCurrent {
			return out[i].IsCurrent
		}
		if out[i].Month != out[j].Month {
			return out[i].Month > out[j].Month
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *ChallengeRepository) GetByID(_ context.Context, id string) (challenge.Challenge, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return challenge.Challenge{}, false, nil
	}
	return cloneChallenge(c), true, nil
}

func (r *ChallengeRepository) Create(_ context.Context, item challenge.Challenge) (challenge.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[item.ID]; exists {
		return challenge.Challenge{}, fmt.Errorf("%w: %s", challenge.ErrDuplicateID, item.ID)
	}

	now := time.Now().UTC()
	item = cloneChallenge(item)
	if item.VictorNames == nil {
		item.VictorNames = []string{}
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	r.byID[item.ID] = item

	return cloneChallenge(item), nil
}

func (r *ChallengeRepository) Update(_ context.Context, item challenge.Challenge) (challenge.Challenge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[item.ID]
	if !ok {
		return challenge.Challenge{}, false, nil
	}

	item = cloneChallenge(item)
	if item.VictorNames == nil {
		item.VictorNames = []string{}
	}
	item.IsCurrent = current.IsCurrent
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = time.Now().UTC()
	r.byID[item.ID] = item

	return cloneChallenge(item), true, nil
}

func (r *ChallengeRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *ChallengeRepository) SetCurrent(_ context.Context, id string) (challenge.Challenge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	target, ok := r.byID[id]
	if !ok {
		return challenge.Challenge{}, false, nil
	}

	now := time.Now().UTC()
	for key, c := range r.byID {
		if key != id && c.IsCurrent {
			c.IsCurrent = false
			c.UpdatedAt = now
			r.byID[key] = c
		}
	}
	target.IsCurrent = true
	target.Status = challenge.StatusActive
	target.UpdatedAt = now
	r.byID[id] = target

	return cloneChallenge(target), true, nil
}

func (r *ChallengeRepository) AddVictorName(_ context.Context, id, name string) (challenge.Challenge, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return challenge.Challenge{}, false, nil
	}
	if !c.HasVictor(name) {
		c.VictorNames = append(append([]string(nil), c.VictorNames...), name)
		c.UpdatedAt = time.Now().UTC()
		r.byID[id] = c
	}

	return cloneChallenge(c), true, nil
}

func cloneChallenge(c challenge.Challenge) challenge.Challenge {
	if c.VictorNames != nil {
		c.VictorNames = append([]string{}, c.VictorNames...)
	}
	return c
}
