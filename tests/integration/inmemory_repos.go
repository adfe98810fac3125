package integration

import (
	"context"
	"sort"
	"strings"
	"sync"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*domain.User
}

func newInMemoryUserRepo() *inMemoryUserRepo {
	return &inMemoryUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *inMemoryUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ports.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// --- In-Memory DJ Repo ---

type inMemoryDJRepo struct {
	mu  sync.RWMutex
	djs map[string]*domain.DJProfile
}

func newInMemoryDJRepo() *inMemoryDJRepo {
	return &inMemoryDJRepo{djs: make(map[string]*domain.DJProfile)}
}

func (r *inMemoryDJRepo) Create(ctx context.Context, dj *domain.DJProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.djs[dj.ID]; ok {
		return ports.ErrDuplicate
	}
	cp := *dj
	r.djs[dj.ID] = &cp
	return nil
}

func (r *inMemoryDJRepo) GetByID(ctx context.Context, id string) (*domain.DJProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if dj, ok := r.djs[id]; ok {
		cp := *dj
		return &cp, nil
	}
	return nil, nil
}

func (r *inMemoryDJRepo) GetByUserID(ctx context.Context, userID string) (*domain.DJProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, dj := range r.djs {
		if dj.UserID != nil && *dj.UserID == userID {
			cp := *dj
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryDJRepo) List(ctx context.Context) ([]domain.DJProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.DJProfile, 0, len(r.djs))
	for _, dj := range r.djs {
		out = append(out, *dj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- In-Memory Tip Repo ---

type inMemoryTipRepo struct {
	mu   sync.RWMutex
	tips []domain.Tip
}

func newInMemoryTipRepo() *inMemoryTipRepo {
	return &inMemoryTipRepo{}
}

func (r *inMemoryTipRepo) Create(ctx context.Context, tip *domain.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tips = append(r.tips, *tip)
	return nil
}

func (r *inMemoryTipRepo) ListByDJ(ctx context.Context, djID string, limit int) ([]domain.Tip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Tip
	for i := len(r.tips) - 1; i >= 0 && len(out) < limit; i-- {
		if r.tips[i].DJID == djID {
			out = append(out, r.tips[i])
		}
	}
	return out, nil
}

func (r *inMemoryTipRepo) Stats(ctx context.Context, djID string) (*domain.TipStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &domain.TipStats{}
	for _, t := range r.tips {
		if t.DJID == djID && t.Status == domain.TipStatusSuccess {
			stats.Count++
			stats.TotalSats += t.AmountSats
		}
	}
	return stats, nil
}

func (r *inMemoryTipRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tips)
}
