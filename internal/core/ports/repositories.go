package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"

	"tipcloud/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicate is returned by Create when a unique key (account email, DJ
// owner) is already taken.
var ErrDuplicate = errors.New("record already exists")

// DJRepository defines persistence operations for DJ profiles.
// Lookups return nil, nil when the profile does not exist.
type DJRepository interface {
	Create(ctx context.Context, dj *domain.DJProfile) error
	GetByID(ctx context.Context, id string) (*domain.DJProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.DJProfile, error)
	List(ctx context.Context) ([]domain.DJProfile, error)
}

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TipRepository records tip submission attempts.
type TipRepository interface {
	Create(ctx context.Context, tip *domain.Tip) error
	ListByDJ(ctx context.Context, djID string, limit int) ([]domain.Tip, error)
	Stats(ctx context.Context, djID string) (*domain.TipStats, error)
}
