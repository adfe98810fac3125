package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"tipcloud/internal/core/domain"

	"github.com/google/uuid"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, email string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// DirectoryCache is the Redis-layer cache for directory listings.
type DirectoryCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns nil on a miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// TipGuard serialises tip submissions per DJ across the whole deployment.
type TipGuard interface {
	// Acquire returns a release token and true if key was free.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	Release(ctx context.Context, key string, token string) error
}

// WalletBridge is the wallet integration as seen by services.
type WalletBridge interface {
	ProbeConnection(ctx context.Context) bool
	Connect(ctx context.Context) domain.WalletConnection
	SendTip(ctx context.Context, req domain.TipRequest) domain.TipResult
	Providers() []string
	Current() domain.WalletConnection
	Subscribe() (<-chan domain.WalletConnection, func())
}

// --- Service Ports (Business Logic) ---

// DirectoryService lists and registers DJs.
type DirectoryService interface {
	List(ctx context.Context, q DJQuery) ([]domain.DJProfile, error)
	Genres(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*domain.DJProfile, error)
	Featured(ctx context.Context, limit int) ([]domain.DJProfile, error)
	Register(ctx context.Context, userID uuid.UUID, req RegisterDJRequest) (*domain.DJProfile, error)
}

// DJQuery filters and orders the directory.
type DJQuery struct {
	Search string
	Genre  string
	Sort   domain.DJSort
}

// RegisterDJRequest holds validated input for DJ registration.
type RegisterDJRequest struct {
	Name          string
	Genre         string
	Bio           string
	SoundCloudURL string
	WalletAddress string
	ImageURL      *string
}

// TipService submits and reports tips.
type TipService interface {
	Send(ctx context.Context, req SendTipRequest) (*domain.TipResult, error)
	Stats(ctx context.Context, djID string) (*domain.TipStats, error)
	Recent(ctx context.Context, djID string, limit int) ([]domain.Tip, error)
}

// SendTipRequest holds validated input for a tip submission.
type SendTipRequest struct {
	DJID       string
	AmountSats int64
	Memo       string
}

// WalletService exposes the wallet connection to the HTTP layer.
type WalletService interface {
	Status(ctx context.Context) WalletStatus
	Connect(ctx context.Context) domain.WalletConnection
	Subscribe() (<-chan domain.WalletConnection, func())
}

// WalletStatus is the passive view of the wallet: whether a session is
// detectable and what the last explicit connect published.
type WalletStatus struct {
	Detected   bool                    `json:"detected"`
	Providers  []string                `json:"providers"`
	Connection domain.WalletConnection `json:"connection"`
}

// AuthService defines account business logic.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, time.Time, error) // token, expiry, error
	Me(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}
