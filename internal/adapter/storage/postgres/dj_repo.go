package postgres

import (
	"context"
	"errors"
	"fmt"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

const djColumns = `id, user_id, name, genre, bio, soundcloud_url, wallet_address, image_url, followers, created_at, updated_at`

// DJRepo implements ports.DJRepository.
type DJRepo struct {
	pool Pool
}

// NewDJRepo creates a new DJRepo.
func NewDJRepo(pool Pool) *DJRepo {
	return &DJRepo{pool: pool}
}

// Create inserts a DJ profile.
func (r *DJRepo) Create(ctx context.Context, dj *domain.DJProfile) error {
	query := `INSERT INTO dj_profiles (` + djColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		dj.ID, dj.UserID, dj.Name, dj.Genre, dj.Bio,
		dj.SoundCloudURL, dj.WalletAddress, dj.ImageURL, dj.Followers,
		dj.CreatedAt, dj.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert dj profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile by id. Returns nil, nil when absent.
func (r *DJRepo) GetByID(ctx context.Context, id string) (*domain.DJProfile, error) {
	query := `SELECT ` + djColumns + ` FROM dj_profiles WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id), "get dj by id")
}

// GetByUserID fetches the profile owned by userID. Returns nil, nil when absent.
func (r *DJRepo) GetByUserID(ctx context.Context, userID string) (*domain.DJProfile, error) {
	query := `SELECT ` + djColumns + ` FROM dj_profiles WHERE user_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, userID), "get dj by user id")
}

// List returns every stored profile, newest first.
func (r *DJRepo) List(ctx context.Context) ([]domain.DJProfile, error) {
	query := `SELECT ` + djColumns + ` FROM dj_profiles ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list dj profiles: %w", err)
	}
	defer rows.Close()

	var djs []domain.DJProfile
	for rows.Next() {
		dj := domain.DJProfile{}
		if err := scanDJ(rows, &dj); err != nil {
			return nil, fmt.Errorf("scan dj row: %w", err)
		}
		djs = append(djs, dj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dj rows: %w", err)
	}
	return djs, nil
}

func (r *DJRepo) scanOne(row pgx.Row, op string) (*domain.DJProfile, error) {
	dj := &domain.DJProfile{}
	if err := scanDJ(row, dj); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return dj, nil
}

func scanDJ(row pgx.Row, dj *domain.DJProfile) error {
	return row.Scan(
		&dj.ID, &dj.UserID, &dj.Name, &dj.Genre, &dj.Bio,
		&dj.SoundCloudURL, &dj.WalletAddress, &dj.ImageURL, &dj.Followers,
		&dj.CreatedAt, &dj.UpdatedAt,
	)
}
