package postgres

import (
	"context"
	"fmt"

	"tipcloud/internal/core/domain"
)

// TipRepo implements ports.TipRepository.
type TipRepo struct {
	pool Pool
}

// NewTipRepo creates a new TipRepo.
func NewTipRepo(pool Pool) *TipRepo {
	return &TipRepo{pool: pool}
}

// Create records one submission attempt.
func (r *TipRepo) Create(ctx context.Context, t *domain.Tip) error {
	query := `INSERT INTO tips (id, dj_id, sender_address, recipient_address, amount_sats, memo,
		transaction_id, status, error_kind, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.DJID, t.SenderAddress, t.RecipientAddress, t.AmountSats, t.Memo,
		t.TransactionID, t.Status, t.ErrorKind, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tip: %w", err)
	}
	return nil
}

// ListByDJ returns the latest tips to a DJ, newest first.
func (r *TipRepo) ListByDJ(ctx context.Context, djID string, limit int) ([]domain.Tip, error) {
	query := `SELECT id, dj_id, sender_address, recipient_address, amount_sats, memo,
		transaction_id, status, error_kind, created_at
		FROM tips WHERE dj_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, djID, limit)
	if err != nil {
		return nil, fmt.Errorf("list tips: %w", err)
	}
	defer rows.Close()

	var tips []domain.Tip
	for rows.Next() {
		t := domain.Tip{}
		err := rows.Scan(
			&t.ID, &t.DJID, &t.SenderAddress, &t.RecipientAddress, &t.AmountSats, &t.Memo,
			&t.TransactionID, &t.Status, &t.ErrorKind, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan tip row: %w", err)
		}
		tips = append(tips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tip rows: %w", err)
	}
	return tips, nil
}

// Stats aggregates successful tips for a DJ.
func (r *TipRepo) Stats(ctx context.Context, djID string) (*domain.TipStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(amount_sats), 0)
		FROM tips WHERE dj_id = $1 AND status = 'SUCCESS'`

	stats := &domain.TipStats{}
	if err := r.pool.QueryRow(ctx, query, djID).Scan(&stats.Count, &stats.TotalSats); err != nil {
		return nil, fmt.Errorf("get tip stats: %w", err)
	}
	return stats, nil
}
