package service

import (
	"context"
	"fmt"
	"time"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
	"tipcloud/pkg/apperror"
	"tipcloud/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultRecentTips = 10
	maxRecentTips     = 50
)

// TipServiceImpl implements ports.TipService.
type TipServiceImpl struct {
	directory ports.DirectoryService
	tipRepo   ports.TipRepository
	guard     ports.TipGuard
	bridge    ports.WalletBridge
	guardTTL  time.Duration
	log       zerolog.Logger
}

// NewTipService creates a new TipServiceImpl.
func NewTipService(
	directory ports.DirectoryService,
	tipRepo ports.TipRepository,
	guard ports.TipGuard,
	bridge ports.WalletBridge,
	guardTTL time.Duration,
	log zerolog.Logger,
) *TipServiceImpl {
	return &TipServiceImpl{
		directory: directory,
		tipRepo:   tipRepo,
		guard:     guard,
		bridge:    bridge,
		guardTTL:  guardTTL,
		log:       logger.Component(log, "tips"),
	}
}

// Send submits a tip to a DJ through the wallet.
//
// Only one submission per DJ may be in flight; a concurrent one is rejected
// with TIP_002 rather than queued. Wallet outcomes, failures included, come
// back as a TipResult with a nil error.
func (s *TipServiceImpl) Send(ctx context.Context, req ports.SendTipRequest) (*domain.TipResult, error) {
	dj, err := s.directory.Get(ctx, req.DJID)
	if err != nil {
		return nil, err
	}

	key := domain.BuildTipGuardKey(dj.ID)
	token, ok, err := s.guard.Acquire(ctx, key, s.guardTTL)
	if err != nil {
		return nil, apperror.ErrCacheError(err)
	}
	if !ok {
		return nil, apperror.ErrTipInFlight()
	}
	defer func() {
		if err := s.guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
			s.log.Warn().Err(err).Str("dj_id", dj.ID).Msg("failed to release tip guard")
		}
	}()

	tipReq := domain.TipRequest{
		RecipientAddress: dj.WalletAddress,
		AmountSatoshis:   req.AmountSats,
		Memo:             req.Memo,
	}
	result := s.bridge.SendTip(ctx, tipReq)

	if result.ErrorKind != domain.TipErrorInvalidRequest {
		s.record(ctx, dj.ID, tipReq, result)
	}

	s.log.Info().
		Str("dj_id", dj.ID).
		Int64("amount_sats", req.AmountSats).
		Str("btc", domain.FormatBTC(req.AmountSats)).
		Bool("succeeded", result.Succeeded).
		Str("error_kind", string(result.ErrorKind)).
		Msg("tip processed")

	return &result, nil
}

// Stats returns the successful tip totals for a DJ.
func (s *TipServiceImpl) Stats(ctx context.Context, djID string) (*domain.TipStats, error) {
	stats, err := s.tipRepo.Stats(ctx, djID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("tip stats: %w", err))
	}
	return stats, nil
}

// Recent lists the latest tips to a DJ.
func (s *TipServiceImpl) Recent(ctx context.Context, djID string, limit int) ([]domain.Tip, error) {
	if limit <= 0 {
		limit = defaultRecentTips
	}
	if limit > maxRecentTips {
		limit = maxRecentTips
	}
	tips, err := s.tipRepo.ListByDJ(ctx, djID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("recent tips: %w", err))
	}
	if tips == nil {
		tips = []domain.Tip{}
	}
	return tips, nil
}

// record writes the ledger entry. A failed write never changes the result
// the caller sees: the transfer has already happened or not.
func (s *TipServiceImpl) record(ctx context.Context, djID string, req domain.TipRequest, result domain.TipResult) {
	tip := &domain.Tip{
		ID:               uuid.New(),
		DJID:             djID,
		SenderAddress:    s.bridge.Current().StacksAddress(),
		RecipientAddress: req.RecipientAddress,
		AmountSats:       req.AmountSatoshis,
		Memo:             req.Memo,
		Status:           domain.TipStatusFailed,
		ErrorKind:        result.ErrorKind,
		CreatedAt:        time.Now().UTC(),
	}
	if result.Succeeded {
		txID := result.TransactionID
		tip.TransactionID = &txID
		tip.Status = domain.TipStatusSuccess
	}

	if err := s.tipRepo.Create(context.WithoutCancel(ctx), tip); err != nil {
		s.log.Error().Err(err).Str("dj_id", djID).Str("status", string(tip.Status)).Msg("failed to record tip")
	}
}
