package service

import (
	"context"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/core/ports"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	bridge ports.WalletBridge
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(bridge ports.WalletBridge) *WalletServiceImpl {
	return &WalletServiceImpl{bridge: bridge}
}

// Status reports the passive wallet state without prompting.
func (s *WalletServiceImpl) Status(ctx context.Context) ports.WalletStatus {
	providers := s.bridge.Providers()
	if providers == nil {
		providers = []string{}
	}
	return ports.WalletStatus{
		Detected:   s.bridge.ProbeConnection(ctx),
		Providers:  providers,
		Connection: s.bridge.Current(),
	}
}

// Connect asks the wallet for access, which may prompt the user. It waits
// as long as ctx allows.
func (s *WalletServiceImpl) Connect(ctx context.Context) domain.WalletConnection {
	return s.bridge.Connect(ctx)
}

// Subscribe streams connection changes.
func (s *WalletServiceImpl) Subscribe() (<-chan domain.WalletConnection, func()) {
	return s.bridge.Subscribe()
}
