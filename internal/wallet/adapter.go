package wallet

import (
	"context"

	"tipcloud/internal/core/domain"
)

// Adapter is one wallet integration strategy.
//
// Probe must only read state already resident in memory: it is called on
// every page load and must never cause a wallet prompt. Connect and Submit
// may block on a human approving a prompt for as long as ctx allows.
type Adapter interface {
	Name() string
	Present() bool
	Probe(ctx context.Context) bool
	Connect(ctx context.Context) ([]domain.Address, error)
	Submit(ctx context.Context, req domain.TipRequest) (string, error)
}
