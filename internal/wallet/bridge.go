package wallet

import (
	"context"
	"fmt"

	"tipcloud/internal/core/domain"
	"tipcloud/pkg/logger"

	"github.com/rs/zerolog"
)

// Bridge mediates between callers and whichever wallet integration the
// environment exposes. It is stateless between calls apart from publishing
// successful connections to the Store.
type Bridge struct {
	adapters []Adapter
	store    *Store
	log      zerolog.Logger
}

// NewBridge creates a Bridge over adapters, tried in the given order.
// A nil store gets a fresh one.
func NewBridge(store *Store, log zerolog.Logger, adapters ...Adapter) *Bridge {
	if store == nil {
		store = NewStore()
	}
	return &Bridge{
		adapters: adapters,
		store:    store,
		log:      logger.Component(log, "wallet_bridge"),
	}
}

// Store returns the connection store the bridge publishes to.
func (b *Bridge) Store() *Store {
	return b.store
}

// Current returns the last published connection.
func (b *Bridge) Current() domain.WalletConnection {
	return b.store.Get()
}

// Subscribe streams connection changes; see Store.Subscribe.
func (b *Bridge) Subscribe() (<-chan domain.WalletConnection, func()) {
	return b.store.Subscribe()
}

// Providers lists the names of adapters currently reporting themselves present.
func (b *Bridge) Providers() []string {
	var names []string
	for _, a := range b.adapters {
		if b.present(a) {
			names = append(names, a.Name())
		}
	}
	return names
}

// ProbeConnection reports whether a prior connection is detectable without
// user interaction. It never prompts and never fails.
func (b *Bridge) ProbeConnection(ctx context.Context) bool {
	a := b.active()
	if a == nil {
		return false
	}

	connected := false
	err := guard(a.Name(), func() error {
		connected = a.Probe(ctx)
		return nil
	})
	if err != nil {
		b.log.Warn().Err(err).Str("provider", a.Name()).Msg("passive probe failed")
		return false
	}

	b.log.Debug().Str("provider", a.Name()).Bool("connected", connected).Msg("passive probe")
	return connected
}

// Connect asks the first present provider for access. It may show the
// wallet's own UI and must only run in response to an explicit user action.
func (b *Bridge) Connect(ctx context.Context) domain.WalletConnection {
	a := b.active()
	if a == nil {
		b.log.Info().Msg("connect: no wallet provider present")
		return domain.WalletConnection{Connected: false}
	}

	log := b.log.With().Str("provider", a.Name()).Logger()
	log.Debug().Str("state", "connecting").Msg("connect")

	var addrs []domain.Address
	err := guard(a.Name(), func() error {
		var err error
		addrs, err = a.Connect(ctx)
		return err
	})
	if err != nil {
		log.Warn().Err(err).Str("state", "disconnected").Msg("connect failed")
		return domain.WalletConnection{Connected: false}
	}
	if len(addrs) == 0 {
		log.Warn().Str("state", "disconnected").Msg("connect returned no addresses")
		return domain.WalletConnection{Connected: false}
	}

	conn := domain.WalletConnection{
		Connected: true,
		Provider:  a.Name(),
		Addresses: addrs,
	}
	b.store.Set(conn)

	log.Info().Str("state", "connected").Int("addresses", len(addrs)).Msg("wallet connected")
	return conn
}

// SendTip submits a value transfer through the first present provider.
// Every failure is reported in the result; nothing is returned as an error.
// Calling it twice submits two independent transfers.
func (b *Bridge) SendTip(ctx context.Context, req domain.TipRequest) domain.TipResult {
	if err := req.Validate(); err != nil {
		return failed(fmt.Errorf("%w: %v", ErrInvalidRequest, err))
	}

	a := b.active()
	if a == nil {
		b.log.Info().Str("recipient", req.RecipientAddress).Msg("send tip: no wallet provider present")
		return failed(ErrWalletUnavailable)
	}

	log := b.log.With().
		Str("provider", a.Name()).
		Str("recipient", req.RecipientAddress).
		Int64("amount_sats", req.AmountSatoshis).
		Logger()
	log.Debug().Str("state", "submitting").Msg("send tip")

	var txID string
	err := guard(a.Name(), func() error {
		var err error
		txID, err = a.Submit(ctx, req)
		return err
	})
	if err == nil && txID == "" {
		err = &ProviderError{Provider: a.Name(), Message: "wallet returned an empty transaction id"}
	}
	if err != nil {
		log.Warn().Err(err).Str("state", "failed").Msg("tip submission failed")
		return failed(err)
	}

	log.Info().Str("state", "succeeded").Str("tx_id", txID).Msg("tip submitted")
	return domain.TipResult{Succeeded: true, TransactionID: txID}
}

// active returns the first adapter reporting itself present.
func (b *Bridge) active() Adapter {
	for _, a := range b.adapters {
		if b.present(a) {
			return a
		}
	}
	return nil
}

func (b *Bridge) present(a Adapter) bool {
	ok := false
	if err := guard(a.Name(), func() error {
		ok = a.Present()
		return nil
	}); err != nil {
		b.log.Warn().Err(err).Str("provider", a.Name()).Msg("provider detection failed")
		return false
	}
	return ok
}

// guard runs fn, converting a panic into a ProviderError.
func guard(provider string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ProviderError{Provider: provider, Message: fmt.Sprint(r)}
		}
	}()
	return fn()
}
