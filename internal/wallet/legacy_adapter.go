package wallet

import (
	"bytes"
	"context"
	"encoding/json"

	"tipcloud/internal/core/domain"
)

// LegacyState is the passive state a generic wallet keeps in memory.
type LegacyState struct {
	Address     string
	Accounts    []domain.Address
	IsConnected bool
	Status      string
}

// LegacyTransfer is a transfer request in the generic wallet's terms.
type LegacyTransfer struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
	Memo      string `json:"memo,omitempty"`
	Asset     Asset  `json:"asset"`
}

// LegacySDK is the callback-style surface of generic wallets. Exactly one
// of the callbacks fires per call.
type LegacySDK interface {
	State() LegacyState
	RequestAccounts(ctx context.Context, onFinish func(json.RawMessage), onCancel func(), onError func(error))
	SendTransfer(ctx context.Context, t LegacyTransfer, onFinish func(string), onCancel func(), onError func(error))
}

// LegacyAdapter is the generic fallback integration.
type LegacyAdapter struct {
	name  string
	asset Asset
	sdk   LegacySDK
}

// NewLegacyAdapter creates a fallback adapter. A nil sdk means absent.
func NewLegacyAdapter(name string, asset Asset, sdk LegacySDK) *LegacyAdapter {
	if name == "" {
		name = "btc"
	}
	if asset == "" {
		asset = AssetSBTC
	}
	return &LegacyAdapter{name: name, asset: asset, sdk: sdk}
}

func (a *LegacyAdapter) Name() string  { return a.name }
func (a *LegacyAdapter) Present() bool { return a.sdk != nil }

// Probe trusts only explicit connection flags. A bare address field is not
// proof of an active session.
func (a *LegacyAdapter) Probe(_ context.Context) bool {
	st := a.sdk.State()
	return st.IsConnected || st.Status == "connected"
}

// Connect requests accounts and interprets whichever response shape the
// wallet returns.
func (a *LegacyAdapter) Connect(ctx context.Context) ([]domain.Address, error) {
	raw, err := awaitCallback(ctx, func(onFinish func(json.RawMessage), onCancel func(), onError func(error)) {
		a.sdk.RequestAccounts(ctx, onFinish, onCancel, onError)
	})
	if err != nil {
		return nil, a.wrap(err)
	}
	return a.interpretAccounts(raw)
}

// Submit sends the transfer and waits for the wallet's verdict.
func (a *LegacyAdapter) Submit(ctx context.Context, req domain.TipRequest) (string, error) {
	t := LegacyTransfer{
		Recipient: req.RecipientAddress,
		Amount:    req.AmountSatoshis,
		Memo:      req.Memo,
		Asset:     a.asset,
	}
	txID, err := awaitCallback(ctx, func(onFinish func(string), onCancel func(), onError func(error)) {
		a.sdk.SendTransfer(ctx, t, onFinish, onCancel, onError)
	})
	if err != nil {
		return "", a.wrap(err)
	}
	return txID, nil
}

// interpretAccounts accepts an address list, an {"addresses": [...]}
// object, or a bare boolean backed by cached accounts.
func (a *LegacyAdapter) interpretAccounts(raw json.RawMessage) ([]domain.Address, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var addrs []domain.Address
		if err := json.Unmarshal(raw, &addrs); err != nil {
			return nil, &ProviderError{Provider: a.name, Message: "malformed accounts response", Err: err}
		}
		return nonEmpty(addrs), nil
	case '{':
		var res getAddressesResult
		if err := json.Unmarshal(raw, &res); err != nil {
			return nil, &ProviderError{Provider: a.name, Message: "malformed accounts response", Err: err}
		}
		return nonEmpty(res.Addresses), nil
	case 't':
		return a.cachedAccounts(), nil
	}
	return nil, nil
}

func (a *LegacyAdapter) cachedAccounts() []domain.Address {
	st := a.sdk.State()
	addrs := nonEmpty(st.Accounts)
	if len(addrs) == 0 && st.Address != "" {
		addrs = []domain.Address{{Symbol: domain.SymbolStacks, Address: st.Address}}
	}
	return addrs
}

func (a *LegacyAdapter) wrap(err error) error {
	return wrapProvider(a.name, err)
}

func nonEmpty(addrs []domain.Address) []domain.Address {
	out := make([]domain.Address, 0, len(addrs))
	for _, addr := range addrs {
		if addr.Address != "" {
			out = append(out, addr)
		}
	}
	return out
}
