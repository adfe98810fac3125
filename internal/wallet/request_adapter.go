package wallet

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"tipcloud/internal/core/domain"
)

// Request methods understood by provider-specific wallets.
const (
	MethodGetAddresses = "getAddresses"
	MethodTransferStx  = "stx_transferStx"
	MethodCallContract = "stx_callContract"
)

// Asset selects how a tip is moved on chain.
type Asset string

const (
	// AssetSTX sends a native chain transfer.
	AssetSTX Asset = "stx"
	// AssetSBTC calls the sBTC token contract's transfer function.
	AssetSBTC Asset = "sbtc"
)

// DefaultSBTCContract is the mainnet sBTC token contract.
const DefaultSBTCContract = "SM3VDXK3WZZSA84XXFKAFAF15NNZX32CTSG82JFQ4.sbtc-token"

// Requester is a provider's generic request method keyed by method name.
type Requester interface {
	Request(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// RequestAdapterConfig configures a RequestAdapter.
type RequestAdapterConfig struct {
	Name         string
	Asset        Asset
	Network      string
	SBTCContract string
}

// RequestAdapter integrates wallets exposing a single request API
// (Leather-style). Passive state is what the last successful
// getAddresses call left behind.
type RequestAdapter struct {
	cfg    RequestAdapterConfig
	client Requester

	mu          sync.RWMutex
	isConnected bool
	addresses   []domain.Address
}

// NewRequestAdapter creates an adapter over client. A nil client means the
// provider is not installed.
func NewRequestAdapter(client Requester, cfg RequestAdapterConfig) *RequestAdapter {
	if cfg.Name == "" {
		cfg.Name = "leather"
	}
	if cfg.Asset == "" {
		cfg.Asset = AssetSBTC
	}
	if cfg.SBTCContract == "" {
		cfg.SBTCContract = DefaultSBTCContract
	}
	return &RequestAdapter{cfg: cfg, client: client}
}

func (a *RequestAdapter) Name() string  { return a.cfg.Name }
func (a *RequestAdapter) Present() bool { return a.client != nil }

// Restore seeds the passive state, e.g. from a wallet that reports an
// existing session at startup.
func (a *RequestAdapter) Restore(connected bool, addrs []domain.Address) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.isConnected = connected
	a.addresses = append([]domain.Address(nil), addrs...)
}

// Probe reads the cached isConnected flag only.
func (a *RequestAdapter) Probe(_ context.Context) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.isConnected
}

type getAddressesResult struct {
	Addresses []domain.Address `json:"addresses"`
}

// Connect calls getAddresses, which may prompt the user.
func (a *RequestAdapter) Connect(ctx context.Context) ([]domain.Address, error) {
	raw, err := a.client.Request(ctx, MethodGetAddresses, nil)
	if err != nil {
		return nil, a.wrap(err)
	}

	var res getAddressesResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &ProviderError{Provider: a.Name(), Message: "malformed getAddresses response", Err: err}
	}

	addrs := make([]domain.Address, 0, len(res.Addresses))
	for _, addr := range res.Addresses {
		if addr.Address != "" {
			addrs = append(addrs, addr)
		}
	}

	if len(addrs) > 0 {
		a.Restore(true, addrs)
	}
	return addrs, nil
}

type transferStxParams struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
	Memo      string `json:"memo,omitempty"`
	Network   string `json:"network,omitempty"`
}

type callContractParams struct {
	Contract     string   `json:"contract"`
	FunctionName string   `json:"functionName"`
	FunctionArgs []string `json:"functionArgs"`
	Network      string   `json:"network,omitempty"`
}

type txResult struct {
	TxID    string `json:"txid"`
	TxIDAlt string `json:"txId"`
}

// Submit sends the transfer for the configured asset.
func (a *RequestAdapter) Submit(ctx context.Context, req domain.TipRequest) (string, error) {
	var (
		method string
		params any
	)

	switch a.cfg.Asset {
	case AssetSTX:
		method = MethodTransferStx
		params = transferStxParams{
			Recipient: req.RecipientAddress,
			Amount:    strconv.FormatInt(req.AmountSatoshis, 10),
			Memo:      req.Memo,
			Network:   a.cfg.Network,
		}
	case AssetSBTC:
		sender := a.stacksAddress()
		if sender == "" {
			return "", &ProviderError{Provider: a.Name(), Message: "no connected Stacks address to send from"}
		}
		method = MethodCallContract
		params = callContractParams{
			Contract:     a.cfg.SBTCContract,
			FunctionName: "transfer",
			FunctionArgs: sbtcTransferArgs(req, sender),
			Network:      a.cfg.Network,
		}
	default:
		return "", &ProviderError{Provider: a.Name(), Message: fmt.Sprintf("unsupported asset %q", a.cfg.Asset)}
	}

	raw, err := a.client.Request(ctx, method, params)
	if err != nil {
		return "", a.wrap(err)
	}

	var res txResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return "", &ProviderError{Provider: a.Name(), Message: "malformed transfer response", Err: err}
	}
	if res.TxID != "" {
		return res.TxID, nil
	}
	return res.TxIDAlt, nil
}

func (a *RequestAdapter) stacksAddress() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return domain.WalletConnection{Addresses: a.addresses}.StacksAddress()
}

func (a *RequestAdapter) wrap(err error) error {
	return wrapProvider(a.Name(), err)
}

// sbtcTransferArgs renders transfer(amount, sender, recipient, memo) as
// Clarity literals.
func sbtcTransferArgs(req domain.TipRequest, sender string) []string {
	memo := "none"
	if req.Memo != "" {
		memo = "(some 0x" + hex.EncodeToString([]byte(req.Memo)) + ")"
	}
	return []string{
		"u" + strconv.FormatInt(req.AmountSatoshis, 10),
		"'" + sender,
		"'" + req.RecipientAddress,
		memo,
	}
}
