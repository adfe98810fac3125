package jsonrpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"tipcloud/internal/core/domain"
	"tipcloud/internal/wallet"
)

// Methods of the generic wallet API.
const (
	MethodRequestAccounts = "requestAccounts"
	MethodSendTransfer    = "sendTransfer"
)

// LegacyClient exposes a JSON-RPC endpoint through the callback-style SDK
// surface of generic wallets. Each call completes on its own goroutine.
type LegacyClient struct {
	rpc *Client

	mu    sync.RWMutex
	state wallet.LegacyState
}

// NewLegacyClient wraps rpc as a wallet.LegacySDK.
func NewLegacyClient(rpc *Client) *LegacyClient {
	return &LegacyClient{rpc: rpc}
}

// State returns the cached passive state. It performs no I/O.
func (l *LegacyClient) State() wallet.LegacyState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	st := l.state
	st.Accounts = append([]domain.Address(nil), st.Accounts...)
	return st
}

// RequestAccounts asks the wallet for access to its accounts.
func (l *LegacyClient) RequestAccounts(ctx context.Context, onFinish func(json.RawMessage), onCancel func(), onError func(error)) {
	go func() {
		raw, err := l.rpc.Request(ctx, MethodRequestAccounts, nil)
		if err != nil {
			dispatch(err, onCancel, onError)
			return
		}
		l.remember(raw)
		onFinish(raw)
	}()
}

// SendTransfer asks the wallet to sign and broadcast t.
func (l *LegacyClient) SendTransfer(ctx context.Context, t wallet.LegacyTransfer, onFinish func(string), onCancel func(), onError func(error)) {
	go func() {
		raw, err := l.rpc.Request(ctx, MethodSendTransfer, t)
		if err != nil {
			dispatch(err, onCancel, onError)
			return
		}

		var txID string
		if err := json.Unmarshal(raw, &txID); err != nil {
			var obj struct {
				TxID string `json:"txid"`
			}
			if err := json.Unmarshal(raw, &obj); err != nil {
				onError(fmt.Errorf("malformed sendTransfer response: %w", err))
				return
			}
			txID = obj.TxID
		}
		onFinish(txID)
	}()
}

// remember caches accounts from a successful response as passive state.
func (l *LegacyClient) remember(raw json.RawMessage) {
	var accounts []domain.Address
	if err := json.Unmarshal(raw, &accounts); err != nil {
		var obj struct {
			Addresses []domain.Address `json:"addresses"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return
		}
		accounts = obj.Addresses
	}
	if len(accounts) == 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.Accounts = accounts
	l.state.Address = accounts[0].Address
	l.state.IsConnected = true
	l.state.Status = "connected"
}

func dispatch(err error, onCancel func(), onError func(error)) {
	if errors.Is(err, wallet.ErrUserCancelled) {
		onCancel()
		return
	}
	onError(err)
}
