package wallet

import (
	"context"
	"encoding/json"
	"testing"

	"tipcloud/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestAdapter_Defaults(t *testing.T) {
	a := NewRequestAdapter(nil, RequestAdapterConfig{})

	assert.Equal(t, "leather", a.Name())
	assert.False(t, a.Present())
	assert.Equal(t, AssetSBTC, a.cfg.Asset)
	assert.Equal(t, DefaultSBTCContract, a.cfg.SBTCContract)
}

func TestRequestAdapter_SubmitAcceptsTxIDSpelling(t *testing.T) {
	req := newStubRequester()
	req.results[MethodTransferStx] = json.RawMessage(`{"txId":"0xcamel"}`)
	a := NewRequestAdapter(req, RequestAdapterConfig{Asset: AssetSTX})

	txID, err := a.Submit(context.Background(), domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1})
	require.NoError(t, err)
	assert.Equal(t, "0xcamel", txID)
}

func TestRequestAdapter_SBTCNeedsSender(t *testing.T) {
	req := newStubRequester()
	a := NewRequestAdapter(req, RequestAdapterConfig{Asset: AssetSBTC})

	_, err := a.Submit(context.Background(), domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1})

	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "no connected Stacks address")
	assert.Zero(t, req.callCount())
}

func TestRequestAdapter_UnsupportedAsset(t *testing.T) {
	a := NewRequestAdapter(newStubRequester(), RequestAdapterConfig{Asset: "doge"})

	_, err := a.Submit(context.Background(), domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1})
	assert.Equal(t, domain.TipErrorProvider, KindOf(err))
}

func TestSBTCTransferArgs(t *testing.T) {
	args := sbtcTransferArgs(domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 2100}, "SP...S")
	assert.Equal(t, []string{"u2100", "'SP...S", "'SP...R", "none"}, args)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domain.TipErrorKind
	}{
		{"nil", nil, domain.TipErrorNone},
		{"invalid", ErrInvalidRequest, domain.TipErrorInvalidRequest},
		{"unavailable", ErrWalletUnavailable, domain.TipErrorWalletUnavailable},
		{"cancelled", ErrUserCancelled, domain.TipErrorUserCancelled},
		{"provider", &ProviderError{Message: "x"}, domain.TipErrorProvider},
		{"unknown", context.Canceled, domain.TipErrorProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
