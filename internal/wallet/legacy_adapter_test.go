package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tipcloud/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegacyAdapter_Probe(t *testing.T) {
	tests := []struct {
		name  string
		state LegacyState
		want  bool
	}{
		{"nothing", LegacyState{}, false},
		{"address only", LegacyState{Address: "SP...ABC"}, false},
		{"accounts only", LegacyState{Accounts: []domain.Address{{Symbol: "STX", Address: "SP...ABC"}}}, false},
		{"flag", LegacyState{IsConnected: true}, true},
		{"status", LegacyState{Status: "connected"}, true},
		{"other status", LegacyState{Status: "locked"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sdk := &stubLegacy{state: tt.state}
			a := NewLegacyAdapter("", "", sdk)

			assert.Equal(t, tt.want, a.Probe(context.Background()))
			assert.Zero(t, sdk.requests)
		})
	}
}

func TestLegacyAdapter_ConnectShapes(t *testing.T) {
	cached := LegacyState{Accounts: []domain.Address{{Symbol: "STX", Address: "SP...CACHED"}}}

	tests := []struct {
		name  string
		state LegacyState
		raw   string
		want  []string
	}{
		{"array", LegacyState{}, `[{"symbol":"STX","address":"SP...ARR"}]`, []string{"SP...ARR"}},
		{"object", LegacyState{}, `{"addresses":[{"symbol":"STX","address":"SP...OBJ"},{"symbol":"STX","address":""}]}`, []string{"SP...OBJ"}},
		{"true with cached accounts", cached, `true`, []string{"SP...CACHED"}},
		{"true with address field", LegacyState{Address: "SP...ADDR"}, `true`, []string{"SP...ADDR"}},
		{"true with nothing cached", LegacyState{}, `true`, nil},
		{"false", cached, `false`, nil},
		{"null", cached, `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sdk := &stubLegacy{state: tt.state, accounts: json.RawMessage(tt.raw)}
			a := NewLegacyAdapter("btc", AssetSBTC, sdk)

			addrs, err := a.Connect(context.Background())
			require.NoError(t, err)

			var got []string
			for _, addr := range addrs {
				got = append(got, addr.Address)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLegacyAdapter_ConnectErrors(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		a := NewLegacyAdapter("btc", AssetSBTC, &stubLegacy{cancel: true})
		_, err := a.Connect(context.Background())
		assert.ErrorIs(t, err, ErrUserCancelled)
	})

	t.Run("error", func(t *testing.T) {
		a := NewLegacyAdapter("btc", AssetSBTC, &stubLegacy{err: errors.New("wallet locked")})
		_, err := a.Connect(context.Background())

		var pe *ProviderError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "btc", pe.Provider)
		assert.Equal(t, "wallet locked", pe.Message)
	})

	t.Run("malformed", func(t *testing.T) {
		a := NewLegacyAdapter("btc", AssetSBTC, &stubLegacy{accounts: json.RawMessage(`[1,2]`)})
		_, err := a.Connect(context.Background())
		assert.Equal(t, domain.TipErrorProvider, KindOf(err))
	})
}

func TestLegacyAdapter_Submit(t *testing.T) {
	sdk := &stubLegacy{txID: "0xlegacy"}
	a := NewLegacyAdapter("btc", AssetSTX, sdk)

	txID, err := a.Submit(context.Background(), domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 500, Memo: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "0xlegacy", txID)
	assert.Equal(t, LegacyTransfer{Recipient: "SP...R", Amount: 500, Memo: "hi", Asset: AssetSTX}, sdk.lastTransfer)
}

func TestLegacyAdapter_SubmitHonoursContext(t *testing.T) {
	a := NewLegacyAdapter("btc", AssetSBTC, &stubLegacy{hang: true})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := a.Submit(ctx, domain.TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, domain.TipErrorProvider, KindOf(err))
}
