package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTipRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     TipRequest
		wantErr bool
	}{
		{"valid", TipRequest{RecipientAddress: "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7", AmountSatoshis: 1000}, false},
		{"valid with memo", TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1, Memo: "great set"}, false},
		{"memo at limit", TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1, Memo: strings.Repeat("m", MaxMemoBytes)}, false},
		{"empty recipient", TipRequest{AmountSatoshis: 1000}, true},
		{"blank recipient", TipRequest{RecipientAddress: "   ", AmountSatoshis: 1000}, true},
		{"zero amount", TipRequest{RecipientAddress: "SP...R"}, true},
		{"negative amount", TipRequest{RecipientAddress: "SP...R", AmountSatoshis: -5}, true},
		{"memo too long", TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1, Memo: strings.Repeat("m", MaxMemoBytes+1)}, true},
		{"multibyte memo counted in bytes", TipRequest{RecipientAddress: "SP...R", AmountSatoshis: 1, Memo: strings.Repeat("é", 18)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWalletConnection_StacksAddress(t *testing.T) {
	conn := WalletConnection{
		Connected: true,
		Addresses: []Address{
			{Symbol: "BTC", Address: "bc1q..."},
			{Symbol: SymbolStacks, Address: "SP...STX"},
		},
	}
	assert.Equal(t, "SP...STX", conn.StacksAddress())
	assert.Empty(t, WalletConnection{}.StacksAddress())
}

func TestDJSort_IsValid(t *testing.T) {
	assert.True(t, DJSortNewest.IsValid())
	assert.True(t, DJSortName.IsValid())
	assert.True(t, DJSortPopularity.IsValid())
	assert.False(t, DJSort("random").IsValid())
	assert.False(t, DJSort("").IsValid())
}

func TestFormatBTC(t *testing.T) {
	tests := []struct {
		sats int64
		want string
	}{
		{0, "0"},
		{1, "0.00000001"},
		{5000, "0.00005"},
		{100_000_000, "1"},
		{150_000_000, "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBTC(tt.sats))
		})
	}
}

func TestBuildTipGuardKey(t *testing.T) {
	assert.Equal(t, "dj:dj-42", BuildTipGuardKey("dj-42"))
}

func TestTipDefaults(t *testing.T) {
	assert.Contains(t, PresetTipAmounts, DefaultTipAmount)
	assert.Equal(t, TipStatus("SUCCESS"), TipStatusSuccess)
	assert.Equal(t, TipStatus("FAILED"), TipStatusFailed)
}
