package domain

// SymbolStacks tags the address a wallet exposes on the Stacks chain.
const SymbolStacks = "STX"

// Address is a chain/asset-tagged address returned by a wallet.
type Address struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
}

// WalletConnection is the ephemeral result of a connect call.
// It is held in memory only; reconnection is always re-initiated.
type WalletConnection struct {
	Connected bool      `json:"connected"`
	Provider  string    `json:"provider,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
}

// StacksAddress returns the first STX-tagged address, or "" if none.
func (w WalletConnection) StacksAddress() string {
	for _, a := range w.Addresses {
		if a.Symbol == SymbolStacks {
			return a.Address
		}
	}
	return ""
}
