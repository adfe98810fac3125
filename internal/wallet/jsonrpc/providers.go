package jsonrpc

import (
	"tipcloud/config"
	"tipcloud/internal/wallet"

	"github.com/rs/zerolog"
)

// Environment is the set of wallet providers reachable from this process,
// in the order the bridge should try them.
type Environment struct {
	Adapters []wallet.Adapter
	Clients  []*Client
}

// NewEnvironment builds adapters for every enabled provider in cfg.
// Disabled providers are skipped; an empty environment means "no wallet".
func NewEnvironment(cfg config.WalletConfig, log zerolog.Logger) *Environment {
	env := &Environment{}
	asset := wallet.Asset(cfg.Asset)

	for _, p := range cfg.Providers {
		if !p.Enabled {
			log.Debug().Str("provider", p.Name).Msg("wallet provider disabled, skipping")
			continue
		}

		client := NewClient(p.Name, p.URL, WithRateLimit(cfg.RateLimit))
		env.Clients = append(env.Clients, client)

		switch p.Kind {
		case "request":
			env.Adapters = append(env.Adapters, wallet.NewRequestAdapter(client, wallet.RequestAdapterConfig{
				Name:         p.Name,
				Asset:        asset,
				Network:      cfg.Network,
				SBTCContract: cfg.SBTCContract,
			}))
		case "legacy":
			env.Adapters = append(env.Adapters, wallet.NewLegacyAdapter(p.Name, asset, NewLegacyClient(client)))
		}

		log.Info().Str("provider", p.Name).Str("kind", p.Kind).Str("url", p.URL).Msg("wallet provider registered")
	}

	return env
}
