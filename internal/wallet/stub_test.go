package wallet

import (
	"context"
	"encoding/json"
	"sync"

	"tipcloud/internal/core/domain"
)

// stubRequester records every request and answers from a method table.
type stubRequester struct {
	mu      sync.Mutex
	calls   []string
	params  []any
	results map[string]json.RawMessage
	errs    map[string]error
	panicOn string
}

func newStubRequester() *stubRequester {
	return &stubRequester{
		results: make(map[string]json.RawMessage),
		errs:    make(map[string]error),
	}
}

func (s *stubRequester) Request(_ context.Context, method string, params any) (json.RawMessage, error) {
	s.mu.Lock()
	s.calls = append(s.calls, method)
	s.params = append(s.params, params)
	s.mu.Unlock()

	if method == s.panicOn {
		panic("provider exploded")
	}
	if err, ok := s.errs[method]; ok {
		return nil, err
	}
	return s.results[method], nil
}

func (s *stubRequester) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// stubLegacy is a callback-style SDK that settles synchronously or not at all.
type stubLegacy struct {
	state        LegacyState
	accounts     json.RawMessage
	txID         string
	cancel       bool
	err          error
	hang         bool
	requests     int
	lastTransfer LegacyTransfer
}

func (s *stubLegacy) State() LegacyState { return s.state }

func (s *stubLegacy) RequestAccounts(_ context.Context, onFinish func(json.RawMessage), onCancel func(), onError func(error)) {
	s.requests++
	switch {
	case s.hang:
	case s.cancel:
		onCancel()
	case s.err != nil:
		onError(s.err)
	default:
		onFinish(s.accounts)
	}
}

func (s *stubLegacy) SendTransfer(_ context.Context, t LegacyTransfer, onFinish func(string), onCancel func(), onError func(error)) {
	s.requests++
	s.lastTransfer = t
	switch {
	case s.hang:
	case s.cancel:
		onCancel()
	case s.err != nil:
		onError(s.err)
	default:
		onFinish(s.txID)
	}
}

// panicAdapter blows up on every call.
type panicAdapter struct{ present bool }

func (p panicAdapter) Name() string { return "volatile" }
func (p panicAdapter) Present() bool {
	if !p.present {
		panic("detection exploded")
	}
	return true
}
func (p panicAdapter) Probe(context.Context) bool { panic("probe exploded") }
func (p panicAdapter) Connect(context.Context) ([]domain.Address, error) {
	panic("connect exploded")
}
func (p panicAdapter) Submit(context.Context, domain.TipRequest) (string, error) {
	panic("submit exploded")
}
