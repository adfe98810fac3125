package wallet

import (
	"sync"

	"tipcloud/internal/core/domain"
)

// Store is the process-wide view of the wallet connection. Components read
// and subscribe to it instead of probing the wallet themselves.
type Store struct {
	mu      sync.RWMutex
	current domain.WalletConnection
	subs    map[int]chan domain.WalletConnection
	nextID  int
}

// NewStore creates an empty, disconnected store.
func NewStore() *Store {
	return &Store{subs: make(map[int]chan domain.WalletConnection)}
}

// Get returns the current connection snapshot.
func (s *Store) Get() domain.WalletConnection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

// Set replaces the connection and notifies subscribers.
func (s *Store) Set(conn domain.WalletConnection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = clone(conn)
	for _, ch := range s.subs {
		offer(ch, clone(conn))
	}
}

// Reset marks the wallet as disconnected.
func (s *Store) Reset() {
	s.Set(domain.WalletConnection{})
}

// Subscribe returns a channel that receives the current value immediately
// and every later change. Slow readers only see the latest value.
// The returned func unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan domain.WalletConnection, func()) {
	ch := make(chan domain.WalletConnection, 1)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- clone(s.current)
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// offer delivers v, replacing an undelivered older value.
// Called with s.mu held, so there is a single sender per channel.
func offer(ch chan domain.WalletConnection, v domain.WalletConnection) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}

func clone(c domain.WalletConnection) domain.WalletConnection {
	if c.Addresses != nil {
		c.Addresses = append([]domain.Address(nil), c.Addresses...)
	}
	return c
}
