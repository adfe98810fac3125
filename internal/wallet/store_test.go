package wallet

import (
	"sync"
	"testing"
	"time"

	"tipcloud/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connected(addr string) domain.WalletConnection {
	return domain.WalletConnection{
		Connected: true,
		Provider:  "leather",
		Addresses: []domain.Address{{Symbol: domain.SymbolStacks, Address: addr}},
	}
}

func receive(t *testing.T, ch <-chan domain.WalletConnection) domain.WalletConnection {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for store update")
	}
	return domain.WalletConnection{}
}

func TestStore_StartsDisconnected(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Get().Connected)
}

func TestStore_SubscribeReceivesCurrentThenChanges(t *testing.T) {
	s := NewStore()
	s.Set(connected("SP...ONE"))

	ch, cancel := s.Subscribe()
	defer cancel()

	assert.Equal(t, "SP...ONE", receive(t, ch).StacksAddress())

	s.Set(connected("SP...TWO"))
	assert.Equal(t, "SP...TWO", receive(t, ch).StacksAddress())

	s.Reset()
	assert.False(t, receive(t, ch).Connected)
}

func TestStore_SlowSubscriberSeesLatest(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Set(connected("SP...A"))
	s.Set(connected("SP...B"))
	s.Set(connected("SP...C"))

	assert.Equal(t, "SP...C", receive(t, ch).StacksAddress())
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %+v", v)
	default:
	}
}

func TestStore_CancelClosesChannel(t *testing.T) {
	s := NewStore()
	ch, cancel := s.Subscribe()
	<-ch

	cancel()
	cancel()

	_, ok := <-ch
	assert.False(t, ok)
	assert.NotPanics(t, func() { s.Set(connected("SP...AFTER")) })
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Set(connected("SP...ORIG"))

	snap := s.Get()
	snap.Addresses[0].Address = "SP...MUTATED"

	assert.Equal(t, "SP...ORIG", s.Get().StacksAddress())
}

func TestStore_ConcurrentSetAndSubscribe(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Set(connected("SP...RACE"))
		}()
		go func() {
			defer wg.Done()
			ch, cancel := s.Subscribe()
			<-ch
			cancel()
		}()
	}
	wg.Wait()

	assert.True(t, s.Get().Connected)
}
