package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestStore_WizardPerChat(t *testing.T) {
	store := NewStore(zap.NewNop())

	store.SetWizard(1, CartQuantity{ProductID: 10, Buffer: "2"})
	store.SetWizard(2, AdminLogin{})

	first := store.Get(1)
	second := store.Get(2)

	w, ok := first.Wizard.(CartQuantity)
	assert.True(t, ok)
	assert.Equal(t, int64(10), w.ProductID)
	assert.Equal(t, "2", w.Buffer)

	_, ok = second.Wizard.(AdminLogin)
	assert.True(t, ok)
}

func TestStore_ClearWizardKeepsMessages(t *testing.T) {
	store := NewStore(zap.NewNop())

	store.Update(1, func(s *Session) {
		s.Wizard = Checkout{PaymentMethod: "CryptoWallet"}
		s.ProductMsgIDs = []int{100, 101}
		s.AnchorID = 99
	})

	store.ClearWizard(1)

	sess := store.Get(1)
	assert.Nil(t, sess.Wizard)
	assert.Equal(t, []int{100, 101}, sess.ProductMsgIDs)
	assert.Equal(t, 99, sess.AnchorID)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store := NewStore(zap.NewNop())

	store.SetWizard(1, CartQuantity{ProductID: 10, Buffer: "1"})

	sess := store.Get(1)
	sess.Wizard = CartQuantity{ProductID: 10, Buffer: "999"}

	stored := store.Get(1)
	w := stored.Wizard.(CartQuantity)
	assert.Equal(t, "1", w.Buffer, "mutating a returned session must not touch the store")
}

func TestStore_WizardReplacement(t *testing.T) {
	store := NewStore(zap.NewNop())

	// simulate the keypad accumulating digits
	store.SetWizard(1, CartQuantity{ProductID: 10})
	for _, digit := range []string{"1", "2", "5"} {
		w := store.Get(1).Wizard.(CartQuantity)
		store.SetWizard(1, CartQuantity{ProductID: w.ProductID, Buffer: w.Buffer + digit})
	}

	w := store.Get(1).Wizard.(CartQuantity)
	assert.Equal(t, "125", w.Buffer)

	// switching flows replaces the wizard wholesale
	store.SetWizard(1, Verification{})
	_, ok := store.Get(1).Wizard.(Verification)
	assert.True(t, ok)
}

func TestStore_Sweep(t *testing.T) {
	store := NewStore(zap.NewNop())

	store.SetWizard(1, AdminLogin{})
	store.SetWizard(2, AdminLogin{})

	// nothing is old enough yet
	assert.Equal(t, 0, store.Sweep(time.Minute))

	// age both sessions past the cutoff
	store.mu.Lock()
	for _, sess := range store.sessions {
		sess.lastSeen = time.Now().Add(-2 * time.Minute)
	}
	store.mu.Unlock()

	assert.Equal(t, 2, store.Sweep(time.Minute))
	assert.Nil(t, store.Get(1).Wizard)
}

func TestStore_SweepDropsIdleLocks(t *testing.T) {
	store := NewStore(zap.NewNop())

	_ = store.Do(1, func() error { return nil })
	store.SetWizard(1, AdminLogin{})
	_ = store.Do(2, func() error { return nil })
	store.SetWizard(2, AdminLogin{})

	store.mu.Lock()
	for _, sess := range store.sessions {
		sess.lastSeen = time.Now().Add(-2 * time.Minute)
	}
	store.mu.Unlock()

	// hold chat 2's lock across the sweep
	store.locksMu.Lock()
	held := store.locks[2]
	store.locksMu.Unlock()
	held.Lock()

	assert.Equal(t, 2, store.Sweep(time.Minute))

	store.locksMu.Lock()
	_, gone := store.locks[1]
	_, kept := store.locks[2]
	store.locksMu.Unlock()

	assert.False(t, gone, "idle chat's lock should be pruned")
	assert.True(t, kept, "a held lock must survive the sweep")
	held.Unlock()
}

func TestStore_DoSerializesPerChat(t *testing.T) {
	store := NewStore(zap.NewNop())

	const iterations = 100
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Do(1, func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, iterations, counter)
}

func TestStore_DoIndependentChats(t *testing.T) {
	store := NewStore(zap.NewNop())

	blocked := make(chan struct{})
	release := make(chan struct{})

	go store.Do(1, func() error {
		close(blocked)
		<-release
		return nil
	})

	<-blocked

	// a different chat must not wait on chat 1's lock
	done := make(chan struct{})
	go func() {
		store.Do(2, func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chat 2 blocked behind chat 1")
	}

	close(release)
}
