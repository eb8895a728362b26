package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Session holds everything remembered about one chat between events: the
// active wizard (if any) and the ids of messages the flows keep editing
// or deleting. It lives only in memory and is lost on restart.
type Session struct {
	Wizard Wizard

	// AnchorID is the single message a flow repeatedly edits
	AnchorID int
	// ProductMsgIDs are ephemeral product cards shown for a category
	ProductMsgIDs []int
	// OrderMsgIDs are ephemeral admin order cards
	OrderMsgIDs []int
	// PasswordMsgID is the generated-password message, deleted on return
	PasswordMsgID int

	lastSeen time.Time
}

// Store maps chat ids to sessions. Reads return copies; all mutation goes
// through Update, so callers can never alias the stored value.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session

	locksMu sync.Mutex
	locks   map[int64]*sync.Mutex

	logger *zap.Logger
}

// NewStore creates an empty session store
func NewStore(logger *zap.Logger) *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*sync.Mutex),
		logger:   logger,
	}
}

// Do runs fn while holding the chat's lock. Every inbound event for a chat
// is dispatched through here, so two events for the same chat can never
// interleave their state reads and writes, while different chats proceed
// in parallel.
func (s *Store) Do(chatID int64, fn func() error) error {
	s.locksMu.Lock()
	lock, ok := s.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[chatID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// Get returns a copy of the chat's session, or an empty one
func (s *Store) Get(chatID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[chatID]; ok {
		return *sess
	}
	return Session{}
}

// Update applies fn to the chat's session, creating it if needed. Only the
// fields fn touches change; unrelated fields are never dropped.
func (s *Store) Update(chatID int64, fn func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &Session{}
		s.sessions[chatID] = sess
	}
	fn(sess)
	sess.lastSeen = time.Now()
}

// SetWizard replaces the chat's active wizard
func (s *Store) SetWizard(chatID int64, w Wizard) {
	s.Update(chatID, func(sess *Session) {
		sess.Wizard = w
	})
}

// ClearWizard drops the active wizard but keeps message bookkeeping
func (s *Store) ClearWizard(chatID int64) {
	s.Update(chatID, func(sess *Session) {
		sess.Wizard = nil
	})
}

// Clear removes all state for a chat
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Sweep clears sessions idle for longer than maxIdle and returns how many
// were removed
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for chatID, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, chatID)
			s.dropLock(chatID)
			removed++
		}
	}
	return removed
}

// dropLock forgets a swept chat's lock so the locks map does not grow
// with every chat ever seen. A lock that is currently held (or being
// waited on) stays; the next sweep gets another chance.
func (s *Store) dropLock(chatID int64) {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if lock, ok := s.locks[chatID]; ok && lock.TryLock() {
		delete(s.locks, chatID)
		lock.Unlock()
	}
}

// RunJanitor sweeps idle sessions periodically until ctx is cancelled.
// The store has no expiry on its own; without this, abandoned mid-wizard
// chats would accumulate forever.
func (s *Store) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			if removed := s.Sweep(maxIdle); removed > 0 {
				s.logger.Info("Cleared idle sessions", zap.Int("count", removed))
			}
		}
	}
}
