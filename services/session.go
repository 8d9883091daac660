package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"munchking-store/config"
)

// Session owns one shopper's cart, discount, and checkout state. Nothing is
// shared across sessions and nothing survives the session's teardown.
type Session struct {
	ID       string
	Cart     *Cart
	Discount *Discount
	Checkout *Checkout

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// SessionStore keeps active sessions in memory and drops them after a period
// of inactivity. That sweep is the session teardown boundary: an expired
// session's cart, discount, and checkout state are gone for good.
type SessionStore struct {
	cfg     config.DiscountConfig
	gateway Gateway
	ttl     time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	stop chan struct{}
	done chan struct{}
}

const sweepInterval = time.Minute

func NewSessionStore(sessionCfg config.SessionConfig, discountCfg config.DiscountConfig, gateway Gateway) *SessionStore {
	st := &SessionStore{
		cfg:      discountCfg,
		gateway:  gateway,
		ttl:      sessionCfg.TTL,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go st.sweepLoop()
	return st
}

// Create starts a fresh session with an empty cart.
func (st *SessionStore) Create() *Session {
	cart := NewCart()
	discount := NewDiscount(st.cfg.Code, st.cfg.Percent)
	s := &Session{
		ID:       uuid.NewString(),
		Cart:     cart,
		Discount: discount,
		Checkout: NewCheckout(cart, discount, st.gateway),
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for the id and refreshes its expiry, or nil if it
// never existed or has been swept.
func (st *SessionStore) Get(id string) *Session {
	st.mu.RLock()
	s := st.sessions[id]
	st.mu.RUnlock()

	if s != nil {
		s.touch(time.Now())
	}
	return s
}

// Reset discards a session's state and hands back a fresh one, keeping the
// id. This is the "navigate away after checkout" path: the completed
// checkout and its locked discount do not carry over.
func (st *SessionStore) Reset(id string) *Session {
	cart := NewCart()
	discount := NewDiscount(st.cfg.Code, st.cfg.Percent)
	s := &Session{
		ID:       id,
		Cart:     cart,
		Discount: discount,
		Checkout: NewCheckout(cart, discount, st.gateway),
		lastSeen: time.Now(),
	}

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return s
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Close stops the sweeper. Session contents are in-memory only, so there is
// nothing else to flush.
func (st *SessionStore) Close() {
	close(st.stop)
	<-st.done
}

func (st *SessionStore) sweepLoop() {
	defer close(st.done)
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case now := <-ticker.C:
			st.sweep(now)
		}
	}
}

func (st *SessionStore) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	swept := 0
	for id, s := range st.sessions {
		if s.expired(now, st.ttl) {
			delete(st.sessions, id)
			swept++
		}
	}
	if swept > 0 {
		logrus.WithFields(logrus.Fields{"swept": swept, "active": len(st.sessions)}).Debug("expired sessions removed")
	}
}
