// Package payment is the simulated stand-in for the external payment widget
// and order-acceptance service. Card details never reach this process; the
// widget hands back an opaque instrument token.
package payment

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"munchking-store/models"
	"munchking-store/services"
)

// Simulator fakes the gateway: tokenization is instant, order acceptance
// takes Latency. Setting InstrumentErr or SubmitErr makes the corresponding
// call fail, for exercising the decline paths.
type Simulator struct {
	Latency       time.Duration
	InstrumentErr error
	SubmitErr     error

	mu     sync.Mutex
	rnd    *rand.Rand
	issued map[string]struct{}
}

func NewSimulator(latency time.Duration) *Simulator {
	return &Simulator{
		Latency: latency,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
		issued:  make(map[string]struct{}),
	}
}

// CollectInstrument simulates the card widget tokenizing the shopper's card
// against the given billing details.
func (s *Simulator) CollectInstrument(ctx context.Context, billing models.DeliveryDetails) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.InstrumentErr != nil {
		return "", s.InstrumentErr
	}

	s.mu.Lock()
	token := fmt.Sprintf("pm_sim_%08x", s.rnd.Uint32())
	s.mu.Unlock()
	return token, nil
}

// SubmitOrder simulates the acceptance call: waits out the configured
// latency, then returns a fresh order reference.
func (s *Simulator) SubmitOrder(ctx context.Context, items []services.CartLine, totals services.Totals, token string) (string, error) {
	if s.Latency > 0 {
		timer := time.NewTimer(s.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	if s.SubmitErr != nil {
		return "", s.SubmitErr
	}
	return s.newReference(), nil
}

// newReference produces a short display reference like MK4821, unique among
// the ones this simulator has handed out. Not a durable key.
func (s *Simulator) newReference() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	width, space := 4, 10000
	if len(s.issued) >= space {
		// 4-digit space exhausted; widen instead of spinning
		width, space = 8, 100000000
	}
	for {
		ref := fmt.Sprintf("MK%0*d", width, s.rnd.Intn(space))
		if _, taken := s.issued[ref]; !taken {
			s.issued[ref] = struct{}{}
			return ref
		}
	}
}
