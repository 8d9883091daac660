package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountCode = errors.New("invalid discount code")

// Discount validates a promotional code and, once accepted, stays applied
// for the rest of the session. Only one code is recognized; there is no
// stacking and no expiry.
type Discount struct {
	mu      sync.Mutex
	code    string // recognized code, compared case-insensitively
	rate    decimal.Decimal
	applied bool
}

// NewDiscount builds an evaluator for the given code and whole-percent rate.
func NewDiscount(code string, percent int64) *Discount {
	return &Discount{
		code: code,
		rate: decimal.NewFromInt(percent).Div(decimal.NewFromInt(100)),
	}
}

// ApplyCode accepts the code when its trimmed, case-insensitive form matches
// the recognized one. Acceptance latches: reapplying is a no-op success, and
// the caller should treat the input as locked afterwards.
func (d *Discount) ApplyCode(code string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.applied {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(code), d.code) {
		return ErrInvalidDiscountCode
	}
	d.applied = true
	return nil
}

func (d *Discount) Applied() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.applied
}

// Rate returns the deduction rate, zero until a code has been accepted.
func (d *Discount) Rate() decimal.Decimal {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.applied {
		return decimal.Zero
	}
	return d.rate
}
