package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	"munchking-store/models"
)

// State is the checkout submission state. Failed is recoverable: the form
// and cart are preserved and a new submit is accepted, so no re-entry of
// delivery details is needed. Completed is terminal for the session.
type State string

const (
	StateIdle            State = "idle"
	StateValidating      State = "validating"
	StateAwaitingPayment State = "awaiting_payment"
	StateSubmitting      State = "submitting"
	StateCompleted       State = "completed"
	StateFailed          State = "failed"
)

// EstimatedDelivery is the window shown on the confirmation screen.
const EstimatedDelivery = "15-25 minutes"

// Gateway is the external payment and order-acceptance collaborator.
// Instrument tokens are opaque to the core; CollectInstrument is called only
// for card orders.
type Gateway interface {
	CollectInstrument(ctx context.Context, billing models.DeliveryDetails) (token string, err error)
	SubmitOrder(ctx context.Context, items []CartLine, totals Totals, token string) (reference string, err error)
}

// OrderReceipt is the result of a completed submission. The reference is a
// display identifier, unique within the session only.
type OrderReceipt struct {
	Reference         string `json:"reference"`
	EstimatedDelivery string `json:"estimated_delivery"`
	Totals            Totals `json:"totals"`
}

// Checkout runs one session's order submission. At most one attempt is in
// flight at a time; repeated clicks while an attempt runs are ignored.
type Checkout struct {
	cart     *Cart
	discount *Discount
	gateway  Gateway

	inFlight atomic.Bool

	mu      sync.Mutex
	state   State
	lastErr error
	details models.DeliveryDetails
	receipt *OrderReceipt
}

func NewCheckout(cart *Cart, discount *Discount, gateway Gateway) *Checkout {
	return &Checkout{
		cart:     cart,
		discount: discount,
		gateway:  gateway,
		state:    StateIdle,
	}
}

func (co *Checkout) State() State {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.state
}

// LastError is the reason for the most recent failure, nil otherwise.
func (co *Checkout) LastError() error {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.lastErr
}

// Details returns the delivery form as last submitted, so a recoverable
// failure does not force the shopper to retype it.
func (co *Checkout) Details() models.DeliveryDetails {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.details
}

// Receipt is non-nil only after a completed submission.
func (co *Checkout) Receipt() *OrderReceipt {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.receipt
}

// Submit runs the full submission flow: validate, capture a payment
// instrument for card orders, then hand the order to the acceptance
// collaborator. On success the cart is cleared and a receipt returned. On
// any failure the cart and form are left untouched and the shopper may
// resubmit. Retries are user-initiated; Submit never retries internally.
func (co *Checkout) Submit(ctx context.Context, details models.DeliveryDetails, method string) (*OrderReceipt, error) {
	if !co.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer co.inFlight.Store(false)

	co.mu.Lock()
	if co.state == StateCompleted {
		co.mu.Unlock()
		return nil, ErrCheckoutComplete
	}
	co.state = StateValidating
	co.details = details
	co.mu.Unlock()

	if err := validateSubmission(co.cart, details, method); err != nil {
		co.fail(err)
		return nil, err
	}

	var token string
	if method == models.PaymentMethodCard {
		co.setState(StateAwaitingPayment)
		tok, err := co.gateway.CollectInstrument(ctx, details)
		if err != nil {
			perr := &PaymentInstrumentError{Msg: err.Error()}
			co.fail(perr)
			return nil, perr
		}
		token = tok
	}

	co.setState(StateSubmitting)
	totals := CalcTotals(co.cart, co.discount)
	reference, err := co.gateway.SubmitOrder(ctx, co.cart.Items(), totals, token)
	if err != nil {
		// Cart stays intact so the shopper can retry.
		serr := &OrderSubmissionError{Msg: err.Error()}
		co.fail(serr)
		return nil, serr
	}

	receipt := &OrderReceipt{
		Reference:         reference,
		EstimatedDelivery: EstimatedDelivery,
		Totals:            totals,
	}

	co.mu.Lock()
	co.cart.Clear()
	co.receipt = receipt
	co.state = StateCompleted
	co.lastErr = nil
	co.mu.Unlock()

	return receipt, nil
}

func (co *Checkout) setState(s State) {
	co.mu.Lock()
	co.state = s
	co.mu.Unlock()
}

func (co *Checkout) fail(err error) {
	co.mu.Lock()
	co.state = StateFailed
	co.lastErr = err
	co.mu.Unlock()
}

// validateSubmission checks the cart and form before any external call.
// Blank-field failures are collected so one round trip reports them all.
func validateSubmission(cart *Cart, details models.DeliveryDetails, method string) error {
	if cart.TotalItems() == 0 {
		return ErrEmptyCart
	}

	var result *multierror.Error
	if strings.TrimSpace(details.Name) == "" {
		result = multierror.Append(result, &MissingFieldError{Field: "name"})
	}
	if strings.TrimSpace(details.Phone) == "" {
		result = multierror.Append(result, &MissingFieldError{Field: "phone"})
	}
	if strings.TrimSpace(details.Address) == "" {
		result = multierror.Append(result, &MissingFieldError{Field: "address"})
	}
	if !models.ValidPaymentMethod(method) {
		result = multierror.Append(result, fmt.Errorf("unknown payment method %q", method))
	}
	return result.ErrorOrNil()
}
