package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart blocks submission before any external call is made.
	ErrEmptyCart = errors.New("your cart is empty, please add items first")

	// ErrSubmissionInFlight means a submit arrived while another attempt
	// was still running; the late one is ignored.
	ErrSubmissionInFlight = errors.New("an order submission is already in progress")

	// ErrCheckoutComplete means the session already placed its order; only
	// navigating away (a session reset) starts a new checkout.
	ErrCheckoutComplete = errors.New("this order has already been placed")
)

// MissingFieldError names a blank delivery form field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing delivery field: %s", e.Field)
}

// PaymentInstrumentError carries the payment collaborator's message, or the
// generic fallback when it supplied none.
type PaymentInstrumentError struct {
	Msg string
}

func (e *PaymentInstrumentError) Error() string {
	if e.Msg == "" {
		return "payment failed, please check your card details"
	}
	return e.Msg
}

// OrderSubmissionError carries the order-acceptance collaborator's message.
type OrderSubmissionError struct {
	Msg string
}

func (e *OrderSubmissionError) Error() string {
	if e.Msg == "" {
		return "order submission failed, please try again"
	}
	return e.Msg
}
