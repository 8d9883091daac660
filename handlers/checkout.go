package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"munchking-store/middlewares"
	"munchking-store/models"
	"munchking-store/services"
)

type totalsView struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	DeliveryFee    string `json:"delivery_fee"`
	FinalTotal     string `json:"final_total"`
	DiscountLocked bool   `json:"discount_applied"`
}

func viewTotals(t services.Totals, applied bool) totalsView {
	return totalsView{
		Subtotal:       services.FormatUSD(t.Subtotal),
		DiscountAmount: services.FormatUSD(t.DiscountAmount),
		DeliveryFee:    services.FormatUSD(t.DeliveryFee),
		FinalTotal:     services.FormatUSD(t.FinalTotal),
		DiscountLocked: applied,
	}
}

// ApplyDiscount validates the entered code; once accepted the code input is
// locked for the rest of the session.
func (a *API) ApplyDiscount(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := session.Discount.ApplyCode(req.Code); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	totals := services.CalcTotals(session.Cart, session.Discount)
	respondJSON(w, http.StatusOK, viewTotals(totals, session.Discount.Applied()))
}

// GetTotals recomputes the checkout breakdown from the live cart and
// discount state.
func (a *API) GetTotals(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	totals := services.CalcTotals(session.Cart, session.Discount)
	respondJSON(w, http.StatusOK, viewTotals(totals, session.Discount.Applied()))
}

// CheckoutStatus exposes the submission state machine for the checkout
// screen: current state, the last failure reason, the preserved form, and
// the receipt once completed.
func (a *API) CheckoutStatus(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	resp := map[string]interface{}{
		"state":   session.Checkout.State(),
		"details": session.Checkout.Details(),
	}
	if lastErr := session.Checkout.LastError(); lastErr != nil {
		resp["failure_reason"] = lastErr.Error()
	}
	if receipt := session.Checkout.Receipt(); receipt != nil {
		resp["receipt"] = receipt
	}
	respondJSON(w, http.StatusOK, resp)
}

// SubmitOrder runs the submission flow for the session.
func (a *API) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	var req struct {
		Name          string `json:"name"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
		PaymentMethod string `json:"payment_method"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = models.PaymentMethodCard
	}

	details := models.DeliveryDetails{Name: req.Name, Phone: req.Phone, Address: req.Address}
	receipt, err := session.Checkout.Submit(r.Context(), details, req.PaymentMethod)
	if err != nil {
		logrus.WithFields(logrus.Fields{"session": session.ID, "state": session.Checkout.State()}).
			WithError(err).Warn("order submission failed")
		respondError(w, submissionStatus(err), err.Error())
		return
	}

	logrus.WithFields(logrus.Fields{"session": session.ID, "reference": receipt.Reference}).Info("order placed")
	respondJSON(w, http.StatusOK, receipt)
}

// ResetCheckout is the "navigate away" path: the session restarts with an
// empty cart, an unlocked discount input, and an idle checkout.
func (a *API) ResetCheckout(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.GetSession(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "no session")
		return
	}

	fresh := a.Store.Reset(session.ID)
	respondJSON(w, http.StatusOK, viewCart(fresh.Cart))
}

// submissionStatus maps the submission error taxonomy onto HTTP statuses.
func submissionStatus(err error) int {
	var missing *services.MissingFieldError
	var merr *multierror.Error
	var payErr *services.PaymentInstrumentError
	var subErr *services.OrderSubmissionError

	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.As(err, &missing),
		errors.As(err, &merr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrSubmissionInFlight),
		errors.Is(err, services.ErrCheckoutComplete):
		return http.StatusConflict
	case errors.As(err, &payErr):
		return http.StatusPaymentRequired
	case errors.As(err, &subErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
