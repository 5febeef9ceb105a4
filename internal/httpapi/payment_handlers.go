package httpapi

import (
	"net/http"
	"strings"

	"crosspay.org/internal/audit"
	"crosspay.org/internal/obs"
	"crosspay.org/internal/payments"
	"crosspay.org/internal/stream"
)

type createPaymentRequest struct {
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Provider    string `json:"provider"`
	AccountInfo string `json:"account_info"`
	SwiftCode   string `json:"swift_code"`
}

func (a *API) handlePaymentsCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.createPayment(w, r)
	case http.MethodGet:
		a.listPayments(w, r)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
	}
}

func (a *API) createPayment(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var req createPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := a.payments.Create(r.Context(), identity, payments.CreateInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Provider:    req.Provider,
		AccountInfo: req.AccountInfo,
		SwiftCode:   req.SwiftCode,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	obs.PaymentCreated()
	_ = audit.LogEvent(r.Context(), "payments.create", map[string]any{
		"payment_id": payment.ID,
		"amount":     payment.Amount.String(),
		"currency":   payment.Currency,
		"status":     string(payment.Status),
	})
	a.publishPaymentEvent(payment)

	w.Header().Set("Location", "/payments/"+payment.ID)
	writeJSON(w, http.StatusCreated, payment)
}

func (a *API) listPayments(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	list, err := a.payments.List(r.Context(), identity)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	if list == nil {
		list = []payments.Payment{}
	}
	writeJSON(w, http.StatusOK, list)
}

// handlePaymentResource routes /payments/{id}/verify and /payments/{id}/submit.
func (a *API) handlePaymentResource(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/payments/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	paymentID, action := parts[0], parts[1]

	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	identity, ok := identityFromRequest(w, r)
	if !ok {
		return
	}

	var (
		payment payments.Payment
		err     error
	)
	switch action {
	case "verify":
		payment, err = a.payments.Verify(r.Context(), identity, paymentID)
	case "submit":
		payment, err = a.payments.Submit(r.Context(), identity, paymentID)
	default:
		http.NotFound(w, r)
		return
	}
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	obs.PaymentTransition(string(payment.Status))
	_ = audit.LogEvent(r.Context(), "payments."+action, map[string]any{
		"payment_id": payment.ID,
		"status":     string(payment.Status),
	})
	a.publishPaymentEvent(payment)

	writeJSON(w, http.StatusOK, payment)
}

func (a *API) publishPaymentEvent(p payments.Payment) {
	if a.stream == nil {
		return
	}
	a.stream.Publish(stream.PaymentEvent{
		PaymentID:     p.ID,
		Status:        string(p.Status),
		Amount:        p.Amount.String(),
		Currency:      p.Currency,
		OwnerUsername: p.OwnerUsername,
		Timestamp:     p.CreatedAt,
	})
}
