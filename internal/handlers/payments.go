package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arunvel/fleet-office/internal/billing"
	"github.com/arunvel/fleet-office/internal/db"
	"github.com/arunvel/fleet-office/internal/models"
)

// PaymentHandler handles payment requests. Every create and delete
// reconciles the referenced bill's balance from the full payment set.
type PaymentHandler struct {
	paymentCollection db.PaymentCollection
	billCollection    db.BillCollection
	billLocks         *billing.KeyedMutex
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(payments db.PaymentCollection, bills db.BillCollection) *PaymentHandler {
	return &PaymentHandler{
		paymentCollection: payments,
		billCollection:    bills,
		billLocks:         billing.NewKeyedMutex(),
	}
}

// List returns payments, optionally filtered by billId.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if billID := r.URL.Query().Get("billId"); billID != "" {
		filter["billId"] = billID
	}

	payments, err := h.paymentCollection.FindPayments(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments")
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// Create records a payment and reconciles the referenced bill.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if payment.BillID == "" || payment.Date == "" {
		writeError(w, http.StatusBadRequest, "billId and date are required")
		return
	}
	if payment.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	payment.ID = primitive.NewObjectID()
	if err := h.paymentCollection.InsertPayment(r.Context(), payment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	h.reconcileBill(r.Context(), payment.BillID)

	writeJSON(w, http.StatusCreated, payment)
}

// Delete removes a payment and reconciles the referenced bill. Owner only.
func (h *PaymentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	payment, err := h.paymentCollection.FindPaymentByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Payment not found")
		return
	}

	if err := h.paymentCollection.DeletePayment(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Payment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete payment")
		return
	}

	h.reconcileBill(r.Context(), payment.BillID)

	writeMessage(w, "Payment deleted")
}

// reconcileBill recomputes a bill's balance and status from its full
// payment set, serialized per bill id so concurrent payments cannot
// read a stale set. A missing bill is tolerated as a no-op: the
// payment mutation itself stands either way, so failures here are
// logged, not surfaced.
func (h *PaymentHandler) reconcileBill(ctx context.Context, billID string) {
	unlock := h.billLocks.Lock(billID)
	defer unlock()

	bill, err := h.billCollection.FindBillByID(ctx, billID)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.WithError(err).WithField("bill_id", billID).Warn("Bill lookup failed during reconciliation")
		}
		return
	}

	payments, err := h.paymentCollection.FindPaymentsByBillID(ctx, billID)
	if err != nil {
		log.WithError(err).WithField("bill_id", billID).Warn("Payment lookup failed during reconciliation")
		return
	}

	balance, status := billing.Reconcile(*bill, payments)
	if err := h.billCollection.UpdateBillBalance(ctx, billID, balance, status); err != nil {
		log.WithError(err).WithField("bill_id", billID).Warn("Failed to update bill balance")
	}
}
