package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/arunvel/fleet-office/internal/db"
)

// BillHandler handles bill requests. Bills are created by the trip end
// transition, never through this handler.
type BillHandler struct {
	billCollection db.BillCollection
}

// NewBillHandler creates a new bill handler
func NewBillHandler(bills db.BillCollection) *BillHandler {
	return &BillHandler{billCollection: bills}
}

// List returns bills filtered by tripId, driverId and status query params.
func (h *BillHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if tripID := r.URL.Query().Get("tripId"); tripID != "" {
		filter["tripId"] = tripID
	}
	if driverID := r.URL.Query().Get("driverId"); driverID != "" {
		filter["driverId"] = driverID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	bills, err := h.billCollection.FindBills(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list bills")
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

// Get returns one bill by id.
func (h *BillHandler) Get(w http.ResponseWriter, r *http.Request) {
	bill, err := h.billCollection.FindBillByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Bill not found")
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// Update edits a bill's header fields. The balance and status stay
// owned by payment reconciliation.
func (h *BillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	bill, err := h.billCollection.FindBillByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Bill not found")
		return
	}

	updated := *bill
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated.ID = bill.ID
	updated.BalanceAmount = bill.BalanceAmount
	updated.Status = bill.Status

	if err := h.billCollection.UpdateBill(r.Context(), id, updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update bill")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a bill. Owner only. Payments referencing the bill are
// kept and reconcile as no-ops afterwards.
func (h *BillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.billCollection.DeleteBill(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete bill")
		return
	}
	writeMessage(w, "Bill deleted")
}
