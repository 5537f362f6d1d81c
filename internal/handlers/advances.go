package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arunvel/fleet-office/internal/db"
	"github.com/arunvel/fleet-office/internal/middleware"
	"github.com/arunvel/fleet-office/internal/models"
)

// AdvanceHandler handles trip advance requests. Advances are a
// standalone log and do not touch bill balances.
type AdvanceHandler struct {
	advanceCollection db.AdvanceCollection
}

// NewAdvanceHandler creates a new advance handler
func NewAdvanceHandler(advances db.AdvanceCollection) *AdvanceHandler {
	return &AdvanceHandler{advanceCollection: advances}
}

// List returns advances, optionally filtered by tripId.
func (h *AdvanceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if tripID := r.URL.Query().Get("tripId"); tripID != "" {
		filter["tripId"] = tripID
	}

	advances, err := h.advanceCollection.FindAdvances(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list advances")
		return
	}
	writeJSON(w, http.StatusOK, advances)
}

// Create logs an advance against a trip.
func (h *AdvanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var advance models.Advance
	if err := json.NewDecoder(r.Body).Decode(&advance); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if advance.TripID == "" || advance.Date == "" {
		writeError(w, http.StatusBadRequest, "tripId and date are required")
		return
	}
	if advance.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if !models.IsValidAdvanceType(advance.AdvanceType) {
		writeError(w, http.StatusBadRequest, "Invalid advance type")
		return
	}

	if advance.EnteredBy == "" {
		if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
			advance.EnteredBy = claims.UserID
		}
	}

	advance.ID = primitive.NewObjectID()
	if err := h.advanceCollection.InsertAdvance(r.Context(), advance); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create advance")
		return
	}

	writeJSON(w, http.StatusCreated, advance)
}

// Delete removes an advance.
func (h *AdvanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.advanceCollection.DeleteAdvance(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete advance")
		return
	}
	writeMessage(w, "Advance deleted")
}
