package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arunvel/fleet-office/internal/db"
)

// BataConfigHandler handles per-day allowance configuration requests
type BataConfigHandler struct {
	bataCollection db.BataConfigCollection
}

// NewBataConfigHandler creates a new bata config handler
func NewBataConfigHandler(bata db.BataConfigCollection) *BataConfigHandler {
	return &BataConfigHandler{bataCollection: bata}
}

// List returns every configured vehicle-type allowance.
func (h *BataConfigHandler) List(w http.ResponseWriter, r *http.Request) {
	configs, err := h.bataCollection.FindBataConfigs(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list bata configs")
		return
	}
	writeJSON(w, http.StatusOK, configs)
}

// Upsert creates or overwrites the allowance for a vehicle type.
// Owner only. Bill derivation picks the new value up on the next
// trip end; existing bills keep the rate they were generated with.
func (h *BataConfigHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	vehicleType := r.PathValue("vehicleType")

	var req struct {
		BataPerDay float64 `json:"bataPerDay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.BataPerDay <= 0 {
		writeError(w, http.StatusBadRequest, "bataPerDay must be positive")
		return
	}

	config, err := h.bataCollection.UpsertBataConfig(r.Context(), vehicleType, req.BataPerDay)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update bata config")
		return
	}

	writeJSON(w, http.StatusOK, config)
}
