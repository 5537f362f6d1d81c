package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arunvel/fleet-office/internal/db"
	"github.com/arunvel/fleet-office/internal/models"
)

// LeaveHandler handles driver leave requests
type LeaveHandler struct {
	leaveCollection db.LeaveCollection
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaves db.LeaveCollection) *LeaveHandler {
	return &LeaveHandler{leaveCollection: leaves}
}

// List returns leave requests filtered by driverId and status query params.
func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if driverID := r.URL.Query().Get("driverId"); driverID != "" {
		filter["driverId"] = driverID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	leaves, err := h.leaveCollection.FindLeaves(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leaves")
		return
	}
	writeJSON(w, http.StatusOK, leaves)
}

// Create files a leave request. New requests always start pending.
func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	var leave models.Leave
	if err := json.NewDecoder(r.Body).Decode(&leave); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if leave.DriverID == "" || leave.Date == "" {
		writeError(w, http.StatusBadRequest, "driverId and date are required")
		return
	}
	if !models.IsValidLeaveType(leave.LeaveType) {
		writeError(w, http.StatusBadRequest, "Invalid leave type")
		return
	}

	leave.ID = primitive.NewObjectID()
	leave.Status = models.LeavePending

	if err := h.leaveCollection.InsertLeave(r.Context(), leave); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create leave")
		return
	}

	writeJSON(w, http.StatusCreated, leave)
}

// Update edits a leave request's details.
func (h *LeaveHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	leave, err := h.leaveCollection.FindLeaveByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Leave not found")
		return
	}

	updated := *leave
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated.ID = leave.ID

	if err := h.leaveCollection.UpdateLeave(r.Context(), id, updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update leave")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Approve marks a leave request approved.
func (h *LeaveHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.LeaveApproved)
}

// Reject marks a leave request rejected.
func (h *LeaveHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, models.LeaveRejected)
}

func (h *LeaveHandler) setStatus(w http.ResponseWriter, r *http.Request, status models.LeaveStatus) {
	id := r.PathValue("id")

	if err := h.leaveCollection.UpdateLeaveStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Leave not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update leave")
		return
	}

	leave, err := h.leaveCollection.FindLeaveByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Leave not found")
		return
	}
	writeJSON(w, http.StatusOK, leave)
}

// Delete removes a leave request. Owner only.
func (h *LeaveHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveCollection.DeleteLeave(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete leave")
		return
	}
	writeMessage(w, "Leave deleted")
}
