package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arunvel/fleet-office/internal/billing"
	"github.com/arunvel/fleet-office/internal/db"
	"github.com/arunvel/fleet-office/internal/middleware"
	"github.com/arunvel/fleet-office/internal/models"
)

// TripHandler handles trip lifecycle requests. Ending a trip derives
// and persists its bill.
type TripHandler struct {
	tripCollection db.TripCollection
	billCollection db.BillCollection
	bataCollection db.BataConfigCollection
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips db.TripCollection, bills db.BillCollection, bata db.BataConfigCollection) *TripHandler {
	return &TripHandler{
		tripCollection: trips,
		billCollection: bills,
		bataCollection: bata,
	}
}

// List returns trips filtered by driverId, carId and status query params.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if driverID := r.URL.Query().Get("driverId"); driverID != "" {
		filter["driverId"] = driverID
	}
	if carID := r.URL.Query().Get("carId"); carID != "" {
		filter["carId"] = carID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	trips, err := h.tripCollection.FindTrips(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list trips")
		return
	}
	writeJSON(w, http.StatusOK, trips)
}

// Get returns one trip by id.
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	trip, err := h.tripCollection.FindTripByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Trip not found")
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// Create books a trip. The trip starts in the created state; odometer
// and billing fields are only written by the start and end transitions.
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var trip models.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if trip.PickupDate == "" || trip.PickupLocation == "" {
		writeError(w, http.StatusBadRequest, "pickupDate and pickupLocation are required")
		return
	}

	trip.ID = primitive.NewObjectID()
	trip.Status = models.TripCreated
	trip.StartKm, trip.EndKm, trip.TotalKm = 0, 0, 0
	trip.StartDate, trip.StartTime, trip.EndDate, trip.EndTime = "", "", "", ""

	if err := h.tripCollection.InsertTrip(r.Context(), trip); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create trip")
		return
	}

	writeJSON(w, http.StatusCreated, trip)
}

// Update edits a trip's pickup metadata and assignments.
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	trip, err := h.tripCollection.FindTripByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Trip not found")
		return
	}

	updated := *trip
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated.ID = trip.ID
	// Lifecycle state only moves through the start and end transitions.
	updated.Status = trip.Status

	if err := h.tripCollection.UpdateTrip(r.Context(), id, updated); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update trip")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Start applies the start transition: records the starting odometer
// reading, date and time, and moves the trip to ongoing.
func (h *TripHandler) Start(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.StartTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.StartDate == "" || req.StartTime == "" {
		writeError(w, http.StatusBadRequest, "startDate and startTime are required")
		return
	}
	if req.StartKm < 0 {
		writeError(w, http.StatusBadRequest, "startKm must not be negative")
		return
	}

	trip, err := h.tripCollection.FindTripByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Trip not found")
		return
	}
	if trip.Status != models.TripCreated {
		writeError(w, http.StatusConflict, "Trip already started")
		return
	}

	trip.StartKm = req.StartKm
	trip.StartDate = req.StartDate
	trip.StartTime = req.StartTime
	trip.Status = models.TripOngoing

	if err := h.tripCollection.UpdateTrip(r.Context(), id, *trip); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to start trip")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// End applies the end transition and generates the trip's bill. The
// bill insert is the commit point: the unique index on its tripId
// makes a concurrent double-end lose with a conflict, and a failed
// trip update rolls the bill back.
func (h *TripHandler) End(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req models.EndTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.EndDate == "" || req.EndTime == "" {
		writeError(w, http.StatusBadRequest, "endDate and endTime are required")
		return
	}

	trip, err := h.tripCollection.FindTripByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Trip not found")
		return
	}

	if err := billing.EndTrip(trip, req); err != nil {
		switch {
		case errors.Is(err, billing.ErrTripAlreadyEnded):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, billing.ErrTripNotOngoing), errors.Is(err, billing.ErrNegativeDistance):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to end trip")
		}
		return
	}

	bataPerDay := h.lookupBataPerDay(r, trip.VehicleType)

	generatedBy := ""
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		generatedBy = claims.UserID
	}

	bill := billing.Derive(*trip, bataPerDay, generatedBy)
	bill.ID = primitive.NewObjectID()
	if err := h.billCollection.InsertBill(r.Context(), bill); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Bill already generated for this trip")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to generate bill")
		return
	}

	if err := h.tripCollection.UpdateTrip(r.Context(), id, *trip); err != nil {
		// Roll the bill back so a retry of the end transition can succeed.
		if delErr := h.billCollection.DeleteBill(r.Context(), bill.ID.Hex()); delErr != nil {
			log.WithError(delErr).WithField("bill_id", bill.ID.Hex()).Error("Failed to roll back bill")
		}
		writeError(w, http.StatusInternalServerError, "Failed to end trip")
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// Delete removes a trip. Owner only. The trip's bill is kept.
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.tripCollection.DeleteTrip(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete trip")
		return
	}
	writeMessage(w, "Trip deleted")
}

// lookupBataPerDay returns the configured allowance for a vehicle
// type, falling back to the default when the type is unknown or the
// lookup fails.
func (h *TripHandler) lookupBataPerDay(r *http.Request, vehicleType string) float64 {
	if vehicleType == "" {
		vehicleType = "sedan"
	}
	config, err := h.bataCollection.FindBataByVehicleType(r.Context(), vehicleType)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			log.WithError(err).WithField("vehicle_type", vehicleType).Warn("Bata config lookup failed, using default")
		}
		return billing.DefaultBataPerDay
	}
	return config.BataPerDay
}
