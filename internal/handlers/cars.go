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

// CarHandler handles fleet vehicle requests
type CarHandler struct {
	carCollection db.CarCollection
}

// NewCarHandler creates a new car handler
func NewCarHandler(carCollection db.CarCollection) *CarHandler {
	return &CarHandler{carCollection: carCollection}
}

// List returns every car in the fleet.
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carCollection.FindCars(r.Context(), bson.M{})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list cars")
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

// Get returns one car by id.
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	car, err := h.carCollection.FindCarByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Car not found")
		return
	}
	writeJSON(w, http.StatusOK, car)
}

// Create registers a car. Plate numbers are unique across the fleet.
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if car.VehicleNumber == "" || car.VehicleType == "" {
		writeError(w, http.StatusBadRequest, "vehicleNumber and vehicleType are required")
		return
	}

	car.ID = primitive.NewObjectID()
	if err := h.carCollection.InsertCar(r.Context(), car); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Plate number already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create car")
		return
	}

	writeJSON(w, http.StatusCreated, car)
}

// Update edits a car's details.
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	car, err := h.carCollection.FindCarByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "Car not found")
		return
	}

	updated := *car
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	updated.ID = car.ID

	if err := h.carCollection.UpdateCar(r.Context(), id, updated); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			writeError(w, http.StatusConflict, "Plate number already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update car")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a car. Owner only.
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.carCollection.DeleteCar(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete car")
		return
	}
	writeMessage(w, "Car deleted")
}
