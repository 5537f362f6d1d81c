package billing

import (
	"errors"
	"math"
	"time"

	"github.com/arunvel/fleet-office/internal/models"
)

// DefaultBataPerDay is used when a trip's vehicle type has no
// configured allowance.
const DefaultBataPerDay = 500

const dateLayout = "2006-01-02"

var (
	ErrTripNotOngoing   = errors.New("trip is not ongoing")
	ErrTripAlreadyEnded = errors.New("trip already completed")
	ErrNegativeDistance = errors.New("ending km is less than starting km")
)

// TotalDays returns the chargeable day count for a trip span. The span
// is rounded up to whole days and clamped to a minimum of one, so a
// same-day or reversed span still bills a single day. Unparseable
// dates also clamp to one day.
func TotalDays(startDate, endDate string) int {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// Derive computes the bill for a completed trip. It is a pure function
// of the trip's end data and the per-day allowance: no I/O, safe to
// re-run. Parking and other incidental charges recorded on the trip
// are intentionally not part of the bill total.
func Derive(trip models.Trip, bataPerDay float64, generatedBy string) models.Bill {
	totalDays := TotalDays(trip.StartDate, trip.EndDate)
	driverBata := float64(totalDays) * bataPerDay
	totalBill := driverBata + trip.TollAmount + trip.Permit

	return models.Bill{
		TripID:        trip.ID.Hex(),
		CarID:         trip.CarID,
		DriverID:      trip.DriverID,
		CustomerName:  trip.CustomerName,
		StartDate:     trip.StartDate,
		EndDate:       trip.EndDate,
		StartKm:       trip.StartKm,
		EndKm:         trip.EndKm,
		TotalKm:       trip.TotalKm,
		TotalDays:     totalDays,
		BataPerDay:    bataPerDay,
		DriverBata:    driverBata,
		TollAmount:    trip.TollAmount,
		Permit:        trip.Permit,
		TotalBill:     totalBill,
		AdvanceAmount: 0,
		BalanceAmount: totalBill,
		Status:        models.BillUnpaid,
		GeneratedBy:   generatedBy,
	}
}

// EndTrip applies the end transition to a trip. It validates the
// current status and the odometer span, records the end fields and
// derives the total distance. The caller persists the result and
// creates the bill.
func EndTrip(trip *models.Trip, req models.EndTripRequest) error {
	switch trip.Status {
	case models.TripCompleted:
		return ErrTripAlreadyEnded
	case models.TripOngoing:
	default:
		return ErrTripNotOngoing
	}
	if req.EndKm < trip.StartKm {
		return ErrNegativeDistance
	}

	trip.EndKm = req.EndKm
	trip.EndDate = req.EndDate
	trip.EndTime = req.EndTime
	trip.TollAmount = req.TollAmount
	trip.Permit = req.Permit
	trip.TotalKm = req.EndKm - trip.StartKm
	trip.Status = models.TripCompleted
	return nil
}

// Reconcile recomputes a bill's balance and status from its full
// payment set. The payment list is the single source of truth; the
// stored balance and status are always overwritten, never adjusted
// incrementally.
func Reconcile(bill models.Bill, payments []models.Payment) (balance float64, status models.BillStatus) {
	var totalPaid float64
	for _, p := range payments {
		totalPaid += p.Amount
	}
	balance = bill.TotalBill - bill.AdvanceAmount - totalPaid

	switch {
	case balance <= 0:
		status = models.BillPaid
	case balance >= bill.TotalBill:
		status = models.BillUnpaid
	default:
		status = models.BillPartial
	}
	return balance, status
}
