package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/arunvel/fleet-office/internal/models"
)

// MockUserCollection is a mock implementation of UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCarCollection is a mock implementation of CarCollection
type MockCarCollection struct {
	mock.Mock
}

func (m *MockCarCollection) InsertCar(ctx context.Context, car models.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarCollection) FindCars(ctx context.Context, filter bson.M) ([]models.Car, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarCollection) FindCarByID(ctx context.Context, id string) (*models.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Car), args.Error(1)
}

func (m *MockCarCollection) UpdateCar(ctx context.Context, id string, car models.Car) error {
	args := m.Called(ctx, id, car)
	return args.Error(0)
}

func (m *MockCarCollection) DeleteCar(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTripCollection is a mock implementation of TripCollection
type MockTripCollection struct {
	mock.Mock
}

func (m *MockTripCollection) InsertTrip(ctx context.Context, trip models.Trip) error {
	args := m.Called(ctx, trip)
	return args.Error(0)
}

func (m *MockTripCollection) FindTrips(ctx context.Context, filter bson.M) ([]models.Trip, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripCollection) UpdateTrip(ctx context.Context, id string, trip models.Trip) error {
	args := m.Called(ctx, id, trip)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteTrip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBillCollection is a mock implementation of BillCollection
type MockBillCollection struct {
	mock.Mock
}

func (m *MockBillCollection) InsertBill(ctx context.Context, bill models.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillCollection) FindBills(ctx context.Context, filter bson.M) ([]models.Bill, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bill), args.Error(1)
}

func (m *MockBillCollection) FindBillByID(ctx context.Context, id string) (*models.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillCollection) FindBillByTripID(ctx context.Context, tripID string) (*models.Bill, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bill), args.Error(1)
}

func (m *MockBillCollection) UpdateBill(ctx context.Context, id string, bill models.Bill) error {
	args := m.Called(ctx, id, bill)
	return args.Error(0)
}

func (m *MockBillCollection) UpdateBillBalance(ctx context.Context, id string, balance float64, status models.BillStatus) error {
	args := m.Called(ctx, id, balance, status)
	return args.Error(0)
}

func (m *MockBillCollection) DeleteBill(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaymentCollection is a mock implementation of PaymentCollection
type MockPaymentCollection struct {
	mock.Mock
}

func (m *MockPaymentCollection) InsertPayment(ctx context.Context, payment models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentCollection) FindPayments(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentCollection) FindPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentCollection) FindPaymentsByBillID(ctx context.Context, billID string) ([]models.Payment, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payment), args.Error(1)
}

func (m *MockPaymentCollection) DeletePayment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBataConfigCollection is a mock implementation of BataConfigCollection
type MockBataConfigCollection struct {
	mock.Mock
}

func (m *MockBataConfigCollection) FindBataConfigs(ctx context.Context) ([]models.BataConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BataConfig), args.Error(1)
}

func (m *MockBataConfigCollection) FindBataByVehicleType(ctx context.Context, vehicleType string) (*models.BataConfig, error) {
	args := m.Called(ctx, vehicleType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BataConfig), args.Error(1)
}

func (m *MockBataConfigCollection) UpsertBataConfig(ctx context.Context, vehicleType string, bataPerDay float64) (*models.BataConfig, error) {
	args := m.Called(ctx, vehicleType, bataPerDay)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BataConfig), args.Error(1)
}

func (m *MockBataConfigCollection) CountBataConfigs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBataConfigCollection) InsertBataConfigs(ctx context.Context, configs []models.BataConfig) error {
	args := m.Called(ctx, configs)
	return args.Error(0)
}

// MockLeaveCollection is a mock implementation of LeaveCollection
type MockLeaveCollection struct {
	mock.Mock
}

func (m *MockLeaveCollection) InsertLeave(ctx context.Context, leave models.Leave) error {
	args := m.Called(ctx, leave)
	return args.Error(0)
}

func (m *MockLeaveCollection) FindLeaves(ctx context.Context, filter bson.M) ([]models.Leave, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Leave), args.Error(1)
}

func (m *MockLeaveCollection) FindLeaveByID(ctx context.Context, id string) (*models.Leave, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Leave), args.Error(1)
}

func (m *MockLeaveCollection) UpdateLeave(ctx context.Context, id string, leave models.Leave) error {
	args := m.Called(ctx, id, leave)
	return args.Error(0)
}

func (m *MockLeaveCollection) UpdateLeaveStatus(ctx context.Context, id string, status models.LeaveStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeaveCollection) DeleteLeave(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAdvanceCollection is a mock implementation of AdvanceCollection
type MockAdvanceCollection struct {
	mock.Mock
}

func (m *MockAdvanceCollection) InsertAdvance(ctx context.Context, advance models.Advance) error {
	args := m.Called(ctx, advance)
	return args.Error(0)
}

func (m *MockAdvanceCollection) FindAdvances(ctx context.Context, filter bson.M) ([]models.Advance, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Advance), args.Error(1)
}

func (m *MockAdvanceCollection) DeleteAdvance(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
