package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LeaveType represents the span of a leave request.
type LeaveType string

const (
	LeaveFullDay LeaveType = "full_day"
	LeaveHalfDay LeaveType = "half_day"
)

// LeaveStatus represents the approval state of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// Leave is a driver leave request.
type Leave struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DriverID  string             `bson:"driverId" json:"driverId"`
	Date      string             `bson:"date" json:"date"`
	LeaveType LeaveType          `bson:"leaveType" json:"leaveType"`
	Status    LeaveStatus        `bson:"status" json:"status"`
	Reason    string             `bson:"reason" json:"reason"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsValidLeaveType checks if a leave type is valid
func IsValidLeaveType(t LeaveType) bool {
	return t == LeaveFullDay || t == LeaveHalfDay
}
