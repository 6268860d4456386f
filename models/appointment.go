package models

import (
	"fmt"
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// ValidAppointmentStatus reports whether s is a recognized status value.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment is a booked (shop, date, time slot) reservation.
type Appointment struct {
	ID       string            `bson:"id" json:"id"`
	UserID   string            `bson:"userId" json:"userId"`
	ShopID   string            `bson:"shopId" json:"laundryShopId"`
	Date     string            `bson:"date" json:"date"` // calendar day, "YYYY-MM-DD"
	TimeSlot TimeSlot          `bson:"timeSlot" json:"timeSlot"`
	Status   AppointmentStatus `bson:"status" json:"status"`

	// SlotKey is set while the appointment occupies its slot and unset on
	// cancellation. A unique sparse index on it rejects double bookings at
	// the store even when two create requests race.
	SlotKey string `bson:"slotKey,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SlotKeyFor builds the uniqueness key for an occupied slot.
func SlotKeyFor(shopID, date string, slot TimeSlot) string {
	return fmt.Sprintf("%s|%s|%s", shopID, date, slot)
}

// Occupied reports whether the appointment holds its slot.
func (a *Appointment) Occupied() bool {
	return a.Status != StatusCancelled
}

// AppointmentDetail pairs an appointment with summaries for display.
type AppointmentDetail struct {
	Appointment `bson:",inline"`
	Shop        *ShopSummary `json:"laundryShop,omitempty"`
	User        *UserSummary `json:"user,omitempty"`
}
