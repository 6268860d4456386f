package appointmentRepo

import (
	"errors"

	"laundrify/models"
)

// ErrSlotTaken is surfaced when the unique slot index rejects an insert or
// update, meaning another appointment already occupies the slot.
var ErrSlotTaken = errors.New("slot already occupied")

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByIDForUser(id, userID string) (*models.Appointment, error)
	GetByUser(userID string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)
	FindActiveSlot(shopID, date string, slot models.TimeSlot, excludeID string) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	Delete(id string) error
}
