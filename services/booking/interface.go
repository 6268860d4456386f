package booking

import (
	appointmentRepo "laundrify/database/repository/appointment"
	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
)

// CreateBookingInput is a customer booking request. The user identity comes
// from the authenticated session, never from the request body.
type CreateBookingInput struct {
	ShopID   string          `json:"laundryShopId"`
	Date     string          `json:"date"`
	TimeSlot models.TimeSlot `json:"timeSlot"`
}

// UpdateBookingInput carries a customer-initiated change. Nil/empty fields
// are left untouched.
type UpdateBookingInput struct {
	Date     string                   `json:"date,omitempty"`
	TimeSlot models.TimeSlot          `json:"timeSlot,omitempty"`
	Status   models.AppointmentStatus `json:"status,omitempty"`
}

// BookingService decides whether bookings may be created or changed.
type BookingService interface {
	Create(userID string, in CreateBookingInput) (*models.Appointment, error)
	ListMine(userID string) ([]models.AppointmentDetail, error)
	GetMine(userID, apptID string) (*models.AppointmentDetail, error)
	Update(userID, apptID string, in UpdateBookingInput) (*models.Appointment, error)
	Delete(userID, apptID string) error

	// Operator path.
	AdminList() ([]models.AppointmentDetail, error)
	AdminGet(apptID string) (*models.AppointmentDetail, error)
	AdminCreate(userID string, in CreateBookingInput) (*models.Appointment, error)
	AdminSetStatus(apptID string, status models.AppointmentStatus) (*models.Appointment, error)
	AdminDelete(apptID string) error
}

// ReminderScheduler queues an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt models.Appointment, shopName string) error
}

// UserDirectory resolves user summaries for appointment listings.
type UserDirectory interface {
	GetSummary(userID string) (*models.UserSummary, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	ShopRepo  shopRepo.ShopRepository
	Users     UserDirectory
	Reminders ReminderScheduler
}
