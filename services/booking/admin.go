// File: services/booking/admin.go
package booking

import (
	"errors"
	"fmt"

	appointmentRepo "laundrify/database/repository/appointment"
	"laundrify/models"
	"laundrify/utils"
)

// AdminList returns every appointment with user and shop summaries.
func (s *DefaultBookingService) AdminList() ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return s.attachDetails(appts, true), nil
}

// AdminGet returns any appointment by id.
func (s *DefaultBookingService) AdminGet(apptID string) (*models.AppointmentDetail, error) {
	appt, err := s.Repo.GetByID(apptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, utils.NewNotFoundError("appointment not found")
	}
	details := s.attachDetails([]models.Appointment{*appt}, true)
	return &details[0], nil
}

// AdminSetStatus moves an appointment to any recognized status. Completed is
// terminal even for operators; a finished appointment never changes again.
func (s *DefaultBookingService) AdminSetStatus(apptID string, status models.AppointmentStatus) (*models.Appointment, error) {
	if !models.ValidAppointmentStatus(status) {
		return nil, utils.NewValidationError("invalid status value %q", status)
	}
	appt, err := s.Repo.GetByID(apptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, utils.NewNotFoundError("appointment not found")
	}
	if appt.Status == models.StatusCompleted && status != models.StatusCompleted {
		return nil, utils.NewInvalidStateError("cannot change a completed appointment")
	}

	appt.Status = status
	if appt.Occupied() {
		appt.SlotKey = models.SlotKeyFor(appt.ShopID, appt.Date, appt.TimeSlot)
	} else {
		appt.SlotKey = ""
	}
	if err := s.Repo.Update(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			// Re-activating into an occupied slot.
			return nil, utils.NewConflictError("time slot %s on %s is already booked", appt.TimeSlot, appt.Date)
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appt, nil
}

// AdminDelete removes any appointment regardless of owner, except completed
// ones, which are kept for the record.
func (s *DefaultBookingService) AdminDelete(apptID string) error {
	appt, err := s.Repo.GetByID(apptID)
	if err != nil {
		return fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return utils.NewNotFoundError("appointment not found")
	}
	if appt.Status == models.StatusCompleted {
		return utils.NewInvalidStateError("cannot delete a completed appointment")
	}
	if err := s.Repo.Delete(apptID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}
