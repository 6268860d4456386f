package booking

import (
	"errors"
	"fmt"

	appointmentRepo "laundrify/database/repository/appointment"
	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a (shop, date, slot) triple for the customer. The slot must
// not be held by any non-cancelled appointment; the unique slot index backs
// the availability query up, so two racing requests cannot both land.
func (s *DefaultBookingService) Create(userID string, in CreateBookingInput) (*models.Appointment, error) {
	appt, err := s.create(userID, in)
	if err != nil {
		return nil, err
	}

	if s.Reminders != nil {
		shopName := ""
		if shop, err := s.ShopRepo.GetByID(in.ShopID); err == nil && shop != nil {
			shopName = shop.Name
		}
		if err := s.Reminders.ScheduleAppointmentReminder(*appt, shopName); err != nil {
			// The booking stands even when the reminder cannot be queued.
			utils.GetLogger().Warn("Failed to schedule appointment reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// AdminCreate books on behalf of a customer, with the same slot rules.
func (s *DefaultBookingService) AdminCreate(userID string, in CreateBookingInput) (*models.Appointment, error) {
	if userID == "" {
		return nil, utils.NewValidationError("userId is required")
	}
	return s.create(userID, in)
}

func (s *DefaultBookingService) create(userID string, in CreateBookingInput) (*models.Appointment, error) {
	if in.ShopID == "" || in.Date == "" || in.TimeSlot == "" {
		return nil, utils.NewValidationError("laundryShopId, date and timeSlot are required")
	}
	if !models.ValidTimeSlot(in.TimeSlot) {
		return nil, utils.NewValidationError("unrecognized time slot %q", in.TimeSlot)
	}
	date, err := models.NormalizeDate(in.Date)
	if err != nil {
		return nil, utils.NewValidationError("invalid date %q", in.Date)
	}

	shop, err := s.ShopRepo.GetByID(in.ShopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil || !shop.IsActive {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}

	existing, err := s.Repo.FindActiveSlot(in.ShopID, date, in.TimeSlot, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if existing != nil {
		return nil, utils.NewConflictError("time slot %s on %s is already booked", in.TimeSlot, date)
	}

	appt := &models.Appointment{
		ID:       uuid.New().String(),
		UserID:   userID,
		ShopID:   in.ShopID,
		Date:     date,
		TimeSlot: in.TimeSlot,
		Status:   models.StatusScheduled,
		SlotKey:  models.SlotKeyFor(in.ShopID, date, in.TimeSlot),
	}
	if err := s.Repo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			// Lost the race between the availability check and the insert.
			return nil, utils.NewConflictError("time slot %s on %s is already booked", in.TimeSlot, date)
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return appt, nil
}

// ListMine returns the customer's appointments with shop summaries attached.
func (s *DefaultBookingService) ListMine(userID string) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return s.attachDetails(appts, false), nil
}

// GetMine returns one of the customer's appointments.
func (s *DefaultBookingService) GetMine(userID, apptID string) (*models.AppointmentDetail, error) {
	appt, err := s.Repo.GetByIDForUser(apptID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, utils.NewNotFoundError("appointment not found")
	}
	details := s.attachDetails([]models.Appointment{*appt}, false)
	return &details[0], nil
}

// Update applies a customer-initiated change. Completed appointments are
// immutable; customers may only move a Scheduled appointment or cancel it.
// Rescheduling re-runs the slot conflict check against the new (date, slot).
func (s *DefaultBookingService) Update(userID, apptID string, in UpdateBookingInput) (*models.Appointment, error) {
	appt, err := s.Repo.GetByIDForUser(apptID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment: %w", err)
	}
	if appt == nil {
		return nil, utils.NewNotFoundError("appointment not found")
	}
	if appt.Status == models.StatusCompleted {
		return nil, utils.NewInvalidStateError("cannot update a completed appointment")
	}

	if in.Status != "" {
		// The customer path only cancels; everything else is operator-only.
		if in.Status != models.StatusCancelled && in.Status != models.StatusScheduled {
			return nil, utils.NewValidationError("invalid status transition to %q", in.Status)
		}
		appt.Status = in.Status
	}
	if in.Date != "" {
		date, err := models.NormalizeDate(in.Date)
		if err != nil {
			return nil, utils.NewValidationError("invalid date %q", in.Date)
		}
		appt.Date = date
	}
	if in.TimeSlot != "" {
		if !models.ValidTimeSlot(in.TimeSlot) {
			return nil, utils.NewValidationError("unrecognized time slot %q", in.TimeSlot)
		}
		appt.TimeSlot = in.TimeSlot
	}

	if appt.Occupied() {
		taken, err := s.Repo.FindActiveSlot(appt.ShopID, appt.Date, appt.TimeSlot, appt.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check slot availability: %w", err)
		}
		if taken != nil {
			return nil, utils.NewConflictError("time slot %s on %s is already booked", appt.TimeSlot, appt.Date)
		}
		appt.SlotKey = models.SlotKeyFor(appt.ShopID, appt.Date, appt.TimeSlot)
	} else {
		appt.SlotKey = ""
	}

	if err := s.Repo.Update(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			return nil, utils.NewConflictError("time slot %s on %s is already booked", appt.TimeSlot, appt.Date)
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return appt, nil
}

// Delete removes a customer's appointment. Completed appointments stay.
func (s *DefaultBookingService) Delete(userID, apptID string) error {
	appt, err := s.Repo.GetByIDForUser(apptID, userID)
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

// attachDetails joins shop (and optionally user) summaries onto appointments.
func (s *DefaultBookingService) attachDetails(appts []models.Appointment, withUser bool) []models.AppointmentDetail {
	details := make([]models.AppointmentDetail, 0, len(appts))
	shops := make(map[string]*models.ShopSummary)
	for _, a := range appts {
		d := models.AppointmentDetail{Appointment: a}

		summary, seen := shops[a.ShopID]
		if !seen {
			if shop, err := s.ShopRepo.GetByID(a.ShopID); err == nil && shop != nil {
				sum := shop.Summary()
				summary = &sum
			}
			shops[a.ShopID] = summary
		}
		d.Shop = summary

		if withUser && s.Users != nil {
			if u, err := s.Users.GetSummary(a.UserID); err == nil {
				d.User = u
			}
		}
		details = append(details, d)
	}
	return details
}
