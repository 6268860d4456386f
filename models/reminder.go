package models

// ReminderPayload is the queued task payload for an appointment reminder.
// The appointment is re-read at delivery time, so a booking cancelled after
// scheduling is silently skipped.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	ShopName      string `json:"shopName"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
}
