package models

import (
	"testing"
	"time"
)

func TestValidTimeSlot(t *testing.T) {
	for _, s := range AllTimeSlots {
		if !ValidTimeSlot(s) {
			t.Fatalf("grid slot %q reported invalid", s)
		}
	}

	invalid := []TimeSlot{
		"",
		"12:00 PM - 01:00 PM",
		"09:00 am - 10:00 am",
		"09:00 AM",
	}
	for _, s := range invalid {
		if ValidTimeSlot(s) {
			t.Fatalf("slot %q reported valid", s)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain date", in: "2026-03-15", want: "2026-03-15"},
		{name: "rfc3339", in: "2026-03-15T14:30:00Z", want: "2026-03-15"},
		{name: "rfc3339 with offset", in: "2026-03-15T23:30:00-03:00", want: "2026-03-16"},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "next tuesday", wantErr: true},
		{name: "us format", in: "03/15/2026", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("NormalizeDate(%q) = %q, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizeDate(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSlotStartTime(t *testing.T) {
	got, err := SlotStartTime("2026-03-15", "01:00 PM - 02:00 PM")
	if err != nil {
		t.Fatalf("SlotStartTime failed: %v", err)
	}
	want := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("SlotStartTime = %v, want %v", got, want)
	}

	if _, err := SlotStartTime("2026-03-15", "afternoon"); err == nil {
		t.Fatal("expected error for malformed slot")
	}
}

func TestSlotKeyFor(t *testing.T) {
	key := SlotKeyFor("shop-1", "2026-03-15", "09:00 AM - 10:00 AM")
	if key != "shop-1|2026-03-15|09:00 AM - 10:00 AM" {
		t.Fatalf("unexpected slot key %q", key)
	}
}

func TestAppointmentOccupied(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusScheduled, true},
		{StatusCompleted, true},
		{StatusCancelled, false},
	}
	for _, tc := range tests {
		a := Appointment{Status: tc.status}
		if a.Occupied() != tc.want {
			t.Fatalf("Occupied() with status %q = %v, want %v", tc.status, a.Occupied(), tc.want)
		}
	}
}
