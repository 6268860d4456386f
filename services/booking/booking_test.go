package booking

import (
	"testing"

	appointmentRepo "laundrify/database/repository/appointment"
	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
	"laundrify/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeAppointmentRepo is an in-memory repository that enforces the same
// slot uniqueness rule as the unique index.
type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) slotHolder(key, excludeID string) *models.Appointment {
	for _, a := range f.appts {
		if a.ID != excludeID && a.SlotKey != "" && a.SlotKey == key {
			return a
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	if appt.SlotKey != "" && f.slotHolder(appt.SlotKey, appt.ID) != nil {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByIDForUser(id, userID string) (*models.Appointment, error) {
	a, ok := f.appts[id]
	if !ok || a.UserID != userID {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByUser(userID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetAll() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindActiveSlot(shopID, date string, slot models.TimeSlot, excludeID string) (*models.Appointment, error) {
	key := models.SlotKeyFor(shopID, date, slot)
	if a := f.slotHolder(key, excludeID); a != nil {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	if appt.SlotKey != "" && f.slotHolder(appt.SlotKey, appt.ID) != nil {
		return appointmentRepo.ErrSlotTaken
	}
	cp := *appt
	f.appts[appt.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Delete(id string) error {
	delete(f.appts, id)
	return nil
}

// fakeShopRepo serves a fixed set of shops; write operations are unused here.
type fakeShopRepo struct {
	shops map[string]*models.Shop
}

func (f *fakeShopRepo) Create(shop *models.Shop) error { return nil }
func (f *fakeShopRepo) GetByID(id string) (*models.Shop, error) {
	s, ok := f.shops[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}
func (f *fakeShopRepo) List(filter shopRepo.ShopListFilter) ([]models.Shop, int64, error) {
	return nil, 0, nil
}
func (f *fakeShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (f *fakeShopRepo) Deactivate(id string) error                          { return nil }
func (f *fakeShopRepo) ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error {
	return nil
}
func (f *fakeShopRepo) AddMenuItem(shopID string, item models.MenuItem) error    { return nil }
func (f *fakeShopRepo) UpdateMenuItem(shopID string, item models.MenuItem) error { return nil }
func (f *fakeShopRepo) RemoveMenuItem(shopID, itemID string) error               { return nil }

type recordingScheduler struct {
	scheduled []models.Appointment
}

func (r *recordingScheduler) ScheduleAppointmentReminder(appt models.Appointment, shopName string) error {
	r.scheduled = append(r.scheduled, appt)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeAppointmentRepo, *recordingScheduler) {
	repo := newFakeAppointmentRepo()
	sched := &recordingScheduler{}
	svc := &DefaultBookingService{
		Repo: repo,
		ShopRepo: &fakeShopRepo{shops: map[string]*models.Shop{
			"shop-1": {ID: "shop-1", Name: "Fresh Spin", IsActive: true},
			"shop-2": {ID: "shop-2", Name: "Suds City", IsActive: true},
			"shop-9": {ID: "shop-9", Name: "Closed Down", IsActive: false},
		}},
		Reminders: sched,
	}
	return svc, repo, sched
}

const slot9 = models.TimeSlot("09:00 AM - 10:00 AM")
const slot10 = models.TimeSlot("10:00 AM - 11:00 AM")

func TestCreateBooking(t *testing.T) {
	svc, _, sched := newTestService()

	appt, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if appt.Status != models.StatusScheduled {
		t.Fatalf("new appointment status = %q, want %q", appt.Status, models.StatusScheduled)
	}
	if appt.SlotKey != models.SlotKeyFor("shop-1", "2026-04-01", slot9) {
		t.Fatalf("unexpected slot key %q", appt.SlotKey)
	}
	if len(sched.scheduled) != 1 {
		t.Fatalf("expected one scheduled reminder, got %d", len(sched.scheduled))
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name string
		in   CreateBookingInput
	}{
		{name: "missing shop", in: CreateBookingInput{Date: "2026-04-01", TimeSlot: slot9}},
		{name: "missing date", in: CreateBookingInput{ShopID: "shop-1", TimeSlot: slot9}},
		{name: "bad slot", in: CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: "noon"}},
		{name: "bad date", in: CreateBookingInput{ShopID: "shop-1", Date: "tomorrow", TimeSlot: slot9}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create("user-1", tc.in); !utils.HasCode(err, utils.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if _, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-9", Date: "2026-04-01", TimeSlot: slot9}); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found for inactive shop, got %v", err)
	}
}

func TestSlotExclusivity(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Same shop, date and slot from another customer must conflict.
	if _, err := svc.Create("user-2", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9}); !utils.HasCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// A different slot, a different day and a different shop are all free.
	free := []CreateBookingInput{
		{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot10},
		{ShopID: "shop-1", Date: "2026-04-02", TimeSlot: slot9},
		{ShopID: "shop-2", Date: "2026-04-01", TimeSlot: slot9},
	}
	for _, in := range free {
		if _, err := svc.Create("user-2", in); err != nil {
			t.Fatalf("booking %+v failed: %v", in, err)
		}
	}
}

func TestCancellationFreesSlot(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	if _, err := svc.Update("user-1", appt.ID, UpdateBookingInput{Status: models.StatusCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	// The freed slot is bookable again.
	if _, err := svc.Create("user-2", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9}); err != nil {
		t.Fatalf("rebooking freed slot failed: %v", err)
	}
}

func TestRescheduleConflict(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	mine, err := svc.Create("user-2", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot10})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	// Moving onto the occupied slot must conflict.
	if _, err := svc.Update("user-2", mine.ID, UpdateBookingInput{TimeSlot: slot9}); !utils.HasCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// Moving to a free day succeeds and updates the slot key.
	updated, err := svc.Update("user-2", mine.ID, UpdateBookingInput{Date: "2026-04-03"})
	if err != nil {
		t.Fatalf("reschedule failed: %v", err)
	}
	if updated.SlotKey != models.SlotKeyFor("shop-1", "2026-04-03", slot10) {
		t.Fatalf("slot key not updated: %q", updated.SlotKey)
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	svc, repo, _ := newTestService()

	appt, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.AdminSetStatus(appt.ID, models.StatusCompleted); err != nil {
		t.Fatalf("completing failed: %v", err)
	}

	// Customer updates and deletes are refused.
	if _, err := svc.Update("user-1", appt.ID, UpdateBookingInput{Status: models.StatusCancelled}); !utils.HasCode(err, utils.CodeInvalidState) {
		t.Fatalf("expected invalid state on update, got %v", err)
	}
	if err := svc.Delete("user-1", appt.ID); !utils.HasCode(err, utils.CodeInvalidState) {
		t.Fatalf("expected invalid state on delete, got %v", err)
	}

	// The operator path cannot reopen it either.
	if _, err := svc.AdminSetStatus(appt.ID, models.StatusScheduled); !utils.HasCode(err, utils.CodeInvalidState) {
		t.Fatalf("expected invalid state on admin transition, got %v", err)
	}
	if err := svc.AdminDelete(appt.ID); !utils.HasCode(err, utils.CodeInvalidState) {
		t.Fatalf("expected invalid state on admin delete, got %v", err)
	}

	if stored, _ := repo.GetByID(appt.ID); stored == nil || stored.Status != models.StatusCompleted {
		t.Fatalf("completed appointment was mutated: %+v", stored)
	}
}

func TestCustomerCannotComplete(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.Update("user-1", appt.ID, UpdateBookingInput{Status: models.StatusCompleted}); !utils.HasCode(err, utils.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOwnershipScoping(t *testing.T) {
	svc, _, _ := newTestService()

	appt, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	// Another customer sees not-found, never forbidden, so ids stay opaque.
	if _, err := svc.GetMine("user-2", appt.ID); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Update("user-2", appt.ID, UpdateBookingInput{Status: models.StatusCancelled}); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete("user-2", appt.ID); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminReactivationConflict(t *testing.T) {
	svc, _, _ := newTestService()

	first, err := svc.Create("user-1", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9})
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if _, err := svc.Update("user-1", first.ID, UpdateBookingInput{Status: models.StatusCancelled}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.Create("user-2", CreateBookingInput{ShopID: "shop-1", Date: "2026-04-01", TimeSlot: slot9}); err != nil {
		t.Fatalf("rebooking failed: %v", err)
	}

	// Reactivating the cancelled appointment collides with the new holder.
	if _, err := svc.AdminSetStatus(first.ID, models.StatusScheduled); !utils.HasCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
