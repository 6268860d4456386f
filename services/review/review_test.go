package review

import (
	"testing"

	shopRepo "laundrify/database/repository/shop"
	userRepo "laundrify/database/repository/user"
	"laundrify/models"
	"laundrify/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeShopRepo keeps shops in memory and enforces the optimistic version
// check on review writes, matching the mongo implementation.
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
	cp.Reviews = append([]models.Review(nil), s.Reviews...)
	cp.Ratings = append([]int(nil), s.Ratings...)
	return &cp, nil
}

func (f *fakeShopRepo) List(filter shopRepo.ShopListFilter) ([]models.Shop, int64, error) {
	return nil, 0, nil
}
func (f *fakeShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (f *fakeShopRepo) Deactivate(id string) error                          { return nil }

func (f *fakeShopRepo) ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error {
	s, ok := f.shops[shopID]
	if !ok || s.Version != version {
		return shopRepo.ErrVersionConflict
	}
	s.Reviews = append([]models.Review(nil), reviews...)
	s.Ratings = append([]int(nil), ratings...)
	s.Version++
	return nil
}

func (f *fakeShopRepo) AddMenuItem(shopID string, item models.MenuItem) error    { return nil }
func (f *fakeShopRepo) UpdateMenuItem(shopID string, item models.MenuItem) error { return nil }
func (f *fakeShopRepo) RemoveMenuItem(shopID, itemID string) error               { return nil }

// fakeUserRepo overrides only the lookup used by the review listing.
type fakeUserRepo struct {
	userRepo.UserRepository
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newTestService() (*DefaultReviewService, *fakeShopRepo) {
	repo := &fakeShopRepo{shops: map[string]*models.Shop{
		"shop-1": {ID: "shop-1", Name: "Fresh Spin", IsActive: true},
	}}
	svc := &DefaultReviewService{
		ShopRepo: repo,
		UserRepo: &fakeUserRepo{users: map[string]*models.User{
			"user-1": {ID: "user-1", Name: "Ann", Email: "ann@example.com"},
			"user-2": {ID: "user-2", Name: "Ben", Email: "ben@example.com"},
		}},
	}
	return svc, repo
}

func validInput(rating int) SubmitReviewInput {
	return SubmitReviewInput{
		Rating:      rating,
		Title:       "Great service",
		Comment:     "Clothes came back spotless.",
		ServiceType: models.ServiceType("Washing"),
	}
}

func TestSubmitReview(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(4)); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	s := repo.shops["shop-1"]
	if len(s.Reviews) != 1 || len(s.Ratings) != 1 {
		t.Fatalf("expected one review and one rating, got %d/%d", len(s.Reviews), len(s.Ratings))
	}
	if s.Ratings[0] != 4 {
		t.Fatalf("rating = %d, want 4", s.Ratings[0])
	}
}

func TestSubmitReviewValidation(t *testing.T) {
	svc, _ := newTestService()

	tests := []struct {
		name string
		in   SubmitReviewInput
	}{
		{name: "zero rating", in: SubmitReviewInput{Title: "t", Comment: "c", ServiceType: "Washing"}},
		{name: "rating too high", in: SubmitReviewInput{Rating: 6, Title: "t", Comment: "c", ServiceType: "Washing"}},
		{name: "rating too low", in: SubmitReviewInput{Rating: -1, Title: "t", Comment: "c", ServiceType: "Washing"}},
		{name: "missing title", in: SubmitReviewInput{Rating: 3, Comment: "c", ServiceType: "Washing"}},
		{name: "missing comment", in: SubmitReviewInput{Rating: 3, Title: "t", ServiceType: "Washing"}},
		{name: "bad service type", in: SubmitReviewInput{Rating: 3, Title: "t", Comment: "c", ServiceType: "Plumbing"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := svc.Submit("user-1", "shop-1", tc.in); !utils.HasCode(err, utils.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if err := svc.Submit("user-1", "missing", validInput(3)); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResubmitOverwrites(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(2)); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	in := validInput(5)
	in.Title = "Changed my mind"
	if err := svc.Submit("user-1", "shop-1", in); err != nil {
		t.Fatalf("resubmit failed: %v", err)
	}

	s := repo.shops["shop-1"]
	if len(s.Reviews) != 1 || len(s.Ratings) != 1 {
		t.Fatalf("resubmission duplicated the review: %d/%d", len(s.Reviews), len(s.Ratings))
	}
	if s.Ratings[0] != 5 || s.Reviews[0].Title != "Changed my mind" {
		t.Fatalf("review not overwritten in place: %+v", s.Reviews[0])
	}

	// A second customer appends instead.
	if err := svc.Submit("user-2", "shop-1", validInput(3)); err != nil {
		t.Fatalf("second customer submit failed: %v", err)
	}
	if len(s.Reviews) != 2 {
		t.Fatalf("expected two reviews, got %d", len(s.Reviews))
	}
}

func TestToggleLike(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(4)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	reviewID := repo.shops["shop-1"].Reviews[0].ID

	likes, err := svc.ToggleLike("user-2", "shop-1", reviewID)
	if err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if len(likes) != 1 || likes[0] != "user-2" {
		t.Fatalf("likes after first toggle = %v", likes)
	}

	likes, err = svc.ToggleLike("user-2", "shop-1", reviewID)
	if err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	if len(likes) != 0 {
		t.Fatalf("likes after second toggle = %v", likes)
	}

	if _, err := svc.ToggleLike("user-2", "shop-1", "missing"); !utils.HasCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRespondOnce(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(4)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	reviewID := repo.shops["shop-1"].Reviews[0].ID

	if err := svc.Respond("shop-1", reviewID, ""); !utils.HasCode(err, utils.CodeValidation) {
		t.Fatalf("expected validation error for empty response, got %v", err)
	}
	if err := svc.Respond("shop-1", reviewID, "Thanks for the kind words"); err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if err := svc.Respond("shop-1", reviewID, "Another reply"); !utils.HasCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict on second response, got %v", err)
	}
}

func TestSoftDelete(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(5)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if err := svc.Submit("user-2", "shop-1", validInput(1)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	reviewID := repo.shops["shop-1"].Reviews[1].ID

	// A stranger may not delete it, the owner may.
	if err := svc.SoftDelete("user-1", false, "shop-1", reviewID); !utils.HasCode(err, utils.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := svc.SoftDelete("user-2", false, "shop-1", reviewID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	s := repo.shops["shop-1"]
	if len(s.Reviews) != 2 || len(s.Ratings) != 2 {
		t.Fatalf("soft delete must not remove entries: %d/%d", len(s.Reviews), len(s.Ratings))
	}
	if !s.Reviews[1].IsDeleted {
		t.Fatal("review not flagged deleted")
	}

	// The deleted rating no longer counts toward the average.
	if avg, ok := s.AverageRating(); !ok || avg != 5 {
		t.Fatalf("average after delete = %v (%v), want 5", avg, ok)
	}

	// Listing skips it, and the customer may write a fresh review.
	views, err := svc.List("shop-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one live review, got %d", len(views))
	}
	if err := svc.Submit("user-2", "shop-1", validInput(3)); err != nil {
		t.Fatalf("fresh submit after delete failed: %v", err)
	}
	if len(repo.shops["shop-1"].Reviews) != 3 {
		t.Fatalf("fresh review should append, got %d entries", len(repo.shops["shop-1"].Reviews))
	}
}

func TestAdminCanDeleteAnyReview(t *testing.T) {
	svc, repo := newTestService()

	if err := svc.Submit("user-1", "shop-1", validInput(4)); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	reviewID := repo.shops["shop-1"].Reviews[0].ID

	if err := svc.SoftDelete("admin-1", true, "shop-1", reviewID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if !repo.shops["shop-1"].Reviews[0].IsDeleted {
		t.Fatal("review not flagged deleted")
	}
}

func TestVersionConflict(t *testing.T) {
	// The store is at version 7 but every read comes back at version 0, as
	// if another writer advanced the document after our read.
	repo := &fakeShopRepo{shops: map[string]*models.Shop{
		"shop-1": {ID: "shop-1", Name: "Fresh Spin", IsActive: true, Version: 7},
	}}
	svc := &DefaultReviewService{ShopRepo: &staleShopRepo{inner: repo}}

	if err := svc.Submit("user-1", "shop-1", validInput(4)); !utils.HasCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

// staleShopRepo serves reads at an old version so every write loses the
// optimistic check.
type staleShopRepo struct {
	inner *fakeShopRepo
}

func (s *staleShopRepo) Create(shop *models.Shop) error { return nil }
func (s *staleShopRepo) GetByID(id string) (*models.Shop, error) {
	shop, err := s.inner.GetByID(id)
	if shop != nil {
		shop.Version = 0
	}
	return shop, err
}
func (s *staleShopRepo) List(filter shopRepo.ShopListFilter) ([]models.Shop, int64, error) {
	return nil, 0, nil
}
func (s *staleShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (s *staleShopRepo) Deactivate(id string) error                          { return nil }
func (s *staleShopRepo) ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error {
	return s.inner.ReplaceReviews(shopID, version, reviews, ratings)
}
func (s *staleShopRepo) AddMenuItem(shopID string, item models.MenuItem) error    { return nil }
func (s *staleShopRepo) UpdateMenuItem(shopID string, item models.MenuItem) error { return nil }
func (s *staleShopRepo) RemoveMenuItem(shopID, itemID string) error               { return nil }
