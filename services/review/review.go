package review

import (
	"errors"
	"fmt"
	"sort"
	"time"

	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
)

// Submit folds a customer's review into the shop document. A repeat
// submission overwrites the customer's live review and its rating entry in
// place; a first submission appends both. The write carries the version the
// shop was read at, so a concurrent writer surfaces as a conflict instead of
// being silently overwritten.
func (s *DefaultReviewService) Submit(userID, shopID string, in SubmitReviewInput) error {
	if in.Rating == 0 || in.Title == "" || in.Comment == "" || in.ServiceType == "" {
		return utils.NewValidationError("rating, title, comment and serviceType are required")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return utils.NewValidationError("rating must be an integer between 1 and 5")
	}
	if !models.ValidServiceType(in.ServiceType) {
		return utils.NewValidationError("invalid service type %q", in.ServiceType)
	}

	shop, err := s.ShopRepo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil || !shop.IsActive {
		return utils.NewNotFoundError("laundry shop not found")
	}

	now := time.Now()
	idx := liveReviewIndex(shop.Reviews, userID)
	if idx >= 0 {
		r := &shop.Reviews[idx]
		r.Rating = in.Rating
		r.Title = in.Title
		r.Comment = in.Comment
		r.ServiceType = in.ServiceType
		r.UpdatedAt = now
		// Keep ratings[idx] in step with reviews[idx].
		shop.Ratings[idx] = in.Rating
	} else {
		shop.Reviews = append(shop.Reviews, models.Review{
			ID:          uuid.New().String(),
			UserID:      userID,
			Rating:      in.Rating,
			Title:       in.Title,
			Comment:     in.Comment,
			ServiceType: in.ServiceType,
			Likes:       []string{},
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		shop.Ratings = append(shop.Ratings, in.Rating)
	}

	return s.persist(shop)
}

// List returns a shop's non-deleted reviews, newest first, joined with the
// reviewers' public profiles.
func (s *DefaultReviewService) List(shopID string) ([]models.ReviewView, error) {
	shop, err := s.ShopRepo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}

	views := make([]models.ReviewView, 0, len(shop.Reviews))
	for _, r := range shop.Reviews {
		if r.IsDeleted {
			continue
		}
		v := models.ReviewView{Review: r}
		if s.UserRepo != nil {
			if u, err := s.UserRepo.GetByID(r.UserID); err == nil && u != nil {
				sum := u.Summary()
				v.User = &sum
			}
		}
		views = append(views, v)
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views, nil
}

// ToggleLike flips the customer's presence in the review's like set and
// returns the resulting set.
func (s *DefaultReviewService) ToggleLike(userID, shopID, reviewID string) ([]string, error) {
	shop, err := s.ShopRepo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}

	idx := reviewIndexByID(shop.Reviews, reviewID)
	if idx < 0 {
		return nil, utils.NewNotFoundError("review not found")
	}

	r := &shop.Reviews[idx]
	if r.LikedBy(userID) {
		likes := r.Likes[:0]
		for _, id := range r.Likes {
			if id != userID {
				likes = append(likes, id)
			}
		}
		r.Likes = likes
	} else {
		r.Likes = append(r.Likes, userID)
	}

	if err := s.persist(shop); err != nil {
		return nil, err
	}
	return r.Likes, nil
}

// Respond attaches the shop operator's single response to a review.
func (s *DefaultReviewService) Respond(shopID, reviewID, response string) error {
	if response == "" {
		return utils.NewValidationError("response text is required")
	}
	shop, err := s.ShopRepo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil {
		return utils.NewNotFoundError("laundry shop not found")
	}

	idx := reviewIndexByID(shop.Reviews, reviewID)
	if idx < 0 {
		return utils.NewNotFoundError("review not found")
	}
	r := &shop.Reviews[idx]
	if r.IsOwnerResponded {
		return utils.NewConflictError("review already has a response")
	}
	r.IsOwnerResponded = true
	r.OwnerResponse = response
	r.UpdatedAt = time.Now()

	return s.persist(shop)
}

// SoftDelete marks a review deleted. Only the reviewing customer or an
// operator may do it; the rating entry stays in place but stops counting
// toward the average.
func (s *DefaultReviewService) SoftDelete(actorID string, actorIsAdmin bool, shopID, reviewID string) error {
	shop, err := s.ShopRepo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to load shop: %w", err)
	}
	if shop == nil {
		return utils.NewNotFoundError("laundry shop not found")
	}

	idx := reviewIndexByID(shop.Reviews, reviewID)
	if idx < 0 {
		return utils.NewNotFoundError("review not found")
	}
	r := &shop.Reviews[idx]
	if !actorIsAdmin && r.UserID != actorID {
		return utils.NewForbiddenError("cannot delete another customer's review")
	}
	r.IsDeleted = true
	r.UpdatedAt = time.Now()

	return s.persist(shop)
}

func (s *DefaultReviewService) persist(shop *models.Shop) error {
	err := s.ShopRepo.ReplaceReviews(shop.ID, shop.Version, shop.Reviews, shop.Ratings)
	if err != nil {
		if errors.Is(err, shopRepo.ErrVersionConflict) {
			return utils.NewConflictError("shop was updated concurrently, please retry")
		}
		return fmt.Errorf("failed to save reviews: %w", err)
	}
	return nil
}

// liveReviewIndex finds the customer's non-deleted review, or -1.
func liveReviewIndex(reviews []models.Review, userID string) int {
	for i, r := range reviews {
		if r.UserID == userID && !r.IsDeleted {
			return i
		}
	}
	return -1
}

// reviewIndexByID finds a non-deleted review by id, or -1.
func reviewIndexByID(reviews []models.Review, reviewID string) int {
	for i, r := range reviews {
		if r.ID == reviewID && !r.IsDeleted {
			return i
		}
	}
	return -1
}
