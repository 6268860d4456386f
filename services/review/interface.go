package review

import (
	shopRepo "laundrify/database/repository/shop"
	userRepo "laundrify/database/repository/user"
	"laundrify/models"
)

// SubmitReviewInput is a customer's rating plus written review for a shop.
type SubmitReviewInput struct {
	Rating      int                `json:"rating"`
	Title       string             `json:"title"`
	Comment     string             `json:"comment"`
	ServiceType models.ServiceType `json:"serviceType"`
}

// ReviewService merges customer reviews into shop documents while keeping
// one live review per (shop, customer) pair.
type ReviewService interface {
	Submit(userID, shopID string, in SubmitReviewInput) error
	List(shopID string) ([]models.ReviewView, error)
	ToggleLike(userID, shopID, reviewID string) ([]string, error)
	Respond(shopID, reviewID, response string) error
	SoftDelete(actorID string, actorIsAdmin bool, shopID, reviewID string) error
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	ShopRepo shopRepo.ShopRepository
	UserRepo userRepo.UserRepository
}
