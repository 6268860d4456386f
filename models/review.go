package models

import "time"

// Review is a customer review embedded in the shop document.
type Review struct {
	ID          string      `bson:"id" json:"id"`
	UserID      string      `bson:"userId" json:"userId"`
	Rating      int         `bson:"rating" json:"rating"`
	Title       string      `bson:"title" json:"title"`
	Comment     string      `bson:"comment" json:"comment"`
	ServiceType ServiceType `bson:"serviceType" json:"serviceType"`

	// Likes holds the IDs of customers who liked the review. Set semantics:
	// one entry per customer, toggled on repeat.
	Likes []string `bson:"likes" json:"likes"`

	IsOwnerResponded bool   `bson:"isOwnerResponded" json:"isOwnerResponded"`
	OwnerResponse    string `bson:"ownerResponse,omitempty" json:"ownerResponse,omitempty"`
	IsDeleted        bool   `bson:"isDeleted" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LikedBy reports whether the given customer has liked the review.
func (r *Review) LikedBy(userID string) bool {
	for _, id := range r.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// ReviewView is a review joined with its reviewer's public profile.
type ReviewView struct {
	Review `bson:",inline"`
	User   *UserSummary `json:"user,omitempty"`
}
