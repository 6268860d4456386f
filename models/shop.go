package models

import "time"

// GeoPoint is a GeoJSON point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [lng, lat]
}

// Location is a shop's street address plus coordinates.
type Location struct {
	Address     string   `bson:"address" json:"address"`
	Coordinates GeoPoint `bson:"coordinates" json:"coordinates"`
}

// MenuItem is one service offering on a shop's menu.
type MenuItem struct {
	ID          string       `bson:"id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description" json:"description"`
	ClothType   string       `bson:"clothType" json:"clothType"`
	Price       float64      `bson:"price" json:"price"`
	Category    MenuCategory `bson:"category" json:"category"`
}

// Shop is a laundry shop document. Reviews and ratings are embedded: the
// entry ratings[i] belongs to reviews[i] for the full reviews array, deleted
// reviews included. Updates overwrite both in place.
type Shop struct {
	ID       string     `bson:"id" json:"id"`
	OwnerID  string     `bson:"ownerId,omitempty" json:"ownerId,omitempty"`
	Name     string     `bson:"name" json:"name"`
	Location Location   `bson:"location" json:"location"`
	Menu     []MenuItem `bson:"menu" json:"menu"`
	Ratings  []int      `bson:"ratings" json:"ratings"`
	Reviews  []Review   `bson:"reviews" json:"-"`
	IsActive bool       `bson:"isActive" json:"isActive"`

	// Version guards the embedded review arrays against concurrent
	// read-modify-write cycles. Incremented on every review write.
	Version int64 `bson:"version" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AverageRating returns the mean of ratings whose review is not soft-deleted,
// and false when no live rating exists.
func (s *Shop) AverageRating() (float64, bool) {
	sum, n := 0, 0
	for i, r := range s.Ratings {
		if i < len(s.Reviews) && s.Reviews[i].IsDeleted {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// LiveReviewCount counts non-deleted reviews.
func (s *Shop) LiveReviewCount() int {
	n := 0
	for _, r := range s.Reviews {
		if !r.IsDeleted {
			n++
		}
	}
	return n
}

// ShopSummary is the compact projection used in appointment listings.
type ShopSummary struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Location Location `bson:"location" json:"location"`
}

// Summary strips a shop down to its listing fields.
func (s *Shop) Summary() ShopSummary {
	return ShopSummary{ID: s.ID, Name: s.Name, Location: s.Location}
}
