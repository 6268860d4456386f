package shopRepo

import (
	"errors"

	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrVersionConflict is surfaced when a review write loses the optimistic
// version check, meaning another writer updated the shop in between.
var ErrVersionConflict = errors.New("shop document version conflict")

// ShopListFilter narrows the public shop listing.
type ShopListFilter struct {
	Category   models.MenuCategory // zero value: all categories
	ActiveOnly bool
	Page       int
	Limit      int
}

// ShopRepository defines persistence operations for laundry shops.
type ShopRepository interface {
	Create(shop *models.Shop) error
	GetByID(id string) (*models.Shop, error)
	List(filter ShopListFilter) ([]models.Shop, int64, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	Deactivate(id string) error

	// Review array writes. ReplaceReviews persists both embedded arrays under
	// the optimistic version check.
	ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error

	// Menu item operations.
	AddMenuItem(shopID string, item models.MenuItem) error
	UpdateMenuItem(shopID string, item models.MenuItem) error
	RemoveMenuItem(shopID, itemID string) error
}
