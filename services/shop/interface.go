package shop

import (
	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
)

// ListShopsQuery narrows the public listing.
type ListShopsQuery struct {
	Category models.MenuCategory
	Page     int
	Limit    int
}

// ShopPage is one page of the shop listing.
type ShopPage struct {
	Shops []ShopView `json:"shops"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Pages int64      `json:"pages"`
}

// ShopView decorates a shop with its derived rating figures. The average is
// recomputed on every read; it is never stored.
type ShopView struct {
	models.Shop
	AverageRating *float64 `json:"averageRating"`
	ReviewCount   int      `json:"reviewCount"`
}

// MenuItemInput is an operator's menu item create/update payload.
type MenuItemInput struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	ClothType   string              `json:"clothType"`
	Price       float64             `json:"price"`
	Category    models.MenuCategory `json:"category"`
}

// CreateShopInput is an operator's shop creation payload.
type CreateShopInput struct {
	Name     string          `json:"name"`
	Location models.Location `json:"location"`
	Menu     []MenuItemInput `json:"menu"`
}

// ShopService manages shop documents and their menus.
type ShopService interface {
	List(q ListShopsQuery) (*ShopPage, error)
	ListAll(activeOnly bool) ([]ShopView, error)
	Get(shopID string) (*ShopView, error)
	Create(ownerID string, in CreateShopInput) (*models.Shop, error)
	Update(shopID string, fields map[string]any) (*models.Shop, error)
	Deactivate(shopID string) error

	Menu(shopID string) ([]models.MenuItem, error)
	AddMenuItem(shopID string, in MenuItemInput) (*models.MenuItem, error)
	UpdateMenuItem(shopID, itemID string, in MenuItemInput) (*models.MenuItem, error)
	RemoveMenuItem(shopID, itemID string) error
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Repo shopRepo.ShopRepository
}
