package shop

import (
	"fmt"

	shopRepo "laundrify/database/repository/shop"
	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func view(s models.Shop) ShopView {
	v := ShopView{Shop: s, ReviewCount: s.LiveReviewCount()}
	if avg, ok := s.AverageRating(); ok {
		v.AverageRating = &avg
	}
	return v
}

// List returns a page of active shops, optionally narrowed by menu category.
func (s *DefaultShopService) List(q ListShopsQuery) (*ShopPage, error) {
	if q.Category != "" && !models.ValidMenuCategory(q.Category) {
		return nil, utils.NewValidationError("invalid category %q", q.Category)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	shops, total, err := s.Repo.List(shopRepo.ShopListFilter{
		Category:   q.Category,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}

	views := make([]ShopView, 0, len(shops))
	for _, sh := range shops {
		views = append(views, view(sh))
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return &ShopPage{Shops: views, Total: total, Page: page, Limit: limit, Pages: pages}, nil
}

// ListAll returns every shop for the admin console, inactive ones included
// unless activeOnly is set.
func (s *DefaultShopService) ListAll(activeOnly bool) ([]ShopView, error) {
	shops, _, err := s.Repo.List(shopRepo.ShopListFilter{ActiveOnly: activeOnly, Page: 1, Limit: 1000})
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	views := make([]ShopView, 0, len(shops))
	for _, sh := range shops {
		views = append(views, view(sh))
	}
	return views, nil
}

// Get returns a shop with derived rating figures.
func (s *DefaultShopService) Get(shopID string) (*ShopView, error) {
	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}
	v := view(*sh)
	return &v, nil
}

// Create persists a new shop. Name, location and a non-empty menu are
// required, matching the admin console contract.
func (s *DefaultShopService) Create(ownerID string, in CreateShopInput) (*models.Shop, error) {
	if in.Name == "" || in.Location.Address == "" || len(in.Menu) == 0 {
		return nil, utils.NewValidationError("name, location and menu are required")
	}

	menu := make([]models.MenuItem, 0, len(in.Menu))
	for _, m := range in.Menu {
		item, err := buildMenuItem(m)
		if err != nil {
			return nil, err
		}
		menu = append(menu, *item)
	}

	loc := in.Location
	if loc.Coordinates.Type == "" {
		loc.Coordinates.Type = "Point"
	}

	sh := &models.Shop{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Name:     in.Name,
		Location: loc,
		Menu:     menu,
		Ratings:  []int{},
		Reviews:  []models.Review{},
		IsActive: true,
	}
	if err := s.Repo.Create(sh); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return sh, nil
}

// Update applies a partial update to the shop document's own fields.
func (s *DefaultShopService) Update(shopID string, fields map[string]any) (*models.Shop, error) {
	updateDoc := bson.M{}
	for _, key := range []string{"name", "location", "isActive"} {
		if v, ok := fields[key]; ok {
			updateDoc[key] = v
		}
	}
	if len(updateDoc) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}

	if err := s.Repo.UpdateSetDocument(shopID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return s.Repo.GetByID(shopID)
}

// Deactivate soft-deletes a shop; listings stop showing it but its history
// stays intact.
func (s *DefaultShopService) Deactivate(shopID string) error {
	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return utils.NewNotFoundError("laundry shop not found")
	}
	if err := s.Repo.Deactivate(shopID); err != nil {
		return fmt.Errorf("failed to deactivate shop: %w", err)
	}
	return nil
}
