// File: services/shop/menu.go
package shop

import (
	"fmt"

	"laundrify/models"
	"laundrify/utils"

	"github.com/google/uuid"
)

func buildMenuItem(in MenuItemInput) (*models.MenuItem, error) {
	if in.Name == "" || in.Price <= 0 || in.Category == "" {
		return nil, utils.NewValidationError("menu item name, price and category are required")
	}
	if !models.ValidMenuCategory(in.Category) {
		return nil, utils.NewValidationError("invalid menu category %q", in.Category)
	}
	return &models.MenuItem{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ClothType:   in.ClothType,
		Price:       in.Price,
		Category:    in.Category,
	}, nil
}

// Menu returns a shop's menu.
func (s *DefaultShopService) Menu(shopID string) ([]models.MenuItem, error) {
	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}
	return sh.Menu, nil
}

// AddMenuItem appends a new offering to a shop's menu.
func (s *DefaultShopService) AddMenuItem(shopID string, in MenuItemInput) (*models.MenuItem, error) {
	item, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}
	if err := s.Repo.AddMenuItem(shopID, *item); err != nil {
		return nil, fmt.Errorf("failed to add menu item: %w", err)
	}
	return item, nil
}

// UpdateMenuItem overwrites an existing offering in place.
func (s *DefaultShopService) UpdateMenuItem(shopID, itemID string, in MenuItemInput) (*models.MenuItem, error) {
	item, err := buildMenuItem(in)
	if err != nil {
		return nil, err
	}
	item.ID = itemID

	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return nil, utils.NewNotFoundError("laundry shop not found")
	}
	found := false
	for _, m := range sh.Menu {
		if m.ID == itemID {
			found = true
			break
		}
	}
	if !found {
		return nil, utils.NewNotFoundError("menu item not found")
	}

	if err := s.Repo.UpdateMenuItem(shopID, *item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

// RemoveMenuItem deletes an offering from a shop's menu.
func (s *DefaultShopService) RemoveMenuItem(shopID, itemID string) error {
	sh, err := s.Repo.GetByID(shopID)
	if err != nil {
		return fmt.Errorf("failed to fetch shop: %w", err)
	}
	if sh == nil {
		return utils.NewNotFoundError("laundry shop not found")
	}
	for _, m := range sh.Menu {
		if m.ID == itemID {
			if err := s.Repo.RemoveMenuItem(shopID, itemID); err != nil {
				return fmt.Errorf("failed to remove menu item: %w", err)
			}
			return nil
		}
	}
	return utils.NewNotFoundError("menu item not found")
}
