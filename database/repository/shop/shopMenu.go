// File: database/repository/shop/shopMenu.go
package shopRepo

import (
	"fmt"
	"time"

	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AddMenuItem appends a menu item to a shop.
func (r *MongoShopRepo) AddMenuItem(shopID string, item models.MenuItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": shopID}
	update := bson.M{
		"$push": bson.M{"menu": item},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add menu item to shop %s: %w", shopID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", shopID)
	}
	return nil
}

// UpdateMenuItem overwrites a menu item in place, matched by item id.
func (r *MongoShopRepo) UpdateMenuItem(shopID string, item models.MenuItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": shopID, "menu.id": item.ID}
	update := bson.M{
		"$set": bson.M{
			"menu.$":    item,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update menu item %s for shop %s: %w", item.ID, shopID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("menu item %s not found in shop %s", item.ID, shopID)
	}
	return nil
}

// RemoveMenuItem pulls a menu item out of a shop by item id.
func (r *MongoShopRepo) RemoveMenuItem(shopID, itemID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": shopID}
	update := bson.M{
		"$pull": bson.M{"menu": bson.M{"id": itemID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove menu item %s from shop %s: %w", itemID, shopID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", shopID)
	}
	return nil
}
