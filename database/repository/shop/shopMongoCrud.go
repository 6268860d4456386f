// File: database/repository/shop/shopMongoCrud.go
package shopRepo

import (
	"fmt"
	"time"

	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new shop document.
func (r *MongoShopRepo) Create(shop *models.Shop) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, shop)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a shop document.
func (r *MongoShopRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update shop with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("shop with id %s not found", id)
	}
	return nil
}

// Deactivate soft-deletes a shop. Shop documents are never removed.
func (r *MongoShopRepo) Deactivate(id string) error {
	return r.UpdateSetDocument(id, bson.M{"isActive": false})
}
