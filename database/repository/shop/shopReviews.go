// File: database/repository/shop/shopReviews.go
package shopRepo

import (
	"fmt"
	"time"

	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ReplaceReviews persists the embedded review and rating arrays. The filter
// carries the version the caller read; if another writer bumped it since, no
// document matches and ErrVersionConflict is returned instead of silently
// overwriting the other write.
func (r *MongoShopRepo) ReplaceReviews(shopID string, version int64, reviews []models.Review, ratings []int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": shopID, "version": version}
	update := bson.M{
		"$set": bson.M{
			"reviews":   reviews,
			"ratings":   ratings,
			"updatedAt": time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update reviews for shop %s: %w", shopID, err)
	}
	if result.MatchedCount == 0 {
		return ErrVersionConflict
	}
	return nil
}
