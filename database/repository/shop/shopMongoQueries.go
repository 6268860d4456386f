// File: database/repository/shop/shopMongoQueries.go
package shopRepo

import (
	"fmt"
	"time"

	"laundrify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID retrieves a shop by its unique ID.
func (r *MongoShopRepo) GetByID(id string) (*models.Shop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.Shop
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&shop); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shop with id %s: %w", id, err)
	}
	return &shop, nil
}

// List retrieves shops matching the filter along with the total count for
// pagination.
func (r *MongoShopRepo) List(filter ShopListFilter) ([]models.Shop, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.ActiveOnly {
		query["isActive"] = true
	}
	if filter.Category != "" {
		query["menu.category"] = filter.Category
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count shops: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []models.Shop
	for cursor.Next(ctx) {
		var s models.Shop
		if err := cursor.Decode(&s); err != nil {
			return nil, 0, fmt.Errorf("failed to decode shop: %w", err)
		}
		shops = append(shops, s)
	}
	return shops, total, nil
}
