package listing

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound signals that no listing exists for the given id.
var ErrNotFound = errors.New("listing: not found")

// Repository handles data access for property listings.
type Repository interface {
	Insert(ctx context.Context, l Listing) error
	FindPage(ctx context.Context, skip, limit int64) ([]Listing, error)
	FindByID(ctx context.Context, id string) (Listing, error)
	FindByOwner(ctx context.Context, ownerID string, limit int64) ([]Listing, error)
	Replace(ctx context.Context, l Listing) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// MongoRepository implements Repository backed by the properties collection.
type MongoRepository struct {
	properties *mongo.Collection
}

// NewRepository creates a MongoDB-backed listing repository.
func NewRepository(database *mongo.Database) *MongoRepository {
	return &MongoRepository{properties: database.Collection("properties")}
}

// Insert stores a new listing document.
func (r *MongoRepository) Insert(ctx context.Context, l Listing) error {
	if _, err := r.properties.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("listing: insert: %w", err)
	}
	return nil
}

// FindPage returns a page of listings in insertion order.
func (r *MongoRepository) FindPage(ctx context.Context, skip, limit int64) ([]Listing, error) {
	cursor, err := r.properties.Find(ctx, bson.M{}, options.Find().SetSkip(skip).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing: find page: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("listing: decode page: %w", err)
	}
	return listings, nil
}

// FindByID returns a single listing or ErrNotFound.
func (r *MongoRepository) FindByID(ctx context.Context, id string) (Listing, error) {
	var l Listing
	err := r.properties.FindOne(ctx, bson.M{"id": id}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Listing{}, ErrNotFound
		}
		return Listing{}, fmt.Errorf("listing: find by id: %w", err)
	}
	return l, nil
}

// FindByOwner returns up to limit listings owned by ownerID.
func (r *MongoRepository) FindByOwner(ctx context.Context, ownerID string, limit int64) ([]Listing, error) {
	cursor, err := r.properties.Find(ctx, bson.M{"user_id": ownerID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing: find by owner: %w", err)
	}
	defer cursor.Close(ctx)

	listings := []Listing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("listing: decode owner page: %w", err)
	}
	return listings, nil
}

// Replace overwrites the full document for l.ID. Concurrent writers to the
// same listing race last-write-wins at the store layer.
func (r *MongoRepository) Replace(ctx context.Context, l Listing) error {
	res, err := r.properties.ReplaceOne(ctx, bson.M{"id": l.ID}, l)
	if err != nil {
		return fmt.Errorf("listing: replace: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the listing document.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.properties.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("listing: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of listings.
func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.properties.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("listing: count: %w", err)
	}
	return n, nil
}
