package spaRepo

import (
	"context"
	"fmt"
	"time"

	"omnispa/database"
	"omnispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSpaRepo implements SpaRepository using MongoDB.
type MongoSpaRepo struct {
	coll *mongo.Collection
}

// NewMongoSpaRepo creates a new instance of SpaRepository using MongoDB.
func NewMongoSpaRepo() SpaRepository {
	coll := database.DB().Collection("spas")
	repo := &MongoSpaRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create spa indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoSpaRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "area", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new spa document.
func (r *MongoSpaRepo) Create(spa *models.Spa) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	spa.CreatedAt = now
	spa.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, spa)
	if err != nil {
		return fmt.Errorf("failed to create spa: %w", err)
	}
	return nil
}

// GetByID retrieves a spa by its unique ID.
func (r *MongoSpaRepo) GetByID(id string) (*models.Spa, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var spa models.Spa
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&spa); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch spa with id %s: %w", id, err)
	}
	return &spa, nil
}

// GetAll retrieves all spa documents.
func (r *MongoSpaRepo) GetAll() ([]models.Spa, error) {
	return r.find(bson.M{}, nil)
}

// GetByOwner retrieves all spas registered by an owner.
func (r *MongoSpaRepo) GetByOwner(ownerID string) ([]models.Spa, error) {
	return r.find(bson.M{"owner_id": ownerID}, nil)
}

// GetByArea retrieves spas in a named area.
func (r *MongoSpaRepo) GetByArea(area string) ([]models.Spa, error) {
	return r.find(bson.M{"area": area}, nil)
}

// Update replaces the mutable fields of an existing spa document.
func (r *MongoSpaRepo) Update(spa *models.Spa) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	spa.UpdatedAt = time.Now()
	filter := bson.M{"id": spa.ID}
	update := bson.M{"$set": spa}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update spa with id %s: %w", spa.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("spa with id %s not found", spa.ID)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a spa document.
func (r *MongoSpaRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update spa with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("spa with id %s not found", id)
	}
	return nil
}

// Delete removes a spa document by its ID.
func (r *MongoSpaRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete spa with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("spa with id %s not found", id)
	}
	return nil
}

// find runs a filter and decodes all matching spas.
func (r *MongoSpaRepo) find(filter bson.M, opts *options.FindOptions) ([]models.Spa, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve spas: %w", err)
	}
	defer cursor.Close(ctx)

	var spas []models.Spa
	for cursor.Next(ctx) {
		var s models.Spa
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode spa: %w", err)
		}
		spas = append(spas, s)
	}
	return spas, nil
}
