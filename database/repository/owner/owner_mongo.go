package ownerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"omnispa/database"
	"omnispa/models"
	"omnispa/utils"
)

type MongoOwnerRepo struct {
	coll *mongo.Collection
}

func NewMongoOwnerRepo() *MongoOwnerRepo {
	repo := &MongoOwnerRepo{
		coll: database.DB().Collection("owners"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *MongoOwnerRepo) ensureIndexes() {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("failed to create owner indexes", zap.Error(err))
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOwnerRepo) Create(owner *models.Owner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, owner); err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

func (r *MongoOwnerRepo) GetByID(id string) (*models.Owner, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoOwnerRepo) GetByEmail(email string) (*models.Owner, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoOwnerRepo) GetByUsername(username string) (*models.Owner, error) {
	return r.findOne(bson.M{"username": username})
}

func (r *MongoOwnerRepo) findOne(filter bson.M) (*models.Owner, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var owner models.Owner
	err := r.coll.FindOne(ctx, filter).Decode(&owner)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner: %w", err)
	}
	return &owner, nil
}

func (r *MongoOwnerRepo) Update(owner *models.Owner) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	owner.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": owner.ID}, bson.M{"$set": owner})
	if err != nil {
		return fmt.Errorf("failed to update owner %s: %w", owner.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("owner %s not found", owner.ID)
	}
	return nil
}
