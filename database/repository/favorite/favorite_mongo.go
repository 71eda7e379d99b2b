package favoriteRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"omnispa/database"
	"omnispa/models"
	"omnispa/utils"
)

// FavoriteRepository persists the user-to-spa favorites relation.
type FavoriteRepository interface {
	// Toggle adds the favorite if absent, removes it if present. Returns true
	// when the spa ends up favorited.
	Toggle(userID, spaID string) (bool, error)
	Check(userID, spaID string) (bool, error)
	ListByUser(userID string) ([]models.Favorite, error)
}

type MongoFavoriteRepo struct {
	coll *mongo.Collection
}

func NewMongoFavoriteRepo() *MongoFavoriteRepo {
	repo := &MongoFavoriteRepo{
		coll: database.DB().Collection("favorites"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *MongoFavoriteRepo) ensureIndexes() {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "spa_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("failed to create favorite indexes", zap.Error(err))
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFavoriteRepo) Toggle(userID, spaID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "spa_id": spaID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	fav := models.Favorite{
		ID:        uuid.New().String(),
		UserID:    userID,
		SpaID:     spaID,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, fav); err != nil {
		// Losing a toggle race to a concurrent insert leaves the spa favorited,
		// which is the state the caller asked for.
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}
	return true, nil
}

func (r *MongoFavoriteRepo) Check(userID, spaID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "spa_id": spaID})
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

func (r *MongoFavoriteRepo) ListByUser(userID string) ([]models.Favorite, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer cursor.Close(ctx)

	var favs []models.Favorite
	if err := cursor.All(ctx, &favs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	return favs, nil
}
