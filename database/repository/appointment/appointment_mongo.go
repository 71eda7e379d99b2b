package appointmentRepo

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

type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	repo := &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *MongoAppointmentRepo) ensureIndexes() {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "spa_id", Value: 1}, {Key: "start_time", Value: 1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		utils.GetLogger().Warn("failed to create appointment indexes", zap.Error(err))
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) GetBySpaAndDate(spaID string, date time.Time) ([]models.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, utils.SeychellesTZ)
	dayEnd := dayStart.Add(24 * time.Hour)

	return r.find(bson.M{
		"spa_id":     spaID,
		"start_time": bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
}

func (r *MongoAppointmentRepo) GetStartingBefore(spaID string, before time.Time) ([]models.Appointment, error) {
	return r.find(bson.M{
		"spa_id":     spaID,
		"start_time": bson.M{"$lt": before},
	})
}

func (r *MongoAppointmentRepo) ListBySpa(spaID string) ([]models.Appointment, error) {
	return r.find(bson.M{"spa_id": spaID})
}

func (r *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
