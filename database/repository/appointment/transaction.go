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

// InsertAppointment runs the conflict precheck and the insert inside one
// multi-document transaction. Bumping booking_version on the spa document
// makes overlapping transactions for the same spa conflict at commit: the
// driver retries the losing transaction, which re-reads the appointments and
// now fails the precheck against the winner's insert.
func (r *MongoAppointmentRepo) InsertAppointment(ctx context.Context, appt *models.Appointment, precheck func(existing []models.Appointment) error) error {
	sess, err := database.MongoClient.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer sess.EndSession(ctx)

	spas := database.DB().Collection("spas")

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		cursor, err := r.coll.Find(sc, bson.M{
			"spa_id":     appt.SpaID,
			"start_time": bson.M{"$lt": appt.EndTime()},
		}, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
		if err != nil {
			return nil, fmt.Errorf("failed to query appointments: %w", err)
		}
		var existing []models.Appointment
		if err := cursor.All(sc, &existing); err != nil {
			return nil, fmt.Errorf("failed to decode appointments: %w", err)
		}

		if err := precheck(existing); err != nil {
			return nil, err
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			return nil, fmt.Errorf("failed to insert appointment: %w", err)
		}

		res, err := spas.UpdateOne(sc,
			bson.M{"id": appt.SpaID},
			bson.M{
				"$inc": bson.M{"booking_version": 1},
				"$set": bson.M{"updated_at": time.Now()},
			})
		if err != nil {
			return nil, fmt.Errorf("failed to bump spa booking version: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("spa %s not found", appt.SpaID)
		}
		return nil, nil
	})
	if err != nil {
		utils.GetLogger().Debug("appointment transaction did not commit",
			zap.String("spaID", appt.SpaID), zap.Error(err))
		return err
	}
	return nil
}
