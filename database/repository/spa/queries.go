package spaRepo

import (
	"fmt"
	"regexp"
	"time"

	"omnispa/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// caseInsensitive builds a case-insensitive substring regex from user input.
// The input is quoted so regex metacharacters in the query match literally.
func caseInsensitive(query string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
}

// Search matches name, area, description and address case-insensitively.
func (r *MongoSpaRepo) Search(query string, limit int64) ([]models.Spa, error) {
	re := caseInsensitive(query)
	filter := bson.M{
		"$or": []bson.M{
			{"name": re},
			{"area": re},
			{"description": re},
			{"address": re},
		},
	}
	return r.find(filter, options.Find().SetLimit(limit))
}

// SearchByServiceName returns spas offering a service whose name matches.
func (r *MongoSpaRepo) SearchByServiceName(query string, limit int64) ([]models.Spa, error) {
	filter := bson.M{"services.name": caseInsensitive(query)}
	return r.find(filter, options.Find().SetLimit(limit))
}

// GetAvailability returns the weekly template entry for a lowercase weekday
// name, or nil when the spa has no schedule configured for that day.
func (r *MongoSpaRepo) GetAvailability(spaID, day string) (*models.DayAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": spaID}
	opts := options.FindOne().SetProjection(bson.M{
		"availability": bson.M{"$elemMatch": bson.M{"day": day}},
	})

	var doc struct {
		Availability []models.DayAvailability `bson:"availability"`
	}
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch availability for spa %s: %w", spaID, err)
	}
	if len(doc.Availability) == 0 {
		return nil, nil
	}
	return &doc.Availability[0], nil
}

// UpsertAvailability replaces the template entry for entry.Day, inserting it
// if the spa has none for that weekday yet.
func (r *MongoSpaRepo) UpsertAvailability(spaID string, entry models.DayAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Replace an existing entry for the day in place.
	filter := bson.M{"id": spaID, "availability.day": entry.Day}
	update := bson.M{"$set": bson.M{"availability.$": entry, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for spa %s: %w", spaID, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// No entry for this day yet: push a new one.
	push := bson.M{
		"$push": bson.M{"availability": entry},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err = r.coll.UpdateOne(ctx, bson.M{"id": spaID}, push)
	if err != nil {
		return fmt.Errorf("failed to add availability for spa %s: %w", spaID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("spa with id %s not found", spaID)
	}
	return nil
}

// AddImage appends an uploaded facility photo to the spa document.
func (r *MongoSpaRepo) AddImage(spaID string, img models.SpaImage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"images": img},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": spaID}, update)
	if err != nil {
		return fmt.Errorf("failed to add image to spa %s: %w", spaID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("spa with id %s not found", spaID)
	}
	return nil
}

// RemoveImage pulls a facility photo from the spa document by public ID.
func (r *MongoSpaRepo) RemoveImage(spaID, publicID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"images": bson.M{"public_id": publicID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": spaID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove image from spa %s: %w", spaID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("spa with id %s not found", spaID)
	}
	return nil
}
