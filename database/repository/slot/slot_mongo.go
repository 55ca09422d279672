package slotRepo

import (
	"context"
	"fmt"

	"doctorportal/database"
	"doctorportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSlotTemplateRepo implements SlotTemplateRepository using MongoDB.
type MongoSlotTemplateRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotTemplateRepo creates a SlotTemplateRepository backed by the
// given client.
func NewMongoSlotTemplateRepo(client *mongo.Client) SlotTemplateRepository {
	coll := client.Database(database.Name).Collection("appointmentSlots")
	return &MongoSlotTemplateRepo{coll: coll}
}

// GetAll retrieves every slot template in catalog order.
func (r *MongoSlotTemplateRepo) GetAll(ctx context.Context) ([]models.SlotTemplate, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slot templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []models.SlotTemplate
	for cursor.Next(ctx) {
		var t models.SlotTemplate
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode slot template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate slot templates: %w", err)
	}
	return templates, nil
}
