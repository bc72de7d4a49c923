package reportRepo

import (
	"context"
	"fmt"
	"time"

	"vitago/database"
	"vitago/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReportRepo implements ReportRepository using MongoDB.
type MongoReportRepo struct {
	coll *mongo.Collection
}

// NewMongoReportRepo creates a new instance of ReportRepository using MongoDB.
func NewMongoReportRepo() ReportRepository {
	coll := database.MongoClient.Database("vitago").Collection("reports")
	return &MongoReportRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReportRepo) Create(report *models.Report) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, report)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (r *MongoReportRepo) find(filter bson.M) ([]models.Report, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reports: %w", err)
	}
	defer cursor.Close(ctx)
	var reports []models.Report
	for cursor.Next(ctx) {
		var rep models.Report
		if err := cursor.Decode(&rep); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return reports, nil
}

func (r *MongoReportRepo) GetByBooking(bookingID string) ([]models.Report, error) {
	return r.find(bson.M{"bookingId": bookingID})
}

func (r *MongoReportRepo) GetByProvider(providerID string) ([]models.Report, error) {
	return r.find(bson.M{"providerId": providerID})
}

// AverageProviderRating aggregates client-to-provider ratings for a provider.
func (r *MongoReportRepo) AverageProviderRating(providerID string) (float64, int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"providerId": providerID,
			"direction":  models.ReportDirectionClientToProvider,
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":    nil,
			"rating": bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("rating aggregation failed: %w", err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Rating float64 `bson:"rating"`
		Count  int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode rating aggregate: %w", err)
		}
	}
	return result.Rating, result.Count, nil
}
