package database

import (
	"context"
	"fmt"
	"time"

	"github.com/seosites/seosites/backend/go-api/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	Projects     = "projects"
	Services     = "services"
	Testimonials = "testimonials"
	Technologies = "technologies"
	Stats        = "stats"
	HeroContents = "herocontents"
	CompanyInfos = "companyinfos"
	ProcessSteps = "processsteps"
	Admins       = "admins"
)

// ConnectMongo opens a connection and returns the client. Caller should call client.Disconnect(ctx).
func ConnectMongo(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// ConnectWithRetry tolerates startup races with the database container.
func ConnectWithRetry(ctx context.Context, uri string, timeout time.Duration, attempts int) (*mongo.Client, error) {
	backoff := time.Second
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := ConnectMongo(ctx, uri, timeout)
		if err == nil {
			return client, nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, attempts, err)
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}
	}
	return nil, lastErr
}

// EnsureIndexes creates the unique and sort indexes the API relies on. Idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		Technologies: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "proficiency", Value: -1}}},
		},
		HeroContents: {{Keys: bson.D{{Key: "page", Value: 1}}, Options: unique}},
		Admins:       {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		CompanyInfos: {{Keys: bson.D{{Key: "key", Value: 1}}, Options: unique}},
		Projects: {
			{Keys: bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		Testimonials: {{Keys: bson.D{{Key: "featured", Value: -1}, {Key: "rating", Value: -1}}}},
	}
	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}
