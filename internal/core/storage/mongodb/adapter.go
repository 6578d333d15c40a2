package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/statflow-lab/project-statflow/internal/core/stats"
	"github.com/statflow-lab/project-statflow/internal/core/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectPingTimeout = 5 * time.Second

// Adapter implements storage.ColdStore on MongoDB. Each archive cycle lands as
// one unordered BulkWrite of upsert models, the same single-round-trip shape
// the archiver batches for.
type Adapter struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewAdapter connects to MongoDB and verifies the connection before returning.
//
// Example uri: "mongodb://localhost:27017".
func NewAdapter(uri, database, collection string) (*Adapter, error) {
	connectCtx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Info("[MongoDB] Connected", "database", database, "collection", collection)

	return &Adapter{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (a *Adapter) BulkUpsert(ctx context.Context, records []stats.DurableAggregate) (storage.BulkUpsertResult, error) {
	if len(records) == 0 {
		return storage.BulkUpsertResult{}, nil
	}

	models := make([]mongo.WriteModel, 0, len(records))
	for _, rec := range records {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": rec.ID}).
			SetUpdate(bson.M{"$set": bson.M{"totals": rec.Totals, "date": rec.Date}}).
			SetUpsert(true))
	}

	// Unordered: one failed model must not abort the rest of the batch.
	res, err := a.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		return storage.BulkUpsertResult{}, fmt.Errorf("bulk write %d records: %w", len(records), err)
	}

	return storage.BulkUpsertResult{
		Upserted: res.UpsertedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func (a *Adapter) FindByDate(ctx context.Context, day string) ([]stats.DurableAggregate, error) {
	cur, err := a.collection.Find(ctx, bson.M{"date": day})
	if err != nil {
		return nil, fmt.Errorf("find date %s: %w", day, err)
	}
	defer cur.Close(ctx)

	var records []stats.DurableAggregate
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode records for %s: %w", day, err)
	}
	return records, nil
}

func (a *Adapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (a *Adapter) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
