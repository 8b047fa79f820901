package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens and validates a connection to the document store.
func Connect(ctx context.Context, mongoURL, database string) (*mongo.Client, *mongo.Database, error) {
	slog.Default().InfoContext(ctx, "mongo connect started",
		"module", "mongo",
		"layer", "adapter",
		"operation", "connect",
		"outcome", "start",
	)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Default().InfoContext(ctx, "mongo connect completed",
		"module", "mongo",
		"layer", "adapter",
		"operation", "connect",
		"outcome", "success",
	)
	return client, client.Database(database), nil
}
