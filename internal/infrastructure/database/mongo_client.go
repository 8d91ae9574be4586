package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMongoDatabase = "piecework"

// ConnectMongo opens a client and verifies it with a ping.
//
// Supported env vars:
//   - MONGO_URI (default: mongodb://localhost:27017)
//   - MONGO_DATABASE (default: piecework)
func ConnectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	uri := getenvDefault("MONGO_URI", "mongodb://localhost:27017")

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	return client, client.Database(getenvDefault("MONGO_DATABASE", defaultMongoDatabase)), nil
}
