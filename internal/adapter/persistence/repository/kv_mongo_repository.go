package repository

import (
	"context"
	"errors"
	"time"

	"piecework_tracker/internal/usecase/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultKVCollectionName = "piecework_kv"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KeyValueMongoRepository stores JSON blobs as documents keyed by _id.

type KeyValueMongoRepository struct {
	coll *mongo.Collection
}

var _ interfaces.IKeyValueStore = (*KeyValueMongoRepository)(nil)

func NewKeyValueMongoRepository(db *mongo.Database) *KeyValueMongoRepository {
	return &KeyValueMongoRepository{
		coll: db.Collection(getenvDefault("KV_COLLECTION", defaultKVCollectionName)),
	}
}

func (r *KeyValueMongoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(doc.Value), nil
}

func (r *KeyValueMongoRepository) Put(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}
