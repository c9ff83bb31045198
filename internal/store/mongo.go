package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/i474232898/weather-search-history/internal/search"
)

const (
	mongoCollection      = "historial"
	defaultMongoDatabase = "test"
)

// MongoStore implements search.Store on a MongoDB collection. It holds a
// single client for the lifetime of the process and never reconnects on
// its own; the driver's pool handles transient socket loss.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and verifies the connection with a ping.
// The database is taken from the URI path, then from database, then "test".
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongodb uri: %w", err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = database
	}
	if dbName == "" {
		dbName = defaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(dbName).Collection(mongoCollection),
	}, nil
}

func (s *MongoStore) Insert(ctx context.Context, rec search.Record) error {
	_, err := s.coll.InsertOne(ctx, rec)
	return err
}

func (s *MongoStore) List(ctx context.Context) ([]search.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	out := make([]search.Record, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
