package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig document store connection settings.
type MongoConfig struct {
	Uri         string
	DB          string
	Compressors []string
	PoolSize    uint64
}

// MongoClient wraps the MongoDB client and its default database.
type MongoClient struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func NewMongoDB(cfg MongoConfig, ctx context.Context) (*MongoClient, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	clientOption := options.Client().ApplyURI(cfg.Uri)
	if len(cfg.Compressors) > 0 {
		clientOption.SetCompressors(cfg.Compressors)
	}
	if cfg.PoolSize > 0 {
		clientOption.SetMaxPoolSize(cfg.PoolSize)
	}
	client, err := mongo.Connect(ctx, clientOption)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}

	database := client.Database(cfg.DB)

	return &MongoClient{
		Client: client,
		DB:     database,
	}, nil
}

// GetCollection returns a collection without specifying the database again.
func (mc *MongoClient) GetCollection(name string) *mongo.Collection {
	return mc.DB.Collection(name)
}

// Close disconnects the client.
func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}
