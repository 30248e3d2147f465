package ctx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Context carries the shared handles (relational store, document store,
// cache, logger) injected into repositories and services.
type Context struct {
	DB      *gorm.DB
	MongoDB *mongo.Database
	Redis   *redis.Client
	Ctx     context.Context
	Log     *zap.SugaredLogger
}

func NewContext(ctx context.Context, db *gorm.DB, mongoDB *mongo.Database, rdb *redis.Client, log *zap.SugaredLogger) *Context {
	return &Context{
		DB:      db,
		MongoDB: mongoDB,
		Redis:   rdb,
		Ctx:     ctx,
		Log:     log,
	}
}

func (c *Context) GetCtx() context.Context {
	return c.Ctx
}

func (c *Context) GetDB() *gorm.DB {
	return c.DB
}

func (c *Context) GetMongoDB() *mongo.Database {
	return c.MongoDB
}

func (c *Context) GetRedis() *redis.Client {
	return c.Redis
}

// GetCollection returns a document-store collection by name.
func (c *Context) GetCollection(name string) *mongo.Collection {
	if c.MongoDB == nil {
		return nil
	}
	return c.MongoDB.Collection(name)
}
