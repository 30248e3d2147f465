package repo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careconnect-hq/careconnect/internal/admin/consts"
	"github.com/careconnect-hq/careconnect/internal/admin/model"
	"github.com/careconnect-hq/careconnect/pkg/ctx"
)

type IWebhookEventRepository interface {
	Archive(event *model.WebhookArchive) error
	GetEvent(eventId string) (*model.WebhookArchive, error)
	ListEvents(matchedOnly bool, skip, limit int64) ([]*model.WebhookArchive, error)
	CountEvents(matched *bool) (int64, error)
	DeleteOldEvents(before time.Time) (int64, error)
	CreateIndexes() error
}

// WebhookEventRepo archives raw signing-provider callbacks in the document
// store. Payload shapes vary by template, so rows stay schemaless.
type WebhookEventRepo struct {
	ctx        *ctx.Context
	collection *mongo.Collection
}

func NewWebhookEventRepo(appCtx *ctx.Context) IWebhookEventRepository {
	return &WebhookEventRepo{
		ctx:        appCtx,
		collection: appCtx.GetCollection(consts.WebhookEventCollection),
	}
}

func (wr *WebhookEventRepo) Archive(event *model.WebhookArchive) error {
	if wr.collection == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 5*time.Second)
	defer cancel()

	_, err := wr.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to archive webhook event: %w", err)
	}
	return nil
}

func (wr *WebhookEventRepo) GetEvent(eventId string) (*model.WebhookArchive, error) {
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 5*time.Second)
	defer cancel()

	var event model.WebhookArchive
	err := wr.collection.FindOne(ctx, bson.M{"eventId": eventId}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("webhook event not found: %s", eventId)
		}
		return nil, fmt.Errorf("failed to get webhook event: %w", err)
	}
	return &event, nil
}

func (wr *WebhookEventRepo) ListEvents(matchedOnly bool, skip, limit int64) ([]*model.WebhookArchive, error) {
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if matchedOnly {
		filter["matched"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "receivedAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := wr.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*model.WebhookArchive
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode webhook events: %w", err)
	}
	return events, nil
}

func (wr *WebhookEventRepo) CountEvents(matched *bool) (int64, error) {
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if matched != nil {
		filter["matched"] = *matched
	}

	count, err := wr.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count webhook events: %w", err)
	}
	return count, nil
}

func (wr *WebhookEventRepo) DeleteOldEvents(before time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 10*time.Second)
	defer cancel()

	result, err := wr.collection.DeleteMany(ctx, bson.M{
		"receivedAt": bson.M{"$lt": before},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete old webhook events: %w", err)
	}
	return result.DeletedCount, nil
}

func (wr *WebhookEventRepo) CreateIndexes() error {
	if wr.collection == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(wr.ctx.GetCtx(), 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "eventId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "matched", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "receivedAt", Value: -1}},
		},
	}

	_, err := wr.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create webhook event indexes: %w", err)
	}
	return nil
}
