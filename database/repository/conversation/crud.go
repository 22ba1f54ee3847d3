package conversationRepo

import (
	"context"
	"time"

	"tailortalk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new conversation turn and returns its ID.
func (r *mongoConversationRepo) Save(ctx context.Context, record models.ConversationRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	record.CreatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetBySession returns the most recent turns of a session in
// chronological order, capped at limit.
func (r *mongoConversationRepo) GetBySession(ctx context.Context, sessionID string, limit int64) ([]models.ConversationRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ConversationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	// Reverse the newest-first query result back into reading order.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// GetAll returns every stored turn, newest first.
func (r *mongoConversationRepo) GetAll(ctx context.Context) ([]models.ConversationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ConversationRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
