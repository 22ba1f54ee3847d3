package conversationRepo

import (
	"context"

	"tailortalk/config"
	"tailortalk/database"
	"tailortalk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationRepository persists conversation turns. Saving is
// best-effort from the agent's point of view.
type ConversationRepository interface {
	Save(ctx context.Context, record models.ConversationRecord) (string, error)
	GetBySession(ctx context.Context, sessionID string, limit int64) ([]models.ConversationRecord, error)
	GetAll(ctx context.Context) ([]models.ConversationRecord, error)
}

type mongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoConversationRepo{
		coll: db.Collection("conversations"),
	}
}
