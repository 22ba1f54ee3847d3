package models

import "time"

// ConversationRecord is one persisted turn of a conversation.
type ConversationRecord struct {
	ID            string    `json:"id" bson:"id"`
	SessionID     string    `json:"session_id" bson:"sessionId"`
	UserMessage   string    `json:"user_message" bson:"userMessage"`
	AgentResponse string    `json:"agent_response" bson:"agentResponse"`
	Intent        Intent    `json:"intent" bson:"intent"`
	Slots         SlotSet   `json:"slots" bson:"slots"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	CreatedAt     time.Time `json:"created_at" bson:"createdAt"`
}
