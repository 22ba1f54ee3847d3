package agent

import (
	"context"
	"time"

	conversationRepo "tailortalk/database/repository/conversation"
	"tailortalk/models"
	"tailortalk/services/calendar"
	"tailortalk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service turns free-text user utterances into a structured booking
// intent and a natural-language reply, tracking per-session dialogue
// state across turns. It never fails the caller: every input produces a
// well-formed response.
type Service interface {
	ProcessMessage(ctx context.Context, message, sessionID string) *models.ChatResponse
}

// DefaultAgentService implements Service with rule-based classification
// and extraction over the static pattern tables.
type DefaultAgentService struct {
	Calendar      calendar.Service
	Conversations conversationRepo.ConversationRepository
	Sessions      *SessionStore

	// Now overrides the clock used for date normalization; nil means
	// time.Now.
	Now func() time.Time
}

func (a *DefaultAgentService) timeNow() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// ProcessMessage runs one turn: classify, extract, merge and advance the
// session's dialogue state, append the turn to the session history, and
// persist the turn best-effort.
func (a *DefaultAgentService) ProcessMessage(ctx context.Context, message, sessionID string) *models.ChatResponse {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	sess := a.Sessions.getOrCreate(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	st := sess.state

	intent := classifyIntent(message)
	delta := extractSlots(message, a.timeNow())

	reply, actions := a.advance(ctx, st, intent, delta)

	// History is append-only and recorded even for error replies. It
	// stores the delta of this turn, not the accumulated slot map.
	st.Context = append(st.Context, models.TurnRecord{
		UserMessage: message,
		Intent:      intent,
		Slots:       delta,
		Timestamp:   a.timeNow().UTC(),
	})

	a.saveTurn(ctx, sessionID, message, reply, intent, delta)

	return &models.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
		Intent:    intent,
		Slots:     st.Slots,
		Actions:   actions,
	}
}

// saveTurn persists the turn. A persistence failure is logged and
// swallowed; the reply has already been computed and must not change.
func (a *DefaultAgentService) saveTurn(ctx context.Context, sessionID, message, reply string, intent models.Intent, delta models.SlotSet) {
	if a.Conversations == nil {
		return
	}
	record := models.ConversationRecord{
		SessionID:     sessionID,
		UserMessage:   message,
		AgentResponse: reply,
		Intent:        intent,
		Slots:         delta,
		Timestamp:     a.timeNow().UTC(),
	}
	if _, err := a.Conversations.Save(ctx, record); err != nil {
		utils.GetLogger().Warn("failed to save conversation turn",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
