package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tailortalk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeAgent struct {
	lastMessage   string
	lastSessionID string
}

func (f *fakeAgent) ProcessMessage(ctx context.Context, message, sessionID string) *models.ChatResponse {
	f.lastMessage = message
	f.lastSessionID = sessionID
	if sessionID == "" {
		sessionID = "generated"
	}
	return &models.ChatResponse{
		Response:  "Hello! How can I help?",
		SessionID: sessionID,
		Intent:    models.IntentGreeting,
		Actions:   []string{"Book appointment", "Check availability"},
	}
}

func newChatRouter(agentSvc *fakeAgent) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(agentSvc, zap.NewNop())
	r.POST("/api/chat", h.Chat)
	return r
}

func TestChatEndpoint(t *testing.T) {
	agentSvc := &fakeAgent{}
	r := newChatRouter(agentSvc)

	body := `{"message": "hello", "session_id": "abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if agentSvc.lastMessage != "hello" || agentSvc.lastSessionID != "abc" {
		t.Fatalf("agent got message=%q session=%q", agentSvc.lastMessage, agentSvc.lastSessionID)
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.SessionID != "abc" || resp.Intent != models.IntentGreeting {
		t.Fatalf("resp = %+v", resp)
	}
	if len(resp.Actions) != 2 {
		t.Fatalf("actions = %v", resp.Actions)
	}
}

func TestChatEndpointMissingMessage(t *testing.T) {
	r := newChatRouter(&fakeAgent{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"session_id": "abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChatEndpointMalformedJSON(t *testing.T) {
	r := newChatRouter(&fakeAgent{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": `))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
