package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"` // user's message (typed or voice-to-text)
	SessionID string `json:"session_id"`                 // omitted on the first turn
}

// ChatResponse is the full result of one processed turn.
type ChatResponse struct {
	Response  string   `json:"response"`   // natural-language reply
	SessionID string   `json:"session_id"` // generated when the request carried none
	Intent    Intent   `json:"intent"`
	Slots     SlotSet  `json:"slots"`   // accumulated slots after this turn
	Actions   []string `json:"actions"` // suggested next actions
}
