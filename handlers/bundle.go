package handlers

// HandlerBundle groups the handlers wired in main for route registration.
type HandlerBundle struct {
	Chat          *ChatHandler
	Booking       *BookingHandler
	Conversations *ConversationHandler
	Health        *HealthHandler
}
