package agent

import (
	"context"
	"fmt"
	"strings"

	"tailortalk/models"
	"tailortalk/utils"

	"go.uber.org/zap"
)

const (
	welcomeReply = "Hello! I'm TailorTalk, your AI assistant for booking appointments. How can I help you today?"
	declineReply = "No problem! Let me know if you'd like to schedule for a different time or if there's anything else I can help you with."
	promptReply  = "I can help you book appointments and check availability. Would you like to schedule a meeting or check available time slots?"
	clarifyReply = "I'm not sure I understand. Could you please clarify what you'd like to do?"
	apologyReply = "I'm sorry, there was an issue booking your appointment. Please try again or contact support."
)

// advance merges the turn's slot delta into the session state and
// applies the transition table, producing the reply and the suggested
// next actions. The intent is the pre-merge classification; slot
// presence checks run against the post-merge slot map. Given the same
// state, intent, slots and calendar responses, the outcome is identical
// on every replay.
func (a *DefaultAgentService) advance(ctx context.Context, st *models.DialogueState, intent models.Intent, delta models.SlotSet) (string, []string) {
	st.Slots.Merge(delta)

	var reply string
	switch {
	case intent == models.IntentGreeting:
		reply = welcomeReply
		st.Stage = models.StageReady

	case intent == models.IntentBookAppointment:
		reply = a.handleBooking(ctx, st)

	case intent == models.IntentCheckAvailability:
		reply = a.handleAvailability(ctx, st)
		st.Stage = models.StageShowingAvailability

	case intent == models.IntentConfirmBooking && st.Stage == models.StageConfirming:
		reply = a.handleConfirm(ctx, st)

	case intent == models.IntentCancelDecline:
		reply = declineReply
		st.Stage = models.StageReady

	default:
		// Unknown intent, or a confirmation outside the confirming
		// stage. The stage is left unchanged.
		if st.Stage == models.StageInitial || st.Stage == models.StageReady {
			reply = promptReply
		} else {
			reply = clarifyReply
		}
	}

	return reply, suggestedActions(st.Stage)
}

func (a *DefaultAgentService) handleBooking(ctx context.Context, st *models.DialogueState) string {
	slots := st.Slots

	switch {
	case slots.Date != "" && slots.Time != "":
		st.Stage = models.StageConfirming
		return fmt.Sprintf("Perfect! I can book an appointment for %s at %s for %d minutes. Shall I confirm this booking?",
			slots.Date, slots.Time, slots.DurationOrDefault())

	case slots.Date != "":
		st.Stage = models.StageCollectingTime
		times, err := a.Calendar.GetAvailability(ctx, slots.Date)
		if err != nil {
			// An availability failure reads as a fully booked day.
			utils.GetLogger().Warn("availability lookup failed", zap.String("date", slots.Date), zap.Error(err))
			times = nil
		}
		if len(times) == 0 {
			return fmt.Sprintf("I don't have any available slots for %s. Would you like to try a different date?", slots.Date)
		}
		return fmt.Sprintf("Great! For %s, I have these time slots available: %s. Which time works best for you?",
			slots.Date, strings.Join(times, ", "))

	default:
		st.Stage = models.StageCollectingDetails
		next, err := a.Calendar.GetNextAvailableSlots(ctx)
		if err != nil {
			utils.GetLogger().Warn("next-slot lookup failed", zap.Error(err))
			next = nil
		}
		if len(next) == 0 {
			return "I'd be happy to help you book an appointment! What date and time would work best for you?"
		}
		if len(next) > 3 {
			next = next[:3]
		}
		displays := make([]string, len(next))
		for i, slot := range next {
			displays[i] = slot.Display
		}
		return fmt.Sprintf("I'd be happy to help you book an appointment! Here are some upcoming available slots: %s. Or let me know your preferred date and time.",
			strings.Join(displays, ", "))
	}
}

func (a *DefaultAgentService) handleAvailability(ctx context.Context, st *models.DialogueState) string {
	if st.Slots.Date == "" {
		return "What date would you like to check availability for?"
	}

	date := st.Slots.Date
	times, err := a.Calendar.GetAvailability(ctx, date)
	if err != nil {
		utils.GetLogger().Warn("availability lookup failed", zap.String("date", date), zap.Error(err))
		times = nil
	}
	if len(times) == 0 {
		return fmt.Sprintf("I don't have any available slots for %s. Would you like to check a different date?", date)
	}
	return fmt.Sprintf("For %s, I have these time slots available: %s. Would you like to book one of these?",
		date, strings.Join(times, ", "))
}

func (a *DefaultAgentService) handleConfirm(ctx context.Context, st *models.DialogueState) string {
	slots := st.Slots
	if slots.Date == "" || slots.Time == "" {
		// Unreachable through the normal flow; treated like any other
		// booking failure rather than leaking a cause.
		st.Stage = models.StageError
		return apologyReply
	}

	event, err := a.Calendar.BookAppointment(ctx, models.BookingDetails{
		Title:       "Appointment",
		Date:        slots.Date,
		Time:        slots.Time,
		Duration:    slots.DurationOrDefault(),
		Description: "Booked via TailorTalk",
	})
	if err != nil {
		utils.GetLogger().Error("booking submission failed",
			zap.String("date", slots.Date), zap.String("time", slots.Time), zap.Error(err))
		st.Stage = models.StageError
		return apologyReply
	}

	utils.GetLogger().Info("booking confirmed", zap.String("eventID", event.EventID))
	st.Stage = models.StageCompleted
	return fmt.Sprintf("Excellent! Your appointment has been confirmed for %s at %s. You'll receive a confirmation shortly.",
		slots.Date, slots.Time)
}

// suggestedActions depends on the resulting stage only, never on the
// intent that produced it.
func suggestedActions(stage models.Stage) []string {
	switch stage {
	case models.StageCollectingDetails:
		return []string{"Check availability", "Book appointment"}
	case models.StageCollectingTime:
		return []string{"Select time slot", "Check different date"}
	case models.StageConfirming:
		return []string{"Confirm booking", "Change details"}
	case models.StageCompleted:
		return []string{"Book another appointment", "View appointments"}
	default:
		return []string{"Book appointment", "Check availability"}
	}
}
