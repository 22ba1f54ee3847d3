package models

import "time"

// Stage is the conversational stage of a dialogue session.
type Stage string

const (
	StageInitial             Stage = "initial"
	StageReady               Stage = "ready"
	StageCollectingDetails   Stage = "collecting_details"
	StageCollectingTime      Stage = "collecting_time"
	StageShowingAvailability Stage = "showing_availability"
	StageConfirming          Stage = "confirming"
	StageCompleted           Stage = "completed"
	StageError               Stage = "error"
)

// Intent is the coarse-grained purpose of a user utterance.
type Intent string

const (
	IntentGreeting          Intent = "greeting"
	IntentBookAppointment   Intent = "book_appointment"
	IntentCheckAvailability Intent = "check_availability"
	IntentConfirmBooking    Intent = "confirm_booking"
	IntentCancelDecline     Intent = "cancel_decline"
	IntentUnknown           Intent = "unknown"
)

// SlotSet holds the structured values extracted from free text. A zero
// field means the slot has not been extracted yet; durations are never
// zero once set.
type SlotSet struct {
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
	Time     string `json:"time,omitempty" bson:"time,omitempty"`
	Duration int    `json:"duration,omitempty" bson:"duration,omitempty"`
}

// Merge folds delta into s. Slots accumulate monotonically: a field is
// only written when present in the delta, never cleared.
func (s *SlotSet) Merge(delta SlotSet) {
	if delta.Date != "" {
		s.Date = delta.Date
	}
	if delta.Time != "" {
		s.Time = delta.Time
	}
	if delta.Duration != 0 {
		s.Duration = delta.Duration
	}
}

// DurationOrDefault returns the extracted duration, or 60 minutes when
// none was captured. The default is applied at booking time only.
func (s SlotSet) DurationOrDefault() int {
	if s.Duration == 0 {
		return 60
	}
	return s.Duration
}

// TurnRecord is one entry of a session's append-only history.
type TurnRecord struct {
	UserMessage string    `json:"user_message"`
	Intent      Intent    `json:"intent"`
	Slots       SlotSet   `json:"slots"`
	Timestamp   time.Time `json:"timestamp"`
}

// DialogueState is the per-session conversational record: current stage,
// accumulated slots and turn history. The history is audit-only and is
// never read back by the state machine.
type DialogueState struct {
	Stage   Stage        `json:"state"`
	Slots   SlotSet      `json:"slots"`
	Context []TurnRecord `json:"context"`
}
