package agent

import (
	"regexp"

	"tailortalk/models"
)

// intentPattern pairs an intent label with its matching expressions.
type intentPattern struct {
	intent   models.Intent
	patterns []*regexp.Regexp
}

// intentPatterns is evaluated top to bottom; the first intent with a
// matching pattern wins, so priority is encoded by position rather than
// by match quality or length. Test fixtures depend on this ordering.
var intentPatterns = []intentPattern{
	{models.IntentGreeting, compileAll(
		`hello|hi|hey|good morning|good afternoon|good evening`,
		`start|begin|help`,
	)},
	{models.IntentBookAppointment, compileAll(
		`book|schedule|appointment|meeting|call`,
		`want to schedule|need to book|set up a meeting`,
		`available|free time|time slot`,
	)},
	{models.IntentCheckAvailability, compileAll(
		`available|free|when|what time|schedule`,
		`do you have|any time|free time`,
	)},
	{models.IntentConfirmBooking, compileAll(
		`yes|confirm|book it|that works|sounds good`,
		`perfect|great|ok|okay`,
	)},
	{models.IntentCancelDecline, compileAll(
		`no|cancel|not now|maybe later`,
		`different time|another time`,
	)},
}

// Slot patterns are also ordered: within a slot type the first pattern
// whose match normalizes successfully is used and the rest are skipped.
var (
	datePatterns = compileAll(
		`tomorrow|today|next week|this week`,
		`monday|tuesday|wednesday|thursday|friday|saturday|sunday`,
		`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`,
		`\d{1,2}th|\d{1,2}st|\d{1,2}nd|\d{1,2}rd`,
	)

	timePatterns = compileAll(
		`\d{1,2}:\d{2}`,
		`\d{1,2}\s*(am|pm)`,
		`morning|afternoon|evening|noon`,
	)

	durationPatterns = compileAll(
		`\d+\s*hour|hour`,
		`\d+\s*minute|minute`,
		`30 min|1 hour|2 hour`,
	)
)

func compileAll(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(expr)
	}
	return compiled
}
