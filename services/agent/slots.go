package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tailortalk/models"
)

const dateLayout = "2006-01-02"

// weekdays in the order used for next-occurrence arithmetic (Monday = 0).
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var meridiemRe = regexp.MustCompile(`(\d{1,2})\s*(am|pm)`)

// extractSlots pulls date, time and duration values out of the message.
// Each slot type is matched independently, so one utterance can yield
// zero to three slots. Per slot type, patterns are tried in order and the
// first one whose match normalizes successfully wins; a match that fails
// to normalize is dropped silently and the next pattern is tried.
func extractSlots(message string, now time.Time) models.SlotSet {
	lower := strings.ToLower(message)
	var slots models.SlotSet

	for _, re := range datePatterns {
		if frag := re.FindString(lower); frag != "" {
			if date, ok := parseDate(frag, now); ok {
				slots.Date = date
				break
			}
		}
	}

	for _, re := range timePatterns {
		if frag := re.FindString(lower); frag != "" {
			if t, ok := parseTime(frag); ok {
				slots.Time = t
				break
			}
		}
	}

	for _, re := range durationPatterns {
		if frag := re.FindString(lower); frag != "" {
			slots.Duration = parseDuration(frag)
			break
		}
	}

	return slots
}

// parseDate normalizes a matched date fragment to YYYY-MM-DD relative to
// now. Digit forms ("7/4/2025") and ordinals ("21st") match the slot
// patterns but have no normalization rule; they fall through here so the
// slot is simply omitted.
func parseDate(frag string, now time.Time) (string, bool) {
	switch {
	case strings.Contains(frag, "today"):
		return now.Format(dateLayout), true
	case strings.Contains(frag, "tomorrow"):
		return now.AddDate(0, 0, 1).Format(dateLayout), true
	case strings.Contains(frag, "next week"):
		return now.AddDate(0, 0, 7).Format(dateLayout), true
	}

	for i, day := range weekdays {
		if strings.Contains(frag, day) {
			// Days until the next occurrence; a weekday naming today
			// means next week, never the current day.
			ahead := (i - mondayIndexed(now.Weekday()) + 7) % 7
			if ahead == 0 {
				ahead = 7
			}
			return now.AddDate(0, 0, ahead).Format(dateLayout), true
		}
	}
	return "", false
}

// mondayIndexed maps time.Weekday (Sunday = 0) to Monday = 0.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// parseTime normalizes a matched time fragment to 24h HH:MM. Fragments
// already carrying a colon pass through verbatim; day-part keywords map
// to fixed canonical times; bare clock hours with a meridiem ("2pm",
// "11 am") are converted.
func parseTime(frag string) (string, bool) {
	switch {
	case strings.Contains(frag, ":"):
		return frag, true
	case strings.Contains(frag, "morning"):
		return "09:00", true
	case strings.Contains(frag, "afternoon"):
		return "14:00", true
	case strings.Contains(frag, "evening"):
		return "17:00", true
	case strings.Contains(frag, "noon"):
		return "12:00", true
	}

	if m := meridiemRe.FindStringSubmatch(frag); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil || hour < 1 || hour > 12 {
			return "", false
		}
		if m[2] == "pm" && hour != 12 {
			hour += 12
		}
		if m[2] == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:00", hour), true
	}
	return "", false
}

// parseDuration maps a matched duration fragment to minutes. The
// heuristic is deliberately coarse: it recognizes the literal digits 2
// and 30, nothing else, and defaults to an hour.
func parseDuration(frag string) int {
	if strings.Contains(frag, "hour") {
		if strings.Contains(frag, "2") {
			return 120
		}
		return 60
	}
	if strings.Contains(frag, "30") {
		return 30
	}
	return 60
}
