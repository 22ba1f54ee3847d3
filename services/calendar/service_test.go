package calendar

import (
	"context"
	"strings"
	"testing"
	"time"

	"tailortalk/models"
)

// Monday 2025-07-07 at noon.
var noonMonday = time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC)

func newTestService(now time.Time) *DefaultCalendarService {
	return &DefaultCalendarService{Now: func() time.Time { return now }}
}

func TestGetAvailabilityFutureDate(t *testing.T) {
	s := newTestService(noonMonday)

	slots, err := s.GetAvailability(context.Background(), "2025-07-09")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	want := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v", slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slots = %v, want %v", slots, want)
		}
	}
}

func TestGetAvailabilityTodayFiltersPastHours(t *testing.T) {
	s := newTestService(noonMonday)

	slots, err := s.GetAvailability(context.Background(), "2025-07-07")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	want := []string{"14:00", "15:00", "16:00"}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slots = %v, want %v", slots, want)
		}
	}
}

func TestGetAvailabilityTodayAfterHours(t *testing.T) {
	lateEvening := time.Date(2025, 7, 7, 20, 0, 0, 0, time.UTC)
	s := newTestService(lateEvening)

	slots, err := s.GetAvailability(context.Background(), "2025-07-07")
	if err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("slots = %v, want none", slots)
	}
}

func TestGetAvailabilityInvalidDate(t *testing.T) {
	s := newTestService(noonMonday)

	if _, err := s.GetAvailability(context.Background(), "next tuesday"); err == nil {
		t.Fatal("expected an error for an unparseable date")
	}
}

func TestGetNextAvailableSlots(t *testing.T) {
	s := newTestService(noonMonday)

	slots, err := s.GetNextAvailableSlots(context.Background())
	if err != nil {
		t.Fatalf("GetNextAvailableSlots: %v", err)
	}
	if len(slots) != 10 {
		t.Fatalf("len(slots) = %d, want 10", len(slots))
	}
	// Tuesday fills the first six, Wednesday the rest.
	if slots[0].Date != "2025-07-08" || slots[0].Time != "09:00" {
		t.Fatalf("first slot = %+v", slots[0])
	}
	if slots[0].Display != "Tuesday, July 08 at 09:00" {
		t.Fatalf("display = %q", slots[0].Display)
	}
	if slots[9].Date != "2025-07-09" || slots[9].Time != "14:00" {
		t.Fatalf("last slot = %+v", slots[9])
	}
}

func TestGetNextAvailableSlotsSkipsWeekends(t *testing.T) {
	// From a Friday, the next seven days include a full weekend.
	friday := time.Date(2025, 7, 11, 9, 0, 0, 0, time.UTC)
	s := newTestService(friday)

	slots, err := s.GetNextAvailableSlots(context.Background())
	if err != nil {
		t.Fatalf("GetNextAvailableSlots: %v", err)
	}
	for _, slot := range slots {
		if slot.Date == "2025-07-12" || slot.Date == "2025-07-13" {
			t.Fatalf("weekend slot offered: %+v", slot)
		}
	}
	if slots[0].Date != "2025-07-14" {
		t.Fatalf("first slot = %+v, want Monday", slots[0])
	}
}

func TestBookAppointment(t *testing.T) {
	s := newTestService(noonMonday)

	event, err := s.BookAppointment(context.Background(), bookingDetails("2025-07-08", "14:00", 90))
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if !strings.HasPrefix(event.EventID, "event_") {
		t.Fatalf("eventID = %q", event.EventID)
	}
	if event.Status != "confirmed" {
		t.Fatalf("status = %q", event.Status)
	}
	wantStart := time.Date(2025, 7, 8, 14, 0, 0, 0, time.UTC)
	if !event.Start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", event.Start, wantStart)
	}
	if got := event.End.Sub(event.Start); got != 90*time.Minute {
		t.Fatalf("event length = %v, want 90m", got)
	}
}

func TestBookAppointmentDefaultDuration(t *testing.T) {
	s := newTestService(noonMonday)

	event, err := s.BookAppointment(context.Background(), bookingDetails("2025-07-08", "14:00", 0))
	if err != nil {
		t.Fatalf("BookAppointment: %v", err)
	}
	if got := event.End.Sub(event.Start); got != 60*time.Minute {
		t.Fatalf("event length = %v, want 60m", got)
	}
}

func TestBookAppointmentInvalidStart(t *testing.T) {
	s := newTestService(noonMonday)

	if _, err := s.BookAppointment(context.Background(), bookingDetails("tomorrow", "2pm", 60)); err == nil {
		t.Fatal("expected an error for an unparseable start")
	}
}

func TestCancelAppointment(t *testing.T) {
	s := newTestService(noonMonday)

	if err := s.CancelAppointment(context.Background(), "event_abc"); err != nil {
		t.Fatalf("CancelAppointment: %v", err)
	}
	if err := s.CancelAppointment(context.Background(), ""); err == nil {
		t.Fatal("expected an error for a missing event id")
	}
}

func TestDropPastSlotsUsesReadTimeClock(t *testing.T) {
	// A cached entry holds the full day; filtering happens per read, so
	// the same list yields fewer slots as the day advances.
	fullDay := []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
	target := time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC)

	atTen := dropPastSlots(fullDay, target, time.Date(2025, 7, 7, 10, 30, 0, 0, time.UTC))
	if len(atTen) != 4 || atTen[0] != "11:00" {
		t.Fatalf("slots at 10:30 = %v", atTen)
	}

	atFifteen := dropPastSlots(fullDay, target, time.Date(2025, 7, 7, 15, 0, 0, 0, time.UTC))
	if len(atFifteen) != 1 || atFifteen[0] != "16:00" {
		t.Fatalf("slots at 15:00 = %v", atFifteen)
	}

	otherDay := dropPastSlots(fullDay, target, time.Date(2025, 7, 6, 23, 0, 0, 0, time.UTC))
	if len(otherDay) != len(fullDay) {
		t.Fatalf("slots for a non-today date = %v", otherDay)
	}
}

func bookingDetails(date, timeStr string, duration int) models.BookingDetails {
	return models.BookingDetails{
		Title:       "Appointment",
		Date:        date,
		Time:        timeStr,
		Duration:    duration,
		Description: "Booked via TailorTalk",
	}
}
