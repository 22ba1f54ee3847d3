package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	appointmentRepo "tailortalk/database/repository/appointment"
	"tailortalk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubCalendar struct {
	cancelErr        error
	cancelledEventID string
}

func (s *stubCalendar) GetAvailability(ctx context.Context, date string) ([]string, error) {
	return nil, nil
}

func (s *stubCalendar) GetNextAvailableSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	return nil, nil
}

func (s *stubCalendar) BookAppointment(ctx context.Context, details models.BookingDetails) (*models.CalendarEvent, error) {
	return &models.CalendarEvent{EventID: "event_test", Status: "confirmed"}, nil
}

func (s *stubCalendar) CancelAppointment(ctx context.Context, eventID string) error {
	s.cancelledEventID = eventID
	return s.cancelErr
}

func (s *stubCalendar) CheckConnection() bool { return true }

type stubAppointments struct {
	appts     map[string]models.Appointment
	cancelled []string
}

func (s *stubAppointments) Save(ctx context.Context, appt models.Appointment) (string, error) {
	return appt.ID, nil
}

func (s *stubAppointments) GetAll(ctx context.Context, limit int64) ([]models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, ok := s.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (s *stubAppointments) UpdateStatus(ctx context.Context, id string, status string) error {
	return nil
}

func (s *stubAppointments) Cancel(ctx context.Context, id string) error {
	if _, ok := s.appts[id]; !ok {
		return appointmentRepo.ErrNotFound
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

func (s *stubAppointments) Reschedule(ctx context.Context, id string, newStart string) error {
	return nil
}

type stubReminders struct{}

func (stubReminders) ScheduleAppointmentReminder(ctx context.Context, appt models.Appointment) error {
	return nil
}

func (stubReminders) Close() error { return nil }

func newBookingRouter(cal *stubCalendar, appts *stubAppointments) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(cal, appts, stubReminders{}, zap.NewNop())
	r.DELETE("/api/appointments/:id", h.CancelAppointment)
	return r
}

func TestCancelAppointmentCancelsCalendarEvent(t *testing.T) {
	cal := &stubCalendar{}
	appts := &stubAppointments{appts: map[string]models.Appointment{
		"a1": {ID: "a1", CalendarEventID: "event_xyz", Status: models.AppointmentStatusConfirmed},
	}}
	r := newBookingRouter(cal, appts)

	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/a1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if cal.cancelledEventID != "event_xyz" {
		t.Fatalf("calendar cancelled %q, want event_xyz", cal.cancelledEventID)
	}
	if len(appts.cancelled) != 1 || appts.cancelled[0] != "a1" {
		t.Fatalf("repo cancellations = %v", appts.cancelled)
	}
}

func TestCancelAppointmentNotFound(t *testing.T) {
	cal := &stubCalendar{}
	r := newBookingRouter(cal, &stubAppointments{appts: map[string]models.Appointment{}})

	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if cal.cancelledEventID != "" {
		t.Fatalf("calendar cancel called for a missing record: %q", cal.cancelledEventID)
	}
}

func TestCancelAppointmentCalendarFailureStillCancelsRecord(t *testing.T) {
	cal := &stubCalendar{cancelErr: errors.New("calendar down")}
	appts := &stubAppointments{appts: map[string]models.Appointment{
		"a2": {ID: "a2", CalendarEventID: "event_abc"},
	}}
	r := newBookingRouter(cal, appts)

	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/a2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(appts.cancelled) != 1 {
		t.Fatalf("repo cancellations = %v", appts.cancelled)
	}
}
