package calendar

import (
	"context"

	"tailortalk/models"
)

// Service is the calendar collaborator consumed by the dialogue agent and
// the booking endpoints. Availability lookups may fail; callers decide
// whether a failure means "no slots" or a hard error.
type Service interface {
	GetAvailability(ctx context.Context, date string) ([]string, error)
	GetNextAvailableSlots(ctx context.Context) ([]models.AvailableSlot, error)
	BookAppointment(ctx context.Context, details models.BookingDetails) (*models.CalendarEvent, error)
	CancelAppointment(ctx context.Context, eventID string) error
	CheckConnection() bool
}
