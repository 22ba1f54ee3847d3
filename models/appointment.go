package models

import "time"

// Appointment status values.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
)

// Appointment is a booked appointment record.
type Appointment struct {
	ID              string     `json:"id" bson:"id"`
	Title           string     `json:"title" bson:"title"`
	Date            string     `json:"date" bson:"date"` // YYYY-MM-DD
	Time            string     `json:"time" bson:"time"` // HH:MM
	Duration        int        `json:"duration" bson:"duration"`
	Description     string     `json:"description,omitempty" bson:"description,omitempty"`
	CalendarEventID string     `json:"calendar_event_id,omitempty" bson:"calendarEventId,omitempty"`
	Status          string     `json:"status" bson:"status"`
	CreatedAt       time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updatedAt"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty" bson:"cancelledAt,omitempty"`
	RescheduledAt   *time.Time `json:"rescheduled_at,omitempty" bson:"rescheduledAt,omitempty"`
}

// AppointmentRequest is the payload for the direct booking endpoint.
type AppointmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// RescheduleRequest carries the new start for an existing appointment.
type RescheduleRequest struct {
	NewDatetime string `json:"new_datetime" binding:"required"` // RFC 3339
}
