package models

import "time"

// BookingDetails is the input to the calendar booking operation.
type BookingDetails struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
	Duration    int    `json:"duration"` // minutes
	Description string `json:"description"`
}

// CalendarEvent is the record returned by a successful booking.
type CalendarEvent struct {
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// AvailableSlot is one bookable slot suggestion, with a human-readable label.
type AvailableSlot struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	Display string `json:"display"`
}
