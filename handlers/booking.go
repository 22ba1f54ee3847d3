package handlers

import (
	"errors"
	"net/http"

	appointmentRepo "tailortalk/database/repository/appointment"
	"tailortalk/models"
	"tailortalk/services/calendar"
	"tailortalk/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the direct (non-conversational) booking surface.
type BookingHandler struct {
	Calendar     calendar.Service
	Appointments appointmentRepo.AppointmentRepository
	Reminders    reminder.Scheduler
	Logger       *zap.Logger
}

func NewBookingHandler(cal calendar.Service, appts appointmentRepo.AppointmentRepository, reminders reminder.Scheduler, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Calendar: cal, Appointments: appts, Reminders: reminders, Logger: logger}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date", "message": "query parameter 'date' is required"})
		return
	}

	slots, err := h.Calendar.GetAvailability(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("GetAvailability: lookup failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "available_slots": slots})
}

// BookAppointment handles POST /api/book-appointment.
func (h *BookingHandler) BookAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("BookAppointment: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}
	if req.Duration <= 0 {
		req.Duration = 60
	}

	ctx := c.Request.Context()
	event, err := h.Calendar.BookAppointment(ctx, models.BookingDetails{
		Title:       req.Title,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Description: req.Description,
	})
	if err != nil {
		h.Logger.Error("BookAppointment: calendar booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to book appointment", "message": err.Error()})
		return
	}

	appt := models.Appointment{
		Title:           req.Title,
		Date:            req.Date,
		Time:            req.Time,
		Duration:        req.Duration,
		Description:     req.Description,
		CalendarEventID: event.EventID,
		Status:          models.AppointmentStatusConfirmed,
	}

	// Persistence and reminders are best-effort; the calendar event is
	// already booked so the caller still gets a success.
	id, err := h.Appointments.Save(ctx, appt)
	if err != nil {
		h.Logger.Warn("BookAppointment: failed to save appointment record", zap.Error(err))
	} else {
		appt.ID = id
		if err := h.Reminders.ScheduleAppointmentReminder(ctx, appt); err != nil {
			h.Logger.Warn("BookAppointment: failed to schedule reminder",
				zap.String("appointmentID", id), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment booked successfully", "appointment": event})
}

// GetAppointments handles GET /api/appointments.
func (h *BookingHandler) GetAppointments(c *gin.Context) {
	appts, err := h.Appointments.GetAll(c.Request.Context(), 50)
	if err != nil {
		h.Logger.Error("GetAppointments: failed to fetch appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// CancelAppointment handles DELETE /api/appointments/:id. The linked
// calendar event is cancelled first; a calendar failure is logged and
// the record is still marked cancelled.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	appt, err := h.Appointments.GetByID(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		h.Logger.Error("CancelAppointment: failed to load appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment", "message": err.Error()})
		return
	}

	if appt.CalendarEventID != "" {
		if err := h.Calendar.CancelAppointment(ctx, appt.CalendarEventID); err != nil {
			h.Logger.Warn("CancelAppointment: failed to cancel calendar event",
				zap.String("id", id), zap.String("eventID", appt.CalendarEventID), zap.Error(err))
		}
	}

	err = h.Appointments.Cancel(ctx, id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		h.Logger.Error("CancelAppointment: failed to cancel", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Appointment cancelled successfully"})
}

// RescheduleAppointment handles PUT /api/appointments/:id.
func (h *BookingHandler) RescheduleAppointment(c *gin.Context) {
	id := c.Param("id")

	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	err := h.Appointments.Reschedule(c.Request.Context(), id, req.NewDatetime)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		h.Logger.Error("RescheduleAppointment: failed to reschedule", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to reschedule appointment", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Appointment rescheduled successfully"})
}
