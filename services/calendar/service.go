package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tailortalk/models"
	"tailortalk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	dateLayout     = "2006-01-02"
	datetimeLayout = "2006-01-02 15:04"

	availabilityCachePrefix = "calendar:avail:"
)

// businessHours are the bookable slot starts for a business day.
var businessHours = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

// DefaultCalendarService simulates a calendar backend with fixed business
// hours. It stands in for a real provider integration; the rest of the
// system only depends on the Service interface.
type DefaultCalendarService struct {
	Cache    *redis.Client // optional; availability lookups are cached when set
	CacheTTL time.Duration
	Now      func() time.Time // nil means time.Now
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CheckConnection reports whether the calendar backend is reachable. The
// simulated backend is always up.
func (s *DefaultCalendarService) CheckConnection() bool {
	return true
}

// GetAvailability returns the open slot times for a date. Slots earlier
// than the current hour are filtered out when the date is today.
func (s *DefaultCalendarService) GetAvailability(ctx context.Context, date string) ([]string, error) {
	target, err := time.ParseInLocation(dateLayout, date, s.now().Location())
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	slots, ok := s.cachedAvailability(ctx, date)
	if !ok {
		slots = append([]string(nil), businessHours...)
		s.cacheAvailability(ctx, date, slots)
	}

	// The cache holds the full day; past slots are dropped on every
	// read so a cached entry crossing an hour boundary never serves a
	// slot that has already passed.
	return dropPastSlots(slots, target, s.now()), nil
}

// dropPastSlots removes slot times at or before the current hour when
// the target date is today.
func dropPastSlots(slots []string, target, now time.Time) []string {
	if !sameDay(target, now) {
		return slots
	}
	open := make([]string, 0, len(slots))
	for _, slot := range slots {
		var hour int
		fmt.Sscanf(slot, "%d:", &hour)
		if hour <= now.Hour() {
			continue
		}
		open = append(open, slot)
	}
	return open
}

// GetNextAvailableSlots lists upcoming bookable slots over the next seven
// days, business days only, capped at ten.
func (s *DefaultCalendarService) GetNextAvailableSlots(ctx context.Context) ([]models.AvailableSlot, error) {
	const daysAhead = 7
	const maxSlots = 10

	today := s.now()
	var slots []models.AvailableSlot
	for i := 1; i <= daysAhead; i++ {
		day := today.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		dateStr := day.Format(dateLayout)
		for _, t := range businessHours {
			slots = append(slots, models.AvailableSlot{
				Date:    dateStr,
				Time:    t,
				Display: fmt.Sprintf("%s at %s", day.Format("Monday, January 02"), t),
			})
		}
	}
	if len(slots) > maxSlots {
		slots = slots[:maxSlots]
	}
	return slots, nil
}

// BookAppointment creates a confirmed calendar event from the given
// details. The start must parse as "YYYY-MM-DD HH:MM".
func (s *DefaultCalendarService) BookAppointment(ctx context.Context, details models.BookingDetails) (*models.CalendarEvent, error) {
	logger := utils.GetLogger()

	start, err := time.ParseInLocation(datetimeLayout, details.Date+" "+details.Time, s.now().Location())
	if err != nil {
		return nil, fmt.Errorf("invalid appointment start %q %q: %w", details.Date, details.Time, err)
	}

	duration := details.Duration
	if duration <= 0 {
		duration = 60
	}

	event := &models.CalendarEvent{
		EventID:     "event_" + uuid.New().String(),
		Title:       details.Title,
		Start:       start,
		End:         start.Add(time.Duration(duration) * time.Minute),
		Description: details.Description,
		Status:      "confirmed",
	}

	logger.Info("Appointment booked",
		zap.String("eventID", event.EventID),
		zap.String("title", event.Title),
		zap.String("date", details.Date),
		zap.String("time", details.Time),
		zap.Int("duration", duration))
	return event, nil
}

// CancelAppointment removes a previously booked event from the calendar.
func (s *DefaultCalendarService) CancelAppointment(ctx context.Context, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("missing event id")
	}
	utils.GetLogger().Info("Appointment cancelled", zap.String("eventID", eventID))
	return nil
}

func (s *DefaultCalendarService) cachedAvailability(ctx context.Context, date string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	data, err := s.Cache.Get(ctx, availabilityCachePrefix+date).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		utils.GetLogger().Warn("availability cache read failed", zap.String("date", date), zap.Error(err))
		return nil, false
	}
	var slots []string
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (s *DefaultCalendarService) cacheAvailability(ctx context.Context, date string, slots []string) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.Cache.Set(ctx, availabilityCachePrefix+date, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.String("date", date), zap.Error(err))
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
