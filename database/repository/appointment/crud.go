package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"tailortalk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Save inserts a new appointment record and returns its ID.
func (r *mongoAppointmentRepo) Save(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentStatusConfirmed
	}
	appt.CreatedAt = time.Now().UTC()
	appt.UpdatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		return "", err
	}
	return appt.ID, nil
}

// GetAll returns appointments newest first, capped at limit.
func (r *mongoAppointmentRepo) GetAll(ctx context.Context, limit int64) ([]models.Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// GetByID returns an appointment by its ID.
func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

// UpdateStatus sets the status of an appointment.
func (r *mongoAppointmentRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel marks an appointment cancelled and stamps the cancellation time.
func (r *mongoAppointmentRepo) Cancel(ctx context.Context, id string) error {
	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"status":      models.AppointmentStatusCancelled,
			"cancelledAt": now,
			"updatedAt":   now,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reschedule moves an appointment to a new start given as an RFC 3339
// datetime.
func (r *mongoAppointmentRepo) Reschedule(ctx context.Context, id string, newStart string) error {
	start, err := time.Parse(time.RFC3339, newStart)
	if err != nil {
		return fmt.Errorf("invalid datetime %q: %w", newStart, err)
	}

	now := time.Now().UTC()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{
			"date":          start.Format("2006-01-02"),
			"time":          start.Format("15:04"),
			"rescheduledAt": now,
			"updatedAt":     now,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
